// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blockfrost parses the JSON shapes returned by the Blockfrost
// API into the domain types in ledger/common and ledger/babbage. Network
// I/O, retry, and the rest of the provider adapter are out of scope for
// this module (spec.md §1) — only the wire-to-domain mapping lives here.
package blockfrost

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/cardanoforge/txcore/cbor"
	"github.com/cardanoforge/txcore/ledger/babbage"
	"github.com/cardanoforge/txcore/ledger/common"
	"github.com/cardanoforge/txcore/ledger/mary"
	"github.com/cardanoforge/txcore/ledger/shelley"
)

// UtxoAmount is a single entry of the Blockfrost "amount" array: either the
// pseudo-asset "lovelace" or a hex-encoded policy_id||asset_name unit.
type UtxoAmount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// UtxoResponse is one element of a Blockfrost UTxO list response.
type UtxoResponse struct {
	Address             string       `json:"address"`
	TxHash              string       `json:"tx_hash"`
	OutputIndex         uint64       `json:"output_index"`
	Amount              []UtxoAmount `json:"amount"`
	DataHash            string       `json:"data_hash"`
	InlineDatum         string       `json:"inline_datum"`
	ReferenceScriptHash string       `json:"reference_script_hash"`
}

// ScriptFetcher resolves a reference script hash to its CBOR-wrapped script
// bytes. The provider collaborator supplies this; the parser only calls it.
type ScriptFetcher func(scriptHash string) ([]byte, error)

// ParseUtxosError wraps a failure to parse a single UTxO element, carrying
// enough context to identify which element in the response failed.
type ParseUtxosError struct {
	Index int
	Err   error
}

func (e ParseUtxosError) Error() string {
	return fmt.Sprintf("failed to parse blockfrost utxo at index %d: %v", e.Index, e.Err)
}

func (e ParseUtxosError) Unwrap() error { return e.Err }

// ParseUtxos decodes a Blockfrost UTxO list JSON response into domain UTxOs.
// Reference scripts, when present, are resolved through fetchScript; pass
// nil to skip resolution and leave ScriptRef unset.
func ParseUtxos(body []byte, fetchScript ScriptFetcher) ([]common.Utxo, error) {
	var raw []UtxoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	utxos := make([]common.Utxo, 0, len(raw))
	for i, r := range raw {
		utxo, err := parseUtxo(r, fetchScript)
		if err != nil {
			return nil, ParseUtxosError{Index: i, Err: err}
		}
		utxos = append(utxos, utxo)
	}
	return utxos, nil
}

func parseUtxo(r UtxoResponse, fetchScript ScriptFetcher) (common.Utxo, error) {
	addr, err := common.NewAddress(r.Address)
	if err != nil {
		return common.Utxo{}, fmt.Errorf("parsing address: %w", err)
	}
	value, err := parseAmount(r.Amount)
	if err != nil {
		return common.Utxo{}, fmt.Errorf("parsing amount: %w", err)
	}
	output := babbage.BabbageTransactionOutput{
		OutputAddress: addr,
		OutputAmount:  value,
	}
	switch {
	case r.DataHash != "":
		hashBytes, err := hex.DecodeString(r.DataHash)
		if err != nil {
			return common.Utxo{}, fmt.Errorf("parsing data_hash: %w", err)
		}
		output.DatumOption = babbage.NewBabbageTransactionOutputDatumOptionFromHash(
			common.NewBlake2b256(hashBytes),
		)
	case r.InlineDatum != "":
		datumCbor, err := hex.DecodeString(r.InlineDatum)
		if err != nil {
			return common.Utxo{}, fmt.Errorf("parsing inline_datum: %w", err)
		}
		datumOption, err := babbage.NewBabbageTransactionOutputDatumOptionFromData(datumCbor)
		if err != nil {
			return common.Utxo{}, fmt.Errorf("decoding inline_datum: %w", err)
		}
		output.DatumOption = datumOption
	}
	if r.ReferenceScriptHash != "" && fetchScript != nil {
		scriptCbor, err := fetchScript(r.ReferenceScriptHash)
		if err != nil {
			return common.Utxo{}, fmt.Errorf("fetching reference script: %w", err)
		}
		output.ScriptRef = &cbor.Tag{Number: 24, Content: scriptCbor}
	}
	return common.Utxo{
		Id:     shelley.NewShelleyTransactionInput(r.TxHash, int(r.OutputIndex)),
		Output: &output,
	}, nil
}

func parseAmount(amount []UtxoAmount) (mary.MaryTransactionOutputValue, error) {
	var coin uint64
	assets := make(map[common.Blake2b224]map[cbor.ByteString]*big.Int)
	for _, a := range amount {
		if a.Unit == "lovelace" {
			q, err := parseUint64(a.Quantity)
			if err != nil {
				return mary.MaryTransactionOutputValue{}, fmt.Errorf(
					"parsing lovelace quantity: %w",
					err,
				)
			}
			coin = q
			continue
		}
		if len(a.Unit) < 56 {
			return mary.MaryTransactionOutputValue{}, fmt.Errorf(
				"unit %q too short to contain a policy id",
				a.Unit,
			)
		}
		policyHex, nameHex := a.Unit[:56], a.Unit[56:]
		policyBytes, err := hex.DecodeString(policyHex)
		if err != nil {
			return mary.MaryTransactionOutputValue{}, fmt.Errorf("parsing policy id: %w", err)
		}
		nameBytes, err := hex.DecodeString(nameHex)
		if err != nil {
			return mary.MaryTransactionOutputValue{}, fmt.Errorf("parsing asset name: %w", err)
		}
		q, ok := new(big.Int).SetString(a.Quantity, 10)
		if !ok {
			return mary.MaryTransactionOutputValue{}, fmt.Errorf(
				"parsing asset quantity %q",
				a.Quantity,
			)
		}
		policyId := common.NewBlake2b224(policyBytes)
		if assets[policyId] == nil {
			assets[policyId] = make(map[cbor.ByteString]*big.Int)
		}
		assets[policyId][cbor.NewByteString(nameBytes)] = q
	}
	multiAsset := common.NewMultiAsset(assets)
	return mary.MaryTransactionOutputValue{
		Amount: coin,
		Assets: &multiAsset,
	}, nil
}

func parseUint64(s string) (uint64, error) {
	q, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return q.Uint64(), nil
}
