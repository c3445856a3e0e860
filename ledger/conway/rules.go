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

package conway

import (
	"errors"

	"github.com/cardanoforge/txcore/ledger/common"
)

// UtxoValidateCostModelsPresent checks that a cost model is present in the
// protocol parameters for every Plutus language version witnessed by the
// transaction, either directly or through a reference/spent input's script
// reference. This is a structural completeness check on the witness set
// (missing cost models make the transaction body ambiguous to hash/evaluate),
// not an economic ledger rule.
func UtxoValidateCostModelsPresent(
	tx common.Transaction,
	slot uint64,
	ls common.LedgerState,
	pp common.ProtocolParameters,
) error {
	tmpPparams, ok := pp.(*ConwayProtocolParameters)
	if !ok {
		return errors.New("pparams are not expected type")
	}
	tmpTx, ok := tx.(*ConwayTransaction)
	if !ok {
		return errors.New("transaction is not expected type")
	}

	required := map[uint]struct{}{}
	wits := tmpTx.WitnessSet
	if len(wits.WsPlutusV1Scripts.Items()) > 0 {
		required[0] = struct{}{}
	}
	if len(wits.WsPlutusV2Scripts.Items()) > 0 {
		required[1] = struct{}{}
	}
	if len(wits.WsPlutusV3Scripts.Items()) > 0 {
		required[2] = struct{}{}
	}
	for _, refInput := range tmpTx.ReferenceInputs() {
		utxo, err := ls.UtxoById(refInput)
		if err != nil {
			return common.ReferenceInputResolutionError{
				Input: refInput,
				Err:   err,
			}
		}
		script := utxo.Output.ScriptRef()
		if script == nil {
			continue
		}
		switch script.(type) {
		case *common.PlutusV1Script, common.PlutusV1Script:
			required[0] = struct{}{}
		case *common.PlutusV2Script, common.PlutusV2Script:
			required[1] = struct{}{}
		case *common.PlutusV3Script, common.PlutusV3Script:
			required[2] = struct{}{}
		}
	}
	// Per CIP-33, also consider reference scripts on regular (spent) inputs.
	for _, input := range tmpTx.Inputs() {
		utxo, err := ls.UtxoById(input)
		if err != nil {
			continue
		}
		if utxo.Output == nil {
			continue
		}
		script := utxo.Output.ScriptRef()
		if script == nil {
			continue
		}
		switch script.(type) {
		case *common.PlutusV1Script, common.PlutusV1Script:
			required[0] = struct{}{}
		case *common.PlutusV2Script, common.PlutusV2Script:
			required[1] = struct{}{}
		case *common.PlutusV3Script, common.PlutusV3Script:
			required[2] = struct{}{}
		}
	}

	if len(required) == 0 {
		return nil
	}
	for version := range required {
		model, ok := tmpPparams.CostModels[version]
		if !ok || len(model) == 0 {
			return common.MissingCostModelError{Version: version}
		}
	}
	return nil
}
