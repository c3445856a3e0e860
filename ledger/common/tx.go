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

package common

import (
	"iter"

	"github.com/cardanoforge/txcore/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

type Transaction interface {
	TransactionBody
	Type() int
	Cbor() []byte
	Metadata() *cbor.LazyValue
	IsValid() bool
	Consumed() []TransactionInput
	Produced() []Utxo
	Witnesses() TransactionWitnessSet
}

type TransactionBody interface {
	Cbor() []byte
	Fee() uint64
	Hash() string
	Inputs() []TransactionInput
	Outputs() []TransactionOutput
	TTL() uint64
	ProtocolParameterUpdates() (uint64, map[Blake2b224]ProtocolParameterUpdate)
	ValidityIntervalStart() uint64
	ReferenceInputs() []TransactionInput
	Collateral() []TransactionInput
	CollateralReturn() TransactionOutput
	TotalCollateral() uint64
	Certificates() []Certificate
	Withdrawals() map[*Address]uint64
	AuxDataHash() *Blake2b256
	RequiredSigners() []Blake2b224
	AssetMint() *MultiAsset[MultiAssetTypeMint]
	ScriptDataHash() *Blake2b256
	VotingProcedures() VotingProcedures
	ProposalProcedures() []ProposalProcedure
	CurrentTreasuryValue() int64
	Donation() uint64
	Utxorpc() *utxorpc.Tx
}

type TransactionInput interface {
	Id() Blake2b256
	Index() uint32
	String() string
	Utxorpc() *utxorpc.TxInput
}

type TransactionOutput interface {
	Address() Address
	Amount() uint64
	Assets() *MultiAsset[MultiAssetTypeOutput]
	Datum() *cbor.LazyValue
	DatumHash() *Blake2b256
	Cbor() []byte
	Utxorpc() *utxorpc.TxOutput
}

type TransactionWitnessSet interface {
	Vkey() []VkeyWitness
	NativeScripts() []NativeScript
	Bootstrap() []BootstrapWitness
	PlutusData() []cbor.Value
	PlutusV1Scripts() [][]byte
	PlutusV2Scripts() [][]byte
	PlutusV3Scripts() [][]byte
	Redeemers() TransactionWitnessRedeemers
}

type TransactionWitnessRedeemers interface {
	Iter() iter.Seq2[RedeemerKey, RedeemerValue]
	Indexes(RedeemerTag) []uint
	Value(uint, RedeemerTag) RedeemerValue
}

// RedeemerTag identifies which part of a transaction a redeemer applies to.
type RedeemerTag uint8

const (
	RedeemerTagSpend RedeemerTag = iota
	RedeemerTagMint
	RedeemerTagCert
	RedeemerTagReward
	RedeemerTagVoting
	RedeemerTagProposing
)

// RedeemerKey identifies a single redeemer entry within a witness set by
// its purpose tag and the index of the item it applies to (the minted
// policy, the spent input, the certificate, and so on).
type RedeemerKey struct {
	Tag   RedeemerTag
	Index uint32
}

// RedeemerValue is the payload carried by a single redeemer entry.
type RedeemerValue struct {
	Data    Datum
	ExUnits ExUnits
}

// TransactionBodyToUtxorpc converts the input/output/fee portion of a
// transaction body shared across eras into its utxorpc representation.
// Era-specific fields (certificates, withdrawals, validity) are left for
// the caller to overlay.
func TransactionBodyToUtxorpc(b TransactionBody) *utxorpc.Tx {
	txi := make([]*utxorpc.TxInput, 0, len(b.Inputs()))
	for _, input := range b.Inputs() {
		txi = append(txi, input.Utxorpc())
	}
	txo := make([]*utxorpc.TxOutput, 0, len(b.Outputs()))
	for _, output := range b.Outputs() {
		txo = append(txo, output.Utxorpc())
	}
	return &utxorpc.Tx{
		Inputs:  txi,
		Outputs: txo,
		Fee:     b.Fee(),
	}
}

// TransactionBodyBase provides the shared hash-caching behavior used by the
// post-Shelley transaction body types. Embedders must populate their raw
// CBOR bytes via cbor.DecodeStoreCbor on unmarshal.
type TransactionBodyBase struct {
	cbor.DecodeStoreCbor
	hash *Blake2b256
}

func (b *TransactionBodyBase) Hash() string {
	if b.hash == nil {
		tmpHash := Blake2b256Hash(b.Cbor())
		b.hash = &tmpHash
	}
	return b.hash.String()
}

type Utxo struct {
	Id     TransactionInput
	Output TransactionOutput
}
