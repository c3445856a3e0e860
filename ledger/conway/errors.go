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
	"fmt"
	"strings"

	"github.com/cardanoforge/txcore/ledger/common"
)

type NonDisjointRefInputsError struct {
	Inputs []common.TransactionInput
}

func (e NonDisjointRefInputsError) Error() string {
	tmpInputs := make([]string, len(e.Inputs))
	for idx, tmpInput := range e.Inputs {
		tmpInputs[idx] = tmpInput.String()
	}
	return "non-disjoint reference inputs: " + strings.Join(tmpInputs, ", ")
}

// MissingDatumForSpendingScriptError indicates a spending redeemer whose
// targeted script-locked input carries neither an inline datum nor a
// resolvable datum hash in the witness set.
type MissingDatumForSpendingScriptError struct {
	ScriptHash common.ScriptHash
	Input      common.TransactionInput
}

func (e MissingDatumForSpendingScriptError) Error() string {
	return "missing datum for spending script " + e.ScriptHash.String() +
		" at input " + e.Input.String()
}

// TreasuryDonationWithPlutusV1V2Error indicates a transaction attempted a
// treasury donation while also using PlutusV1 or PlutusV2 scripts, which the
// Conway era disallows.
type TreasuryDonationWithPlutusV1V2Error struct {
	Donation      uint64
	PlutusVersion string
}

func (e TreasuryDonationWithPlutusV1V2Error) Error() string {
	return fmt.Sprintf(
		"treasury donation of %d used with %s scripts",
		e.Donation,
		e.PlutusVersion,
	)
}

// WrongTransactionNetworkIdError indicates a transaction's network ID does
// not match the ledger's configured network ID.
type WrongTransactionNetworkIdError struct {
	TxNetworkId     uint8
	LedgerNetworkId uint
}

func (e WrongTransactionNetworkIdError) Error() string {
	return fmt.Sprintf(
		"wrong transaction network ID: tx has %d, ledger has %d",
		e.TxNetworkId,
		e.LedgerNetworkId,
	)
}

// WrongNetworkProposalAddressError indicates one or more addresses
// referenced by a governance proposal procedure use the wrong network ID.
type WrongNetworkProposalAddressError struct {
	NetId uint
	Addrs []common.Address
}

func (e WrongNetworkProposalAddressError) Error() string {
	tmpAddrs := make([]string, len(e.Addrs))
	for idx, tmpAddr := range e.Addrs {
		tmpAddrs[idx] = tmpAddr.String()
	}
	return "wrong network proposal address(es): " + strings.Join(tmpAddrs, ", ")
}

// EmptyTreasuryWithdrawalsError indicates a TreasuryWithdrawalGovAction
// proposal with no withdrawal entries.
type EmptyTreasuryWithdrawalsError struct{}

func (EmptyTreasuryWithdrawalsError) Error() string {
	return "treasury withdrawal governance action has empty withdrawals"
}

// ProtocolParameterUpdateEmptyError indicates a protocol parameter update
// with no fields set.
type ProtocolParameterUpdateEmptyError struct{}

func (ProtocolParameterUpdateEmptyError) Error() string {
	return "protocol parameter update has no fields set"
}

// ProtocolParameterUpdateFieldZeroError indicates a protocol parameter
// update field that cannot legally be set to zero.
type ProtocolParameterUpdateFieldZeroError struct {
	FieldName string
	Value     uint
}

func (e ProtocolParameterUpdateFieldZeroError) Error() string {
	return fmt.Sprintf(
		"protocol parameter update field %s cannot be zero",
		e.FieldName,
	)
}
