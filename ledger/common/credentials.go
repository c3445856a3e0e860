// Copyright 2024 Blink Labs Software
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
	"fmt"

	"github.com/cardanoforge/txcore/cbor"

	"github.com/blinklabs-io/plutigo/data"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
	"golang.org/x/crypto/blake2b"
)

const (
	StakeCredentialTypeAddrKeyHash = 0
	StakeCredentialTypeScriptHash  = 1
)

type StakeCredential struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CredType   uint
	Credential []byte
}

func (c *StakeCredential) Hash() Blake2b224 {
	hash, err := blake2b.New(28, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error creating empty blake2b hash: %s",
				err,
			),
		)
	}
	if c != nil {
		hash.Write(c.Credential[:])
	}
	return Blake2b224(hash.Sum(nil))
}

func (c *StakeCredential) Utxorpc() *utxorpc.StakeCredential {
	ret := &utxorpc.StakeCredential{}
	switch c.CredType {
	case StakeCredentialTypeAddrKeyHash:
		ret.StakeCredential = &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: c.Credential[:],
		}
	case StakeCredentialTypeScriptHash:
		ret.StakeCredential = &utxorpc.StakeCredential_ScriptHash{
			ScriptHash: c.Credential[:],
		}
	}
	return ret
}

// Credential is the fixed-size counterpart of StakeCredential used by the
// certificate and governance types, whose CBOR shape and hash comparisons
// depend on a comparable, addressable 28-byte credential rather than a slice.
const (
	CredentialTypeAddrKeyHash = 0
	CredentialTypeScriptHash  = 1
)

type Credential struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CredType   uint
	Credential Blake2b224
}

func (c Credential) Hash() Blake2b224 {
	return c.Credential
}

func (c Credential) Utxorpc() (*utxorpc.StakeCredential, error) {
	switch c.CredType {
	case CredentialTypeAddrKeyHash:
		return &utxorpc.StakeCredential{
			StakeCredential: &utxorpc.StakeCredential_AddrKeyHash{
				AddrKeyHash: c.Credential.Bytes(),
			},
		}, nil
	case CredentialTypeScriptHash:
		return &utxorpc.StakeCredential{
			StakeCredential: &utxorpc.StakeCredential_ScriptHash{
				ScriptHash: c.Credential.Bytes(),
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown credential type: %d", c.CredType)
	}
}

func (c Credential) ToPlutusData() data.PlutusData {
	switch c.CredType {
	case CredentialTypeAddrKeyHash:
		return data.NewConstr(0, c.Credential.ToPlutusData())
	case CredentialTypeScriptHash:
		return data.NewConstr(1, c.Credential.ToPlutusData())
	default:
		return nil
	}
}
