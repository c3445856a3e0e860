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
	"errors"
	"fmt"

	"github.com/cardanoforge/txcore/cbor"
)

// AuxiliaryData abstracts over the three wire formats that Cardano
// transaction auxiliary data has used across eras: a bare metadata map
// (Shelley), a [metadata, native_scripts] pair (Shelley-MA), and a
// tag-259 map carrying metadata alongside all supported script types
// (Alonzo and later).
type AuxiliaryData interface {
	Metadata() (TransactionMetadatum, error)
	NativeScripts() ([]NativeScript, error)
	PlutusV1Scripts() ([]PlutusV1Script, error)
	PlutusV2Scripts() ([]PlutusV2Script, error)
	Cbor() []byte
}

type ShelleyAuxiliaryData struct {
	raw      []byte
	metadata TransactionMetadatum
}

func (a *ShelleyAuxiliaryData) Metadata() (TransactionMetadatum, error) {
	return a.metadata, nil
}

func (a *ShelleyAuxiliaryData) NativeScripts() ([]NativeScript, error) {
	return nil, nil
}

func (a *ShelleyAuxiliaryData) PlutusV1Scripts() ([]PlutusV1Script, error) {
	return nil, nil
}

func (a *ShelleyAuxiliaryData) PlutusV2Scripts() ([]PlutusV2Script, error) {
	return nil, nil
}

func (a *ShelleyAuxiliaryData) Cbor() []byte {
	return a.raw
}

type ShelleyMaAuxiliaryData struct {
	raw           []byte
	metadata      TransactionMetadatum
	nativeScripts []NativeScript
}

func (a *ShelleyMaAuxiliaryData) Metadata() (TransactionMetadatum, error) {
	return a.metadata, nil
}

func (a *ShelleyMaAuxiliaryData) NativeScripts() ([]NativeScript, error) {
	return a.nativeScripts, nil
}

func (a *ShelleyMaAuxiliaryData) PlutusV1Scripts() ([]PlutusV1Script, error) {
	return nil, nil
}

func (a *ShelleyMaAuxiliaryData) PlutusV2Scripts() ([]PlutusV2Script, error) {
	return nil, nil
}

func (a *ShelleyMaAuxiliaryData) Cbor() []byte {
	return a.raw
}

type AlonzoAuxiliaryData struct {
	raw             []byte
	metadata        TransactionMetadatum
	nativeScripts   []NativeScript
	plutusV1Scripts []PlutusV1Script
	plutusV2Scripts []PlutusV2Script
}

func (a *AlonzoAuxiliaryData) Metadata() (TransactionMetadatum, error) {
	return a.metadata, nil
}

func (a *AlonzoAuxiliaryData) NativeScripts() ([]NativeScript, error) {
	return a.nativeScripts, nil
}

func (a *AlonzoAuxiliaryData) PlutusV1Scripts() ([]PlutusV1Script, error) {
	return a.plutusV1Scripts, nil
}

func (a *AlonzoAuxiliaryData) PlutusV2Scripts() ([]PlutusV2Script, error) {
	return a.plutusV2Scripts, nil
}

func (a *AlonzoAuxiliaryData) Cbor() []byte {
	return a.raw
}

func isCborNull(raw []byte) bool {
	return len(raw) == 1 && raw[0] == 0xF6
}

// DecodeAuxiliaryData parses the provided CBOR into the appropriate
// AuxiliaryData implementation based on its top-level shape.
func DecodeAuxiliaryData(raw []byte) (AuxiliaryData, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty auxiliary data")
	}
	switch raw[0] & cborTypeMask {
	case cborTypeMap:
		metadata, err := DecodeMetadatumRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
		return &ShelleyAuxiliaryData{
			raw:      raw,
			metadata: metadata,
		}, nil
	case cborTypeArray:
		var arr []cbor.RawMessage
		if _, err := cbor.Decode(raw, &arr); err != nil {
			return nil, fmt.Errorf(
				"failed to decode shelley-ma auxiliary data: %w",
				err,
			)
		}
		if len(arr) != 2 {
			return nil, errors.New(
				"shelley-ma auxiliary data must have 2 elements",
			)
		}
		var metadata TransactionMetadatum
		if !isCborNull(arr[0]) {
			md, err := DecodeMetadatumRaw(arr[0])
			if err != nil {
				return nil, fmt.Errorf("failed to decode metadata: %w", err)
			}
			metadata = md
		}
		var nativeScripts []NativeScript
		if _, err := cbor.Decode(arr[1], &nativeScripts); err != nil {
			return nil, fmt.Errorf(
				"failed to decode native scripts: %w",
				err,
			)
		}
		return &ShelleyMaAuxiliaryData{
			raw:           raw,
			metadata:      metadata,
			nativeScripts: nativeScripts,
		}, nil
	case cborTypeTag:
		var tmpTag cbor.RawTag
		if _, err := cbor.Decode(raw, &tmpTag); err != nil {
			return nil, fmt.Errorf(
				"failed to decode alonzo auxiliary data tag: %w",
				err,
			)
		}
		if tmpTag.Number != cbor.CborTagMap {
			return nil, fmt.Errorf(
				"expected CBOR tag %d for alonzo auxiliary data, got %d",
				cbor.CborTagMap,
				tmpTag.Number,
			)
		}
		var m map[uint]cbor.RawMessage
		if _, err := cbor.Decode(tmpTag.Content, &m); err != nil {
			return nil, fmt.Errorf(
				"failed to decode alonzo auxiliary data map: %w",
				err,
			)
		}
		var metadata TransactionMetadatum
		if metadataRaw, ok := m[0]; ok && !isCborNull(metadataRaw) {
			md, err := DecodeMetadatumRaw(metadataRaw)
			if err != nil {
				return nil, fmt.Errorf("failed to decode metadata: %w", err)
			}
			metadata = md
		}
		var nativeScripts []NativeScript
		if rawScripts, ok := m[1]; ok {
			if _, err := cbor.Decode(rawScripts, &nativeScripts); err != nil {
				return nil, fmt.Errorf(
					"failed to decode native scripts: %w",
					err,
				)
			}
		}
		var plutusV1Scripts []PlutusV1Script
		if rawScripts, ok := m[2]; ok {
			if _, err := cbor.Decode(rawScripts, &plutusV1Scripts); err != nil {
				return nil, fmt.Errorf(
					"failed to decode plutus v1 scripts: %w",
					err,
				)
			}
		}
		var plutusV2Scripts []PlutusV2Script
		if rawScripts, ok := m[3]; ok {
			if _, err := cbor.Decode(rawScripts, &plutusV2Scripts); err != nil {
				return nil, fmt.Errorf(
					"failed to decode plutus v2 scripts: %w",
					err,
				)
			}
		}
		return &AlonzoAuxiliaryData{
			raw:             raw,
			metadata:        metadata,
			nativeScripts:   nativeScripts,
			plutusV1Scripts: plutusV1Scripts,
			plutusV2Scripts: plutusV2Scripts,
		}, nil
	default:
		return nil, fmt.Errorf(
			"unsupported auxiliary data type: 0x%x",
			raw[0],
		)
	}
}
