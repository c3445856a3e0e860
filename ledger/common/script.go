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
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/cardanoforge/txcore/cbor"
)

const (
	ScriptRefTypeNativeScript = 0
	ScriptRefTypePlutusV1     = 1
	ScriptRefTypePlutusV2     = 2
	ScriptRefTypePlutusV3     = 3
)

type ScriptHash = Blake2b224

type Script interface {
	isScript()
	Hash() ScriptHash
	RawScriptBytes() []byte
}

type ScriptRef struct {
	Type   uint
	Script Script
}

func (s *ScriptRef) UnmarshalCBOR(data []byte) error {
	// Unwrap outer CBOR tag
	var tmpTag cbor.Tag
	if _, err := cbor.Decode(data, &tmpTag); err != nil {
		return err
	}
	innerCbor, ok := tmpTag.Content.([]byte)
	if !ok {
		return errors.New("unexpected tag type")
	}
	// Determine script type
	var rawScript struct {
		cbor.StructAsArray
		Type uint
		Raw  cbor.RawMessage
	}
	if _, err := cbor.Decode(innerCbor, &rawScript); err != nil {
		return err
	}
	var tmpScript Script
	switch rawScript.Type {
	case ScriptRefTypeNativeScript:
		tmpScript = &NativeScript{}
	case ScriptRefTypePlutusV1:
		tmpScript = &PlutusV1Script{}
	case ScriptRefTypePlutusV2:
		tmpScript = &PlutusV2Script{}
	case ScriptRefTypePlutusV3:
		tmpScript = &PlutusV3Script{}
	default:
		return fmt.Errorf("unknown script type %d", rawScript.Type)
	}
	// Decode script
	if _, err := cbor.Decode(rawScript.Raw, tmpScript); err != nil {
		return err
	}
	s.Type = rawScript.Type
	s.Script = tmpScript
	return nil
}

func (s *ScriptRef) MarshalCBOR() ([]byte, error) {
	tmpData := []any{
		s.Type,
		s.Script,
	}
	tmpDataCbor, err := cbor.Encode(tmpData)
	if err != nil {
		return nil, err
	}
	tmpTag := cbor.Tag{
		Number:  24,
		Content: tmpDataCbor,
	}
	return cbor.Encode(tmpTag)
}

type PlutusV1Script []byte

func (PlutusV1Script) isScript() {}

func (s PlutusV1Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV1},
			[]byte(s),
		),
	)
}

func (s PlutusV1Script) RawScriptBytes() []byte {
	return []byte(s)
}

type PlutusV2Script []byte

func (PlutusV2Script) isScript() {}

func (s PlutusV2Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV2},
			[]byte(s),
		),
	)
}

func (s PlutusV2Script) RawScriptBytes() []byte {
	return []byte(s)
}

type PlutusV3Script []byte

func (PlutusV3Script) isScript() {}

func (s PlutusV3Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV3},
			[]byte(s),
		),
	)
}

func (s PlutusV3Script) RawScriptBytes() []byte {
	return []byte(s)
}

type NativeScript struct {
	cbor.DecodeStoreCbor
	item any
}

func (NativeScript) isScript() {}

func (n *NativeScript) Item() any {
	return n.item
}

func (n *NativeScript) UnmarshalCBOR(data []byte) error {
	n.SetCbor(data)
	r := cbor.NewReader(data)
	if _, err := r.ReadStartArray(); err != nil {
		return err
	}
	id64, err := r.ReadUint()
	if err != nil {
		return err
	}
	id := int(id64)
	var tmpData any
	switch id {
	case 0:
		tmpData = &NativeScriptPubkey{}
	case 1:
		tmpData = &NativeScriptAll{}
	case 2:
		tmpData = &NativeScriptAny{}
	case 3:
		tmpData = &NativeScriptNofK{}
	case 4:
		tmpData = &NativeScriptInvalidBefore{}
	case 5:
		tmpData = &NativeScriptInvalidHereafter{}
	default:
		return fmt.Errorf("unknown native script type %d", id)
	}
	if _, err := cbor.Decode(data, tmpData); err != nil {
		return err
	}
	n.item = tmpData
	return nil
}

// MarshalCBOR writes the cached bytes verbatim when a script was decoded
// from CBOR (preserving non-canonical source encoding for hashing), and
// otherwise encodes the current variant afresh.
func (n *NativeScript) MarshalCBOR() ([]byte, error) {
	if cached := n.Cbor(); cached != nil {
		return cached, nil
	}
	if n.item == nil {
		return nil, errors.New("cannot marshal an empty native script")
	}
	return cbor.Encode(n.item)
}

// clearCbor invalidates the cache so a subsequently mutated script
// re-derives its encoding instead of replaying stale bytes.
func (n *NativeScript) clearCbor() {
	n.SetCbor(nil)
}

// FromNativeScriptItem wraps a concrete native-script variant (one of
// NativeScriptPubkey, NativeScriptAll, NativeScriptAny, NativeScriptNofK,
// NativeScriptInvalidBefore, NativeScriptInvalidHereafter) as a NativeScript.
func FromNativeScriptItem(item any) NativeScript {
	return NativeScript{item: item}
}

type nativeScriptJSON struct {
	Type     string             `json:"type"`
	KeyHash  string             `json:"keyHash,omitempty"`
	Scripts  []nativeScriptJSON `json:"scripts,omitempty"`
	Required uint               `json:"required,omitempty"`
	Slot     uint64             `json:"slot,omitempty"`
}

func (n NativeScript) MarshalJSON() ([]byte, error) {
	j, err := n.toJSONStruct()
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

func (n NativeScript) toJSONStruct() (nativeScriptJSON, error) {
	switch item := n.item.(type) {
	case *NativeScriptPubkey:
		return nativeScriptJSON{Type: "sig", KeyHash: hex.EncodeToString(item.Hash)}, nil
	case *NativeScriptAll:
		scripts, err := nativeScriptListToJSON(item.Scripts)
		if err != nil {
			return nativeScriptJSON{}, err
		}
		return nativeScriptJSON{Type: "all", Scripts: scripts}, nil
	case *NativeScriptAny:
		scripts, err := nativeScriptListToJSON(item.Scripts)
		if err != nil {
			return nativeScriptJSON{}, err
		}
		return nativeScriptJSON{Type: "any", Scripts: scripts}, nil
	case *NativeScriptNofK:
		scripts, err := nativeScriptListToJSON(item.Scripts)
		if err != nil {
			return nativeScriptJSON{}, err
		}
		return nativeScriptJSON{Type: "atLeast", Required: item.N, Scripts: scripts}, nil
	case *NativeScriptInvalidBefore:
		return nativeScriptJSON{Type: "before", Slot: item.Slot}, nil
	case *NativeScriptInvalidHereafter:
		return nativeScriptJSON{Type: "after", Slot: item.Slot}, nil
	default:
		return nativeScriptJSON{}, fmt.Errorf("unknown native script variant %T", n.item)
	}
}

func nativeScriptListToJSON(scripts []NativeScript) ([]nativeScriptJSON, error) {
	ret := make([]nativeScriptJSON, len(scripts))
	for i, s := range scripts {
		j, err := s.toJSONStruct()
		if err != nil {
			return nil, err
		}
		ret[i] = j
	}
	return ret, nil
}

func (n *NativeScript) UnmarshalJSON(data []byte) error {
	var j nativeScriptJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	item, err := nativeScriptItemFromJSON(j)
	if err != nil {
		return err
	}
	n.item = item
	n.clearCbor()
	return nil
}

func nativeScriptItemFromJSON(j nativeScriptJSON) (any, error) {
	switch j.Type {
	case "sig":
		keyHash, err := hex.DecodeString(j.KeyHash)
		if err != nil {
			return nil, fmt.Errorf("decoding keyHash: %w", err)
		}
		return &NativeScriptPubkey{Type: 0, Hash: keyHash}, nil
	case "all":
		scripts, err := nativeScriptListFromJSON(j.Scripts)
		if err != nil {
			return nil, err
		}
		return &NativeScriptAll{Type: 1, Scripts: scripts}, nil
	case "any":
		scripts, err := nativeScriptListFromJSON(j.Scripts)
		if err != nil {
			return nil, err
		}
		return &NativeScriptAny{Type: 2, Scripts: scripts}, nil
	case "atLeast":
		scripts, err := nativeScriptListFromJSON(j.Scripts)
		if err != nil {
			return nil, err
		}
		return &NativeScriptNofK{Type: 3, N: j.Required, Scripts: scripts}, nil
	case "before":
		return &NativeScriptInvalidHereafter{Type: 5, Slot: j.Slot}, nil
	case "after":
		return &NativeScriptInvalidBefore{Type: 4, Slot: j.Slot}, nil
	default:
		return nil, fmt.Errorf("unknown native script type %q", j.Type)
	}
}

func nativeScriptListFromJSON(items []nativeScriptJSON) ([]NativeScript, error) {
	ret := make([]NativeScript, len(items))
	for i, j := range items {
		item, err := nativeScriptItemFromJSON(j)
		if err != nil {
			return nil, err
		}
		ret[i] = NativeScript{item: item}
	}
	return ret, nil
}

// Equal reports whether two native scripts are structurally identical,
// ignoring any decode-time CBOR cache difference.
func (n NativeScript) Equal(other NativeScript) bool {
	aj, err := n.toJSONStruct()
	if err != nil {
		return false
	}
	bj, err := other.toJSONStruct()
	if err != nil {
		return false
	}
	aBytes, _ := json.Marshal(aj)
	bBytes, _ := json.Marshal(bj)
	return string(aBytes) == string(bBytes)
}

func (s NativeScript) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypeNativeScript},
			[]byte(s.Cbor()),
		),
	)
}

func (s NativeScript) RawScriptBytes() []byte {
	return s.Cbor()
}

type NativeScriptPubkey struct {
	cbor.StructAsArray
	Type uint
	Hash []byte
}

type NativeScriptAll struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

type NativeScriptAny struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

type NativeScriptNofK struct {
	cbor.StructAsArray
	Type    uint
	N       uint
	Scripts []NativeScript
}

type NativeScriptInvalidBefore struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}

type NativeScriptInvalidHereafter struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}
