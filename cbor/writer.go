// Copyright 2026 Blink Labs Software
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

package cbor

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"math/big"
)

type writerFrameKind uint8

const (
	writerFrameArray writerFrameKind = iota
	writerFrameMap
)

type writerFrame struct {
	kind       writerFrameKind
	indefinite bool
}

// Writer is a streaming CBOR encoder into an owned, growable buffer. It
// mirrors Reader's contract: one write call per logical data item, with
// explicit start/end pairs for arrays and maps.
type Writer struct {
	buf   []byte
	stack []writerFrame
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the buffer written so far, without copying.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// writeHeader emits a major-type/argument header using the shortest form
// that represents arg, per the canonical encoding policy.
func (w *Writer) writeHeader(major byte, arg uint64) {
	switch {
	case arg < 24:
		w.buf = append(w.buf, major<<5|byte(arg))
	case arg <= math.MaxUint8:
		w.buf = append(w.buf, major<<5|24, byte(arg))
	case arg <= math.MaxUint16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(arg))
		w.buf = append(w.buf, major<<5|25)
		w.buf = append(w.buf, b[:]...)
	case arg <= math.MaxUint32:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(arg))
		w.buf = append(w.buf, major<<5|26)
		w.buf = append(w.buf, b[:]...)
	default:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], arg)
		w.buf = append(w.buf, major<<5|27)
		w.buf = append(w.buf, b[:]...)
	}
}

// WriteUint writes an unsigned integer as a major-type-0 value.
func (w *Writer) WriteUint(v uint64) {
	w.writeHeader(0, v)
}

// WriteSignedInt writes v as major type 0 (non-negative) or 1 (negative),
// per RFC 8949's `-1-n` encoding.
func (w *Writer) WriteSignedInt(v int64) {
	if v >= 0 {
		w.writeHeader(0, uint64(v))
		return
	}
	w.writeHeader(1, uint64(-1-v))
}

// WriteBigInt writes v, narrowing to a native major-type-0/1 integer when
// it fits in 64 bits and only falling back to the bignum tags (2, 3)
// otherwise.
func (w *Writer) WriteBigInt(v *big.Int) {
	if v.Sign() >= 0 {
		if v.IsUint64() {
			w.WriteUint(v.Uint64())
			return
		}
		w.WriteTag(2)
		w.WriteByteString(v.Bytes())
		return
	}
	mag := new(big.Int).Neg(v)
	mag.Sub(mag, big.NewInt(1))
	if mag.IsUint64() {
		w.writeHeader(1, mag.Uint64())
		return
	}
	w.WriteTag(3)
	w.WriteByteString(mag.Bytes())
}

// WriteByteString writes a definite-length byte string.
func (w *Writer) WriteByteString(b []byte) {
	w.writeHeader(2, uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteTextString writes a definite-length UTF-8 text string.
func (w *Writer) WriteTextString(s string) {
	w.writeHeader(3, uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteStartArray opens an array. n is the element count for a
// definite-length array, or nil to write an indefinite-length array that
// must be closed with WriteEndArray.
func (w *Writer) WriteStartArray(n *uint64) {
	if n == nil {
		w.buf = append(w.buf, 4<<5|31)
		w.stack = append(w.stack, writerFrame{kind: writerFrameArray, indefinite: true})
		return
	}
	w.writeHeader(4, *n)
	w.stack = append(w.stack, writerFrame{kind: writerFrameArray})
}

// WriteEndArray closes the innermost array, emitting a break byte only if
// it was opened as indefinite-length.
func (w *Writer) WriteEndArray() error {
	n := len(w.stack)
	if n == 0 || w.stack[n-1].kind != writerFrameArray {
		return errors.New("write_end_array: not inside an array")
	}
	top := w.stack[n-1]
	w.stack = w.stack[:n-1]
	if top.indefinite {
		w.buf = append(w.buf, breakByte)
	}
	return nil
}

// WriteStartMap opens a map. n is the pair count for a definite-length
// map, or nil to write an indefinite-length map that must be closed with
// WriteEndMap.
func (w *Writer) WriteStartMap(n *uint64) {
	if n == nil {
		w.buf = append(w.buf, 5<<5|31)
		w.stack = append(w.stack, writerFrame{kind: writerFrameMap, indefinite: true})
		return
	}
	w.writeHeader(5, *n)
	w.stack = append(w.stack, writerFrame{kind: writerFrameMap})
}

// WriteEndMap closes the innermost map, mirroring WriteEndArray.
func (w *Writer) WriteEndMap() error {
	n := len(w.stack)
	if n == 0 || w.stack[n-1].kind != writerFrameMap {
		return errors.New("write_end_map: not inside a map")
	}
	top := w.stack[n-1]
	w.stack = w.stack[:n-1]
	if top.indefinite {
		w.buf = append(w.buf, breakByte)
	}
	return nil
}

// WriteTag writes a tag header; the tagged content follows as a separate
// write call.
func (w *Writer) WriteTag(tag uint64) {
	w.writeHeader(6, tag)
}

// WriteNull writes CBOR null.
func (w *Writer) WriteNull() {
	w.buf = append(w.buf, 0xf6)
}

// WriteBool writes a CBOR boolean.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 0xf5)
		return
	}
	w.buf = append(w.buf, 0xf4)
}

// WriteEncoded splices pre-encoded, already-valid CBOR bytes verbatim into
// the stream. Used to replay a cached encoding for byte-exact round trips.
func (w *Writer) WriteEncoded(raw []byte) {
	w.buf = append(w.buf, raw...)
}

// GetHexSize returns the length, in characters, of the hex encoding of the
// buffer written so far.
func (w *Writer) GetHexSize() int {
	return hex.EncodedLen(len(w.buf))
}

// EncodeHex returns the buffer written so far as a lowercase hex string.
func (w *Writer) EncodeHex() string {
	return hex.EncodeToString(w.buf)
}

// EncodeBytes returns an owned copy of the buffer written so far.
func (w *Writer) EncodeBytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}
