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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
)

// State is the shape of the next data item in a Reader, as determined by
// PeekState without consuming any bytes.
type State int

const (
	StateUnsignedInt State = iota
	StateNegativeInt
	StateByteString
	StateStartIndefiniteByteString
	StateTextString
	StateStartIndefiniteTextString
	StateStartArray
	StateStartMap
	StateTag
	StateBoolean
	StateNull
	StateUndefined
	StateFloat
	StateSimple
	StateEndArray
	StateEndMap
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUnsignedInt:
		return "unsigned_int"
	case StateNegativeInt:
		return "negative_int"
	case StateByteString:
		return "bytestring"
	case StateStartIndefiniteByteString:
		return "start_indefinite_bytestring"
	case StateTextString:
		return "textstring"
	case StateStartIndefiniteTextString:
		return "start_indefinite_textstring"
	case StateStartArray:
		return "start_array"
	case StateStartMap:
		return "start_map"
	case StateTag:
		return "tag"
	case StateBoolean:
		return "boolean"
	case StateNull:
		return "null"
	case StateUndefined:
		return "undefined"
	case StateFloat:
		return "float"
	case StateSimple:
		return "simple"
	case StateEndArray:
		return "end_array"
	case StateEndMap:
		return "end_map"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const breakByte = 0xff

type readerFrameKind uint8

const (
	readerFrameArray readerFrameKind = iota
	readerFrameMap
)

// readerFrame tracks one open container. remaining counts raw sub-items:
// for an array of n elements that is n; for a map of n pairs that is 2*n,
// since keys and values are each read through the same typed-read entry
// points and each decrements remaining by one.
type readerFrame struct {
	kind       readerFrameKind
	indefinite bool
	remaining  uint64
}

// Reader is a single-pass, look-ahead cursor over a borrowed CBOR byte
// slice, implementing RFC 8949 major-type decoding without materializing
// an intermediate tree. It never allocates for primitive reads; only
// byte/text strings, bignums, and encoded-value capture allocate.
type Reader struct {
	data      []byte
	pos       int
	stack     []readerFrame
	lastError error
}

// NewReader returns a Reader positioned at the start of data. The slice is
// borrowed, not copied; the caller must not mutate it while reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// LastError returns the most recent read failure, or nil.
func (r *Reader) LastError() error {
	return r.lastError
}

// Pos returns the current byte offset into the underlying slice.
func (r *Reader) Pos() int {
	return r.pos
}

// Clone produces an independent cursor at the same offset and container
// depth, sharing the underlying byte slice. Used to capture the raw bytes
// of a data item before consuming it destructively.
func (r *Reader) Clone() *Reader {
	stack := make([]readerFrame, len(r.stack))
	copy(stack, r.stack)
	return &Reader{data: r.data, pos: r.pos, stack: stack}
}

func (r *Reader) fail(context string, err error) error {
	r.lastError = fmt.Errorf("%s: %w", context, err)
	return r.lastError
}

func (r *Reader) peekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	return r.data[r.pos], nil
}

// completeItem is called by every read that finishes exactly one data item
// (either a leaf value, or the closing of a nested container). It charges
// that item against the currently open container, if any.
func (r *Reader) completeItem() {
	if n := len(r.stack); n > 0 && r.stack[n-1].remaining > 0 {
		r.stack[n-1].remaining--
	}
}

// decodeHeaderAt reads the major-type/argument header at pos without
// mutating the reader. hlen is the number of bytes the header itself
// occupies (argument value bytes included, item payload excluded).
func decodeHeaderAt(
	data []byte,
	pos int,
) (major byte, arg uint64, hlen int, indefinite bool, err error) {
	if pos >= len(data) {
		return 0, 0, 0, false, io.ErrUnexpectedEOF
	}
	b := data[pos]
	major = b >> 5
	ai := b & 0x1f
	switch {
	case ai < 24:
		return major, uint64(ai), 1, false, nil
	case ai == 24:
		if pos+2 > len(data) {
			return 0, 0, 0, false, io.ErrUnexpectedEOF
		}
		return major, uint64(data[pos+1]), 2, false, nil
	case ai == 25:
		if pos+3 > len(data) {
			return 0, 0, 0, false, io.ErrUnexpectedEOF
		}
		return major, uint64(binary.BigEndian.Uint16(data[pos+1 : pos+3])), 3, false, nil
	case ai == 26:
		if pos+5 > len(data) {
			return 0, 0, 0, false, io.ErrUnexpectedEOF
		}
		return major, uint64(binary.BigEndian.Uint32(data[pos+1 : pos+5])), 5, false, nil
	case ai == 27:
		if pos+9 > len(data) {
			return 0, 0, 0, false, io.ErrUnexpectedEOF
		}
		return major, binary.BigEndian.Uint64(data[pos+1 : pos+9]), 9, false, nil
	case ai == 31:
		return major, 0, 1, true, nil
	default:
		return 0, 0, 0, false, fmt.Errorf("reserved additional info %d", ai)
	}
}

// HeaderInfo decodes the major-type/argument header at the start of data
// without consuming it or allocating a Reader. major is the raw 3-bit major
// type, arg is the decoded length/value argument, headerLen is the number of
// bytes the header occupies (argument bytes included, payload excluded), and
// indefinite reports whether the item uses indefinite-length encoding
// (additional info 31).
func HeaderInfo(data []byte) (major byte, arg uint64, headerLen int, indefinite bool, err error) {
	return decodeHeaderAt(data, 0)
}

// PeekState reports the shape of the next data item without consuming it.
func (r *Reader) PeekState() (State, error) {
	if n := len(r.stack); n > 0 {
		top := &r.stack[n-1]
		if top.indefinite {
			if b, err := r.peekByte(); err == nil && b == breakByte {
				if top.kind == readerFrameArray {
					return StateEndArray, nil
				}
				return StateEndMap, nil
			}
		} else if top.remaining == 0 {
			if top.kind == readerFrameArray {
				return StateEndArray, nil
			}
			return StateEndMap, nil
		}
	}
	if r.pos >= len(r.data) {
		if len(r.stack) > 0 {
			return 0, r.fail("peek_state", io.ErrUnexpectedEOF)
		}
		return StateFinished, nil
	}
	b := r.data[r.pos]
	major := b >> 5
	ai := b & 0x1f
	switch major {
	case 0:
		return StateUnsignedInt, nil
	case 1:
		return StateNegativeInt, nil
	case 2:
		if ai == 31 {
			return StateStartIndefiniteByteString, nil
		}
		return StateByteString, nil
	case 3:
		if ai == 31 {
			return StateStartIndefiniteTextString, nil
		}
		return StateTextString, nil
	case 4:
		return StateStartArray, nil
	case 5:
		return StateStartMap, nil
	case 6:
		return StateTag, nil
	case 7:
		switch {
		case ai == 20 || ai == 21:
			return StateBoolean, nil
		case ai == 22:
			return StateNull, nil
		case ai == 23:
			return StateUndefined, nil
		case ai == 25 || ai == 26 || ai == 27:
			return StateFloat, nil
		case ai == 31:
			return 0, r.fail("peek_state", errors.New("unexpected break outside container"))
		default:
			return StateSimple, nil
		}
	default:
		return 0, r.fail("peek_state", fmt.Errorf("invalid major type %d", major))
	}
}

// PeekTag returns the tag number of the next data item without consuming
// it. The item must be in the tag state.
func (r *Reader) PeekTag() (uint64, error) {
	st, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	if st != StateTag {
		return 0, r.fail("peek_tag", fmt.Errorf("unexpected state %s", st))
	}
	_, arg, _, _, err := decodeHeaderAt(r.data, r.pos)
	if err != nil {
		return 0, r.fail("peek_tag", err)
	}
	return arg, nil
}

// ReadUint consumes a major-type-0 unsigned integer.
func (r *Reader) ReadUint() (uint64, error) {
	st, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	if st != StateUnsignedInt {
		return 0, r.fail("read_uint", fmt.Errorf("unexpected state %s", st))
	}
	_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
	if err != nil {
		return 0, r.fail("read_uint", err)
	}
	r.pos += hlen
	r.completeItem()
	return arg, nil
}

// ReadInt consumes a major-type-0 or major-type-1 integer that fits in an
// int64, following RFC 8949's `-1-n` encoding for negative values.
func (r *Reader) ReadInt() (int64, error) {
	st, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	switch st {
	case StateUnsignedInt:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return 0, r.fail("read_int", err)
		}
		if arg > math.MaxInt64 {
			return 0, r.fail("read_int", errors.New("unsigned value overflows int64"))
		}
		r.pos += hlen
		r.completeItem()
		return int64(arg), nil
	case StateNegativeInt:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return 0, r.fail("read_int", err)
		}
		if arg > math.MaxInt64 {
			return 0, r.fail("read_int", errors.New("negative value overflows int64"))
		}
		r.pos += hlen
		r.completeItem()
		return -1 - int64(arg), nil
	default:
		return 0, r.fail("read_int", fmt.Errorf("unexpected state %s", st))
	}
}

// ReadBigInt consumes a native integer or a bignum tag (2 or 3), producing
// an arbitrary-precision result.
func (r *Reader) ReadBigInt() (*big.Int, error) {
	st, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch st {
	case StateUnsignedInt:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return nil, r.fail("read_bigint", err)
		}
		r.pos += hlen
		r.completeItem()
		return new(big.Int).SetUint64(arg), nil
	case StateNegativeInt:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return nil, r.fail("read_bigint", err)
		}
		r.pos += hlen
		r.completeItem()
		n := new(big.Int).SetUint64(arg)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return n, nil
	case StateTag:
		tag, err := r.PeekTag()
		if err != nil {
			return nil, err
		}
		if tag != 2 && tag != 3 {
			return nil, r.fail("read_bigint", fmt.Errorf("unexpected tag %d for bignum", tag))
		}
		if _, err := r.ReadTag(); err != nil {
			return nil, err
		}
		magBytes, err := r.ReadByteString()
		if err != nil {
			return nil, r.fail("read_bigint", err)
		}
		mag := new(big.Int).SetBytes(magBytes)
		if tag == 3 {
			mag.Add(mag, big.NewInt(1))
			mag.Neg(mag)
		}
		return mag, nil
	default:
		return nil, r.fail("read_bigint", fmt.Errorf("unexpected state %s", st))
	}
}

// ReadByteString consumes a definite or indefinite-length byte string,
// concatenating chunks of the latter.
func (r *Reader) ReadByteString() ([]byte, error) {
	st, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch st {
	case StateByteString:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return nil, r.fail("read_bytestring", err)
		}
		start := r.pos + hlen
		end := start + int(arg)
		if end > len(r.data) || end < start {
			return nil, r.fail("read_bytestring", io.ErrUnexpectedEOF)
		}
		out := make([]byte, arg)
		copy(out, r.data[start:end])
		r.pos = end
		r.completeItem()
		return out, nil
	case StateStartIndefiniteByteString:
		r.pos++
		var buf bytes.Buffer
		for {
			b, err := r.peekByte()
			if err != nil {
				return nil, r.fail("read_bytestring", err)
			}
			if b == breakByte {
				r.pos++
				break
			}
			major, arg, hlen, indef, err := decodeHeaderAt(r.data, r.pos)
			if err != nil {
				return nil, r.fail("read_bytestring", err)
			}
			if major != 2 || indef {
				return nil, r.fail(
					"read_bytestring",
					errors.New("invalid chunk in indefinite byte string"),
				)
			}
			start := r.pos + hlen
			end := start + int(arg)
			if end > len(r.data) {
				return nil, r.fail("read_bytestring", io.ErrUnexpectedEOF)
			}
			buf.Write(r.data[start:end])
			r.pos = end
		}
		r.completeItem()
		return buf.Bytes(), nil
	default:
		return nil, r.fail("read_bytestring", fmt.Errorf("unexpected state %s", st))
	}
}

// ReadTextString consumes a definite or indefinite-length UTF-8 text
// string, concatenating chunks of the latter.
func (r *Reader) ReadTextString() (string, error) {
	st, err := r.PeekState()
	if err != nil {
		return "", err
	}
	switch st {
	case StateTextString:
		_, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return "", r.fail("read_textstring", err)
		}
		start := r.pos + hlen
		end := start + int(arg)
		if end > len(r.data) || end < start {
			return "", r.fail("read_textstring", io.ErrUnexpectedEOF)
		}
		out := string(r.data[start:end])
		r.pos = end
		r.completeItem()
		return out, nil
	case StateStartIndefiniteTextString:
		r.pos++
		var buf bytes.Buffer
		for {
			b, err := r.peekByte()
			if err != nil {
				return "", r.fail("read_textstring", err)
			}
			if b == breakByte {
				r.pos++
				break
			}
			major, arg, hlen, indef, err := decodeHeaderAt(r.data, r.pos)
			if err != nil {
				return "", r.fail("read_textstring", err)
			}
			if major != 3 || indef {
				return "", r.fail(
					"read_textstring",
					errors.New("invalid chunk in indefinite text string"),
				)
			}
			start := r.pos + hlen
			end := start + int(arg)
			if end > len(r.data) {
				return "", r.fail("read_textstring", io.ErrUnexpectedEOF)
			}
			buf.Write(r.data[start:end])
			r.pos = end
		}
		r.completeItem()
		return buf.String(), nil
	default:
		return "", r.fail("read_textstring", fmt.Errorf("unexpected state %s", st))
	}
}

// ReadStartArray opens an array, pushing a container frame, and returns the
// element count for a definite-length array or nil for an indefinite one.
func (r *Reader) ReadStartArray() (*uint64, error) {
	st, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	if st != StateStartArray {
		return nil, r.fail("read_start_array", fmt.Errorf("unexpected state %s", st))
	}
	major, arg, hlen, indefinite, err := decodeHeaderAt(r.data, r.pos)
	if err != nil {
		return nil, r.fail("read_start_array", err)
	}
	if major != 4 {
		return nil, r.fail("read_start_array", errors.New("not an array"))
	}
	r.pos += hlen
	if indefinite {
		r.stack = append(r.stack, readerFrame{kind: readerFrameArray, indefinite: true})
		return nil, nil
	}
	r.stack = append(r.stack, readerFrame{kind: readerFrameArray, remaining: arg})
	n := arg
	return &n, nil
}

// ReadEndArray closes the innermost array, consuming its trailing break
// byte if it was opened as indefinite. It is an error to call this while
// elements remain in a definite-length array.
func (r *Reader) ReadEndArray() error {
	n := len(r.stack)
	if n == 0 || r.stack[n-1].kind != readerFrameArray {
		return r.fail("read_end_array", errors.New("not inside an array"))
	}
	top := r.stack[n-1]
	if top.indefinite {
		b, err := r.peekByte()
		if err != nil || b != breakByte {
			return r.fail(
				"read_end_array",
				errors.New("expected break byte to close indefinite array"),
			)
		}
		r.pos++
	} else if top.remaining != 0 {
		return r.fail("read_end_array", fmt.Errorf("%d elements remaining in array", top.remaining))
	}
	r.stack = r.stack[:n-1]
	r.completeItem()
	return nil
}

// ReadStartMap opens a map, pushing a container frame, and returns the pair
// count for a definite-length map or nil for an indefinite one.
func (r *Reader) ReadStartMap() (*uint64, error) {
	st, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	if st != StateStartMap {
		return nil, r.fail("read_start_map", fmt.Errorf("unexpected state %s", st))
	}
	major, arg, hlen, indefinite, err := decodeHeaderAt(r.data, r.pos)
	if err != nil {
		return nil, r.fail("read_start_map", err)
	}
	if major != 5 {
		return nil, r.fail("read_start_map", errors.New("not a map"))
	}
	r.pos += hlen
	if indefinite {
		r.stack = append(r.stack, readerFrame{kind: readerFrameMap, indefinite: true})
		return nil, nil
	}
	if arg > math.MaxUint64/2 {
		return nil, r.fail("read_start_map", errors.New("map pair count overflows"))
	}
	r.stack = append(r.stack, readerFrame{kind: readerFrameMap, remaining: arg * 2})
	n := arg
	return &n, nil
}

// ReadEndMap closes the innermost map, mirroring ReadEndArray.
func (r *Reader) ReadEndMap() error {
	n := len(r.stack)
	if n == 0 || r.stack[n-1].kind != readerFrameMap {
		return r.fail("read_end_map", errors.New("not inside a map"))
	}
	top := r.stack[n-1]
	if top.indefinite {
		b, err := r.peekByte()
		if err != nil || b != breakByte {
			return r.fail(
				"read_end_map",
				errors.New("expected break byte to close indefinite map"),
			)
		}
		r.pos++
	} else if top.remaining != 0 {
		return r.fail("read_end_map", fmt.Errorf("%d sub-items remaining in map", top.remaining))
	}
	r.stack = r.stack[:n-1]
	r.completeItem()
	return nil
}

// ReadTag consumes a tag header, returning its number. The tagged content
// is read separately by the caller and is what actually completes the
// logical item as far as the enclosing container is concerned.
func (r *Reader) ReadTag() (uint64, error) {
	st, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	if st != StateTag {
		return 0, r.fail("read_tag", fmt.Errorf("unexpected state %s", st))
	}
	major, arg, hlen, _, err := decodeHeaderAt(r.data, r.pos)
	if err != nil {
		return 0, r.fail("read_tag", err)
	}
	if major != 6 {
		return 0, r.fail("read_tag", errors.New("not a tag"))
	}
	r.pos += hlen
	return arg, nil
}

// ReadNull consumes a CBOR null (0xf6).
func (r *Reader) ReadNull() error {
	st, err := r.PeekState()
	if err != nil {
		return err
	}
	if st != StateNull {
		return r.fail("read_null", fmt.Errorf("unexpected state %s", st))
	}
	r.pos++
	r.completeItem()
	return nil
}

// ReadBool consumes a CBOR boolean (0xf4/0xf5).
func (r *Reader) ReadBool() (bool, error) {
	st, err := r.PeekState()
	if err != nil {
		return false, err
	}
	if st != StateBoolean {
		return false, r.fail("read_bool", fmt.Errorf("unexpected state %s", st))
	}
	v := r.data[r.pos]&0x1f == 21
	r.pos++
	r.completeItem()
	return v, nil
}

// SkipValue discards the next complete data item, recursing into
// composites. It terminates in time linear in the bytes it consumes,
// since each byte of a malformed or oversized container is visited once.
func (r *Reader) SkipValue() error {
	st, err := r.PeekState()
	if err != nil {
		return err
	}
	switch st {
	case StateUnsignedInt:
		_, err := r.ReadUint()
		return err
	case StateNegativeInt:
		_, err := r.ReadInt()
		return err
	case StateByteString, StateStartIndefiniteByteString:
		_, err := r.ReadByteString()
		return err
	case StateTextString, StateStartIndefiniteTextString:
		_, err := r.ReadTextString()
		return err
	case StateTag:
		if _, err := r.ReadTag(); err != nil {
			return err
		}
		return r.SkipValue()
	case StateBoolean:
		_, err := r.ReadBool()
		return err
	case StateNull:
		return r.ReadNull()
	case StateUndefined:
		r.pos++
		r.completeItem()
		return nil
	case StateFloat, StateSimple:
		_, _, hlen, _, err := decodeHeaderAt(r.data, r.pos)
		if err != nil {
			return r.fail("skip_value", err)
		}
		r.pos += hlen
		r.completeItem()
		return nil
	case StateStartArray:
		n, err := r.ReadStartArray()
		if err != nil {
			return err
		}
		if n != nil {
			for i := uint64(0); i < *n; i++ {
				if err := r.SkipValue(); err != nil {
					return err
				}
			}
			return r.ReadEndArray()
		}
		for {
			inner, err := r.PeekState()
			if err != nil {
				return err
			}
			if inner == StateEndArray {
				return r.ReadEndArray()
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
		}
	case StateStartMap:
		n, err := r.ReadStartMap()
		if err != nil {
			return err
		}
		if n != nil {
			for i := uint64(0); i < *n; i++ {
				if err := r.SkipValue(); err != nil {
					return err
				}
				if err := r.SkipValue(); err != nil {
					return err
				}
			}
			return r.ReadEndMap()
		}
		for {
			inner, err := r.PeekState()
			if err != nil {
				return err
			}
			if inner == StateEndMap {
				return r.ReadEndMap()
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
		}
	default:
		return r.fail("skip_value", fmt.Errorf("cannot skip state %s", st))
	}
}

// ReadEncodedValue returns the raw bytes of the next complete data item,
// consuming it as any other typed read would. Used to populate CBOR
// caches so re-encoding can reproduce non-canonical source bytes exactly.
func (r *Reader) ReadEncodedValue() ([]byte, error) {
	start := r.pos
	if err := r.SkipValue(); err != nil {
		return nil, err
	}
	out := make([]byte, r.pos-start)
	copy(out, r.data[start:r.pos])
	return out, nil
}

// ValidateArrayOfNElements reads a start-array header and confirms it is
// definite-length with exactly n elements.
func (r *Reader) ValidateArrayOfNElements(name string, n uint64) error {
	got, err := r.ReadStartArray()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if got == nil {
		return fmt.Errorf(
			"%s: expected definite-length array of %d elements, got indefinite",
			name,
			n,
		)
	}
	if *got != n {
		return fmt.Errorf("%s: expected %d elements, got %d", name, n, *got)
	}
	return nil
}

// ValidateEnumValue reads a uint and confirms it equals expected, using
// toString (or the raw integer, if nil) to render both sides in the error.
func (r *Reader) ValidateEnumValue(
	name, field string,
	expected uint64,
	toString func(uint64) string,
) error {
	got, err := r.ReadUint()
	if err != nil {
		return fmt.Errorf("%s.%s: %w", name, field, err)
	}
	if got != expected {
		render := toString
		if render == nil {
			render = func(v uint64) string { return fmt.Sprintf("%d", v) }
		}
		return fmt.Errorf(
			"%s.%s: expected %s, got %s",
			name,
			field,
			render(expected),
			render(got),
		)
	}
	return nil
}

// ValidateEndArray closes the innermost array, naming it in any error.
func (r *Reader) ValidateEndArray(name string) error {
	if err := r.ReadEndArray(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// ValidateTag reads a tag and confirms it equals expectedTag.
func (r *Reader) ValidateTag(name string, expectedTag uint64) error {
	got, err := r.ReadTag()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if got != expectedTag {
		return fmt.Errorf("%s: expected tag %d, got %d", name, expectedTag, got)
	}
	return nil
}
