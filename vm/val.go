// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"bytes"
	"errors"
)

var errShortVal = errors.New("val: short or malformed input")

// ValType is Val's fixed type tag, per spec.md §3.
type ValType byte

const (
	TBool    ValType = iota
	TI256
	TU256
	TByteVec
	TAddress
)

func (t ValType) String() string {
	switch t {
	case TBool:
		return "Bool"
	case TI256:
		return "I256"
	case TU256:
		return "U256"
	case TByteVec:
		return "ByteVec"
	case TAddress:
		return "Address"
	default:
		return "Unknown"
	}
}

// Val is the tagged variant every operand-stack slot, local, and field
// holds. Values are immutable; equality is structural, per spec.md §3.
type Val struct {
	typ     ValType
	boolean bool
	i256    I256
	u256    U256
	bytes   []byte
	addr    Address
}

func NewBool(b bool) Val       { return Val{typ: TBool, boolean: b} }
func NewI256(i I256) Val       { return Val{typ: TI256, i256: i} }
func NewU256(u U256) Val       { return Val{typ: TU256, u256: u} }
func NewByteVec(b []byte) Val  { return Val{typ: TByteVec, bytes: append([]byte(nil), b...)} }
func NewAddressVal(a Address) Val { return Val{typ: TAddress, addr: a} }

func (v Val) Type() ValType { return v.typ }

func (v Val) AsBool() (bool, bool)       { return v.boolean, v.typ == TBool }
func (v Val) AsI256() (I256, bool)       { return v.i256, v.typ == TI256 }
func (v Val) AsU256() (U256, bool)       { return v.u256, v.typ == TU256 }
func (v Val) AsByteVec() ([]byte, bool)  { return v.bytes, v.typ == TByteVec }
func (v Val) AsAddress() (Address, bool) { return v.addr, v.typ == TAddress }

// Equal implements the structural equality spec.md §3 requires.
func (v Val) Equal(o Val) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TBool:
		return v.boolean == o.boolean
	case TI256:
		return v.i256.Eq(o.i256)
	case TU256:
		return v.u256.Eq(o.u256)
	case TByteVec:
		return bytes.Equal(v.bytes, o.bytes)
	case TAddress:
		return v.addr.Equal(o.addr)
	default:
		return false
	}
}

// EncodeVal/DecodeVal serialize a single Val as tag-byte-plus-payload,
// the same tagged-variant wire shape AddressConst's operand already
// uses for one field (vm/instr.go), generalized here to every ValType
// so CreateContract/CopyCreateContract can carry an arbitrary field
// list as a single ByteVec stack operand (spec.md §4.5).
func EncodeVal(v Val) []byte {
	out := []byte{byte(v.typ)}
	switch v.typ {
	case TBool:
		if v.boolean {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	case TI256:
		b := v.i256.v.Bytes32()
		out = append(out, encodeBigInt(b)...)
	case TU256:
		out = append(out, encodeBigInt(v.u256.Bytes32())...)
	case TByteVec:
		out = append(out, encodeBytes(v.bytes)...)
	case TAddress:
		out = append(out, encodeBytes(v.addr.Script.Bytes())...)
	}
	return out
}

func DecodeVal(b []byte) (Val, []byte, error) {
	if len(b) < 1 {
		return Val{}, nil, errShortVal
	}
	typ, rest := ValType(b[0]), b[1:]
	switch typ {
	case TBool:
		if len(rest) < 1 {
			return Val{}, nil, errShortVal
		}
		return NewBool(rest[0] != 0), rest[1:], nil
	case TI256:
		raw, rest, err := decodeBigIntBytes(rest)
		if err != nil {
			return Val{}, nil, err
		}
		return NewI256(NewI256FromBytes(raw)), rest, nil
	case TU256:
		raw, rest, err := decodeBigIntBytes(rest)
		if err != nil {
			return Val{}, nil, err
		}
		return NewU256(NewU256FromBytes(raw)), rest, nil
	case TByteVec:
		raw, rest, err := decodeBytes(rest)
		if err != nil {
			return Val{}, nil, err
		}
		return NewByteVec(raw), rest, nil
	case TAddress:
		raw, rest, err := decodeBytes(rest)
		if err != nil {
			return Val{}, nil, err
		}
		ls, remaining, err := DecodeLockupScript(raw)
		if err != nil {
			return Val{}, nil, err
		}
		if len(remaining) != 0 {
			return Val{}, nil, errShortVal
		}
		return NewAddressVal(NewAddress(ls)), rest, nil
	default:
		return Val{}, nil, errShortVal
	}
}

// EncodeVals/DecodeVals wrap a list of Val in the same
// varint(length)||elements grammar as encodeTypes/decodeTypes.
func EncodeVals(vs []Val) []byte {
	out := encodeVarint(uint64(len(vs)))
	for _, v := range vs {
		out = append(out, EncodeVal(v)...)
	}
	return out
}

func DecodeVals(b []byte) ([]Val, []byte, error) {
	n, rest, err := decodeVarint(b)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Val, 0, n)
	for i := uint64(0); i < n; i++ {
		v, next, err := DecodeVal(rest)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, v)
		rest = next
	}
	return out, rest, nil
}

func (v Val) String() string {
	switch v.typ {
	case TBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case TI256:
		return v.i256.String()
	case TU256:
		return v.u256.String()
	case TByteVec:
		return string(v.bytes)
	case TAddress:
		return v.addr.String()
	default:
		return "<invalid>"
	}
}
