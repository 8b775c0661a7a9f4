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
	"encoding/binary"
	"fmt"
)

// Instr is one decoded instruction: an opcode plus its inline payload.
// It is a tagged union in spirit (the "trait hierarchy -> tagged
// unions" design note of spec.md §9); in Go this is a flat struct with
// only the field(s) relevant to Op populated, the same way the teacher
// keeps a single Contract/ScopeContext shape and lets each opcode
// function read only the fields it needs.
type Instr struct {
	Op OpCode

	// ByteIndex: LoadLocal/StoreLocal/LoadField/StoreField/CallLocal/CallExternal
	ByteIndex byte

	// Offset: Jump/IfTrue/IfFalse, a signed 32-bit control offset
	Offset int32

	// IntConst: I256Const/U256Const, minimal big-endian payload bytes
	IntConst []byte

	// BytesConst: BytesConst opcode payload
	BytesConst []byte

	// AddressConst: AddressConst opcode payload
	AddressConst Address
}

// EncodeInstr serializes one instruction: opcode_byte followed by its
// payload, per spec.md §4.1's grammar table.
func EncodeInstr(in Instr) ([]byte, error) {
	out := []byte{byte(in.Op)}
	switch in.Op {
	case LoadLocal, StoreLocal, LoadField, StoreField, CallLocal, CallExternal:
		out = append(out, in.ByteIndex)
	case JumpOp, IfTrue, IfFalse:
		if in.Offset < MinJumpOffset || in.Offset > MaxJumpOffset {
			return nil, fmt.Errorf("%w: offset %d out of [%d,%d]", ErrInvalidOffset, in.Offset, MinJumpOffset, MaxJumpOffset)
		}
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(in.Offset))
		out = append(out, buf[:]...)
	case I256Const, U256Const:
		out = append(out, encodeBigInt(padTo32(in.IntConst))...)
	case BytesConst:
		out = append(out, encodeBytes(in.BytesConst)...)
	case AddressConst:
		out = append(out, encodeBytes(in.AddressConst.Script.Bytes())...)
	default:
		// no payload
	}
	return out, nil
}

// padTo32 right-aligns b into a 32-byte buffer so encodeBigInt always
// strips from a fixed-width representation (keeps round-tripping exact
// for values that were constructed directly rather than decoded).
func padTo32(b []byte) [32]byte {
	var out [32]byte
	if len(b) >= 32 {
		copy(out[:], b[len(b)-32:])
		return out
	}
	copy(out[32-len(b):], b)
	return out
}

// DecodeInstr reads one instruction from b under the given table mode.
// It fails InvalidCode if the opcode byte has no assigned instruction
// in the active table, and InvalidOffset if a control offset is out of
// range — both per spec.md §4.1.
func DecodeInstr(b []byte, stateful bool) (Instr, []byte, error) {
	if len(b) < 1 {
		return Instr{}, nil, fmt.Errorf("decode: empty input")
	}
	op := OpCode(b[0])
	if !IsValidOpcode(b[0], stateful) {
		return Instr{}, nil, fmt.Errorf("%w: 0x%02x", ErrInvalidCode, b[0])
	}
	rest := b[1:]
	switch op {
	case LoadLocal, StoreLocal, LoadField, StoreField, CallLocal, CallExternal:
		if len(rest) < 1 {
			return Instr{}, nil, fmt.Errorf("decode %s: missing index byte", op)
		}
		return Instr{Op: op, ByteIndex: rest[0]}, rest[1:], nil
	case JumpOp, IfTrue, IfFalse:
		if len(rest) < 4 {
			return Instr{}, nil, fmt.Errorf("decode %s: missing offset", op)
		}
		off := int32(binary.BigEndian.Uint32(rest[:4]))
		if off < MinJumpOffset || off > MaxJumpOffset {
			return Instr{}, nil, fmt.Errorf("%w: offset %d out of range", ErrInvalidOffset, off)
		}
		return Instr{Op: op, Offset: off}, rest[4:], nil
	case I256Const, U256Const:
		payload, rest, err := decodeBigIntBytes(rest)
		if err != nil {
			return Instr{}, nil, err
		}
		return Instr{Op: op, IntConst: payload}, rest, nil
	case BytesConst:
		payload, rest, err := decodeBytes(rest)
		if err != nil {
			return Instr{}, nil, err
		}
		return Instr{Op: op, BytesConst: payload}, rest, nil
	case AddressConst:
		raw, rest, err := decodeBytes(rest)
		if err != nil {
			return Instr{}, nil, err
		}
		ls, remaining, err := DecodeLockupScript(raw)
		if err != nil {
			return Instr{}, nil, err
		}
		if len(remaining) != 0 {
			return Instr{}, nil, fmt.Errorf("decode AddressConst: trailing bytes")
		}
		return Instr{Op: op, AddressConst: NewAddress(ls)}, rest, nil
	default:
		return Instr{Op: op}, rest, nil
	}
}

// DecodeInstrs decodes a full back-to-back instruction stream of n
// instructions (the method body's inline encoding, see vm/contract.go).
func DecodeInstrs(b []byte, n uint64, stateful bool) ([]Instr, []byte, error) {
	instrs := make([]Instr, 0, n)
	for i := uint64(0); i < n; i++ {
		in, rest, err := DecodeInstr(b, stateful)
		if err != nil {
			return nil, nil, err
		}
		instrs = append(instrs, in)
		b = rest
	}
	return instrs, b, nil
}

// EncodeInstrs serializes a sequence of instructions back to back, with
// no length prefix of its own — the caller (Method's encoder) is
// responsible for the varint(length) wrapper per spec.md §6.
func EncodeInstrs(instrs []Instr) ([]byte, error) {
	var out []byte
	for _, in := range instrs {
		b, err := EncodeInstr(in)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Disassemble renders a decoded instruction stream as a human-readable
// listing, one mnemonic per line — a debugging convenience named in
// SPEC_FULL.md §12, in the spirit of the teacher's opcode-name String()
// methods used throughout tracers.
func Disassemble(instrs []Instr) string {
	out := ""
	for i, in := range instrs {
		out += fmt.Sprintf("%04d %s", i, in.Op)
		switch in.Op {
		case LoadLocal, StoreLocal, LoadField, StoreField, CallLocal, CallExternal:
			out += fmt.Sprintf(" %d", in.ByteIndex)
		case JumpOp, IfTrue, IfFalse:
			out += fmt.Sprintf(" %+d", in.Offset)
		case I256Const, U256Const:
			out += fmt.Sprintf(" 0x%x", in.IntConst)
		case BytesConst:
			out += fmt.Sprintf(" 0x%x", in.BytesConst)
		case AddressConst:
			out += " " + in.AddressConst.String()
		}
		out += "\n"
	}
	return out
}
