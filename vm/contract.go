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
	"fmt"

	"github.com/alephium-chain/alph-vm/common"
	"golang.org/x/crypto/blake2b"
)

// Method is {locals_type, return_type, instrs}, per spec.md §3.
// isPublic marks it externally callable (spec.md §4.2's PrivateMethod
// check); isPayable marks it allowed to move assets (GLOSSARY).
type Method struct {
	LocalsType []ValType
	ReturnType []ValType
	Instrs     []Instr
	IsPublic   bool
	IsPayable  bool
}

// CheckArgs validates spec.md §3's invariant: len(args)==len(locals_type)
// and each arg's type matches.
func (m *Method) CheckArgs(args []Val) error {
	if len(args) != len(m.LocalsType) {
		return fmt.Errorf("%w: want %d args, got %d", ErrInvalidMethodArgLength, len(m.LocalsType), len(args))
	}
	for i, a := range args {
		if a.Type() != m.LocalsType[i] {
			return fmt.Errorf("%w: arg %d want %s got %s", ErrInvalidMethodParamsType, i, m.LocalsType[i], a.Type())
		}
	}
	return nil
}

// encodeTypes/decodeTypes implement the `[T]` varint(length)||elements
// grammar of spec.md §6 for a list of type tags.
func encodeTypes(ts []ValType) []byte {
	out := encodeVarint(uint64(len(ts)))
	for _, t := range ts {
		out = append(out, byte(t))
	}
	return out
}

func decodeTypes(b []byte) ([]ValType, []byte, error) {
	n, rest, err := decodeVarint(b)
	if err != nil {
		return nil, nil, err
	}
	out := make([]ValType, 0, n)
	for i := uint64(0); i < n; i++ {
		if len(rest) < 1 {
			return nil, nil, fmt.Errorf("decode types: short input")
		}
		out = append(out, ValType(rest[0]))
		rest = rest[1:]
	}
	return out, rest, nil
}

// EncodeMethod serializes m as locals_type ++ return_type ++ instrs,
// per spec.md §6. The public/payable flags are encoded as a leading
// bit-flag byte, a detail left open by spec.md that mirrors how the
// teacher's bytecode compiler tags visibility (EOF container headers
// in upstream go-ethereum serve the analogous role).
func EncodeMethod(m *Method) []byte {
	flags := byte(0)
	if m.IsPublic {
		flags |= 0x1
	}
	if m.IsPayable {
		flags |= 0x2
	}
	out := []byte{flags}
	out = append(out, encodeTypes(m.LocalsType)...)
	out = append(out, encodeTypes(m.ReturnType)...)
	instrBytes, err := EncodeInstrs(m.Instrs)
	if err != nil {
		// EncodeMethod only runs on already-validated Instr values
		// produced by DecodeMethod or the builder helpers below; an
		// offset that escaped MinJumpOffset/MaxJumpOffset here is a
		// programming error, not a runtime condition to recover from.
		panic(err)
	}
	out = append(out, encodeVarint(uint64(len(m.Instrs)))...)
	out = append(out, instrBytes...)
	return out
}

// DecodeMethod is EncodeMethod's inverse. stateful selects which
// opcode table governs the instruction stream.
func DecodeMethod(b []byte, stateful bool) (*Method, []byte, error) {
	if len(b) < 1 {
		return nil, nil, fmt.Errorf("decode method: empty input")
	}
	flags, rest := b[0], b[1:]
	locals, rest, err := decodeTypes(rest)
	if err != nil {
		return nil, nil, err
	}
	retType, rest, err := decodeTypes(rest)
	if err != nil {
		return nil, nil, err
	}
	n, rest, err := decodeVarint(rest)
	if err != nil {
		return nil, nil, err
	}
	instrs, rest, err := DecodeInstrs(rest, n, stateful)
	if err != nil {
		return nil, nil, err
	}
	return &Method{
		LocalsType: locals,
		ReturnType: retType,
		Instrs:     instrs,
		IsPublic:   flags&0x1 != 0,
		IsPayable:  flags&0x2 != 0,
	}, rest, nil
}

// ContractKind distinguishes the three variants of spec.md §3.
type ContractKind byte

const (
	KindStatelessScript ContractKind = iota
	KindStatefulScript
	KindStatefulContract
)

// Contract is the code object: {fields, methods}, tagged by Kind, per
// spec.md §3. StatelessScript/StatefulScript additionally declare
// `fields` as a script-local frame shape (no persistent storage);
// StatefulContract's Fields declares the persistent field layout a
// deployed ContractObj will carry values for.
type Contract struct {
	Kind    ContractKind
	Fields  []ValType
	Methods []Method
}

func (c *Contract) IsStateful() bool { return c.Kind != KindStatelessScript }

// Encode serializes c as a leading kind byte, then fields_types ++
// methods (a varint method count followed by each method), per
// spec.md §6.
func (c *Contract) Encode() []byte {
	out := []byte{byte(c.Kind)}
	out = append(out, encodeTypes(c.Fields)...)
	out = append(out, encodeVarint(uint64(len(c.Methods)))...)
	for i := range c.Methods {
		out = append(out, EncodeMethod(&c.Methods[i])...)
	}
	return out
}

// DecodeContract is Encode's inverse. It fails with
// ErrSerdeErrorCreateContract on any malformed input, per spec.md
// §4.5's CreateContract opcode contract.
func DecodeContract(b []byte) (*Contract, error) {
	if len(b) < 1 {
		return nil, fmt.Errorf("%w: empty input", ErrSerdeErrorCreateContract)
	}
	kind := ContractKind(b[0])
	rest := b[1:]
	fields, rest, err := decodeTypes(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerdeErrorCreateContract, err)
	}
	n, rest, err := decodeVarint(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerdeErrorCreateContract, err)
	}
	methods := make([]Method, 0, n)
	stateful := kind != KindStatelessScript
	for i := uint64(0); i < n; i++ {
		m, next, err := DecodeMethod(rest, stateful)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerdeErrorCreateContract, err)
		}
		methods = append(methods, *m)
		rest = next
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing bytes", ErrSerdeErrorCreateContract)
	}
	return &Contract{Kind: kind, Fields: fields, Methods: methods}, nil
}

// CodeHash is the code's blake2b-256 digest, used as a contract's
// immutable identity component (spec.md §4.5 ContractCodeHash) — the
// same "codeAndHash" co-located (code, hash) pattern as the teacher's
// core/vm/evm.go codeAndHash helper.
func CodeHash(code []byte) common.Hash {
	return common.Hash(blake2b.Sum256(code))
}

// ContractObj is the runtime instance of a deployed contract: code
// plus current field values, per spec.md §3.
type ContractObj struct {
	Code   *Contract
	Fields []Val
}

// StatefulContractObj additionally carries its on-chain identity.
type StatefulContractObj struct {
	ContractObj
	Address  Address
	CodeHash common.Hash
}

func (o *StatefulContractObj) ContractID() common.Hash {
	return o.Address.Script.ContractID
}
