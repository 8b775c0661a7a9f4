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

import "errors"

// The flat error-kind enum. Any one of these aborts the enclosing
// transaction; the VM never recovers from them internally. They are
// sentinel values so callers can use errors.Is against them even after
// ExecError has wrapped one with opcode/pc/depth context.
var (
	ErrStackOverflow             = errors.New("stack overflow")
	ErrStackUnderflow            = errors.New("stack underflow")
	ErrInvalidType               = errors.New("invalid type")
	ErrOutOfBound                = errors.New("out of bound")
	ErrInvalidPC                 = errors.New("invalid pc")
	ErrInvalidCode               = errors.New("invalid code")
	ErrInvalidOffset             = errors.New("invalid offset")
	ErrOutOfGas                  = errors.New("out of gas")
	ErrArithmeticError           = errors.New("arithmetic error")
	ErrInvalidConversion         = errors.New("invalid conversion")
	ErrAssertionFailed           = errors.New("assertion failed")
	ErrInvalidPublicKey          = errors.New("invalid public key")
	ErrVerificationFailed        = errors.New("verification failed")
	ErrNotEnoughBalance          = errors.New("not enough balance")
	ErrBalanceOverflow           = errors.New("balance overflow")
	ErrNoAlfBalanceForAddress    = errors.New("no alf balance for the address")
	ErrNoTokenBalanceForAddress  = errors.New("no token balance for the address")
	ErrInvalidTokenId            = errors.New("invalid token id")
	ErrExpectACaller             = errors.New("expect a caller")
	ErrExpectAContract           = errors.New("expect a contract frame")
	ErrNonPayableFrame           = errors.New("non payable frame")
	ErrContractNotFound          = errors.New("contract not found")
	ErrPrivateMethod             = errors.New("private method")
	ErrInvalidMethodArgLength    = errors.New("invalid method arg length")
	ErrInvalidMethodParamsType   = errors.New("invalid method params type")
	ErrSerdeErrorCreateContract  = errors.New("serde error: create contract")
	ErrNegativeTimeStamp         = errors.New("negative timestamp")
	ErrInvalidTarget             = errors.New("invalid target")
	ErrInvalidIssueToken         = errors.New("invalid issue token")
)

// ExecError wraps a sentinel error kind with the diagnostic context
// spec.md §7 calls for (opcode, pc, frame depth) without changing the
// underlying kind observed via errors.Is — consensus only ever sees the
// binary aborted/succeeded outcome, never this wrapping.
type ExecError struct {
	Kind   error
	Opcode OpCode
	PC     int
	Depth  int
}

func (e *ExecError) Error() string {
	return e.Kind.Error()
}

func (e *ExecError) Unwrap() error { return e.Kind }

func newExecError(kind error, op OpCode, pc, depth int) *ExecError {
	return &ExecError{Kind: kind, Opcode: op, PC: pc, Depth: depth}
}
