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

// Stack is a per-frame typed LIFO operand stack, per spec.md §3/§4.2.
// Frames never share a Stack (vm/frame.go design note in spec.md §9:
// "per-frame operand stacks").
type Stack struct {
	data []Val
}

func newStack() *Stack {
	return &Stack{data: make([]Val, 0, 16)}
}

func (s *Stack) Len() int { return len(s.data) }

// push checks capacity, per spec.md §4.2.
func (s *Stack) push(v Val) error {
	if len(s.data) >= MaxOperandStackSize {
		return ErrStackOverflow
	}
	s.data = append(s.data, v)
	return nil
}

// pop fails StackUnderflow when empty, per spec.md §4.2.
func (s *Stack) pop() (Val, error) {
	if len(s.data) == 0 {
		return Val{}, ErrStackUnderflow
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

func (s *Stack) peek() (Val, error) {
	if len(s.data) == 0 {
		return Val{}, ErrStackUnderflow
	}
	return s.data[len(s.data)-1], nil
}

// popN pops exactly n values, returning them in push order (oldest
// first) for ergonomic use by Return/CallLocal's args transfer.
func (s *Stack) popN(n int) ([]Val, error) {
	if len(s.data) < n {
		return nil, ErrStackUnderflow
	}
	out := make([]Val, n)
	copy(out, s.data[len(s.data)-n:])
	s.data = s.data[:len(s.data)-n]
	return out, nil
}

// popBool/popI256/popU256/popByteVec/popAddress are popT<T> per spec.md
// §4.2: InvalidType if the top-of-stack tag doesn't match.
func (s *Stack) popBool() (bool, error) {
	v, err := s.pop()
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, ErrInvalidType
	}
	return b, nil
}

func (s *Stack) popI256() (I256, error) {
	v, err := s.pop()
	if err != nil {
		return I256{}, err
	}
	i, ok := v.AsI256()
	if !ok {
		return I256{}, ErrInvalidType
	}
	return i, nil
}

func (s *Stack) popU256() (U256, error) {
	v, err := s.pop()
	if err != nil {
		return U256{}, err
	}
	u, ok := v.AsU256()
	if !ok {
		return U256{}, ErrInvalidType
	}
	return u, nil
}

func (s *Stack) popByteVec() ([]byte, error) {
	v, err := s.pop()
	if err != nil {
		return nil, err
	}
	b, ok := v.AsByteVec()
	if !ok {
		return nil, ErrInvalidType
	}
	return b, nil
}

func (s *Stack) popAddress() (Address, error) {
	v, err := s.pop()
	if err != nil {
		return Address{}, err
	}
	a, ok := v.AsAddress()
	if !ok {
		return Address{}, ErrInvalidType
	}
	return a, nil
}
