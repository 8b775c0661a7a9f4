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
	"errors"
	"testing"
)

func TestStackPushPopOrder(t *testing.T) {
	s := newStack()
	if err := s.push(NewU256(NewU256FromUint64(1))); err != nil {
		t.Fatal(err)
	}
	if err := s.push(NewU256(NewU256FromUint64(2))); err != nil {
		t.Fatal(err)
	}
	v, err := s.pop()
	if err != nil {
		t.Fatal(err)
	}
	if u, _ := v.AsU256(); u.Uint64() != 2 {
		t.Fatalf("LIFO pop want 2, got %s", u)
	}
}

func TestStackPopUnderflow(t *testing.T) {
	s := newStack()
	if _, err := s.pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("want ErrStackUnderflow, got %v", err)
	}
}

func TestStackPushOverflow(t *testing.T) {
	s := newStack()
	for i := 0; i < MaxOperandStackSize; i++ {
		if err := s.push(NewBool(true)); err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
	if err := s.push(NewBool(true)); !errors.Is(err, ErrStackOverflow) {
		t.Fatalf("want ErrStackOverflow, got %v", err)
	}
}

func TestStackPopNPreservesPushOrder(t *testing.T) {
	s := newStack()
	s.push(NewU256(NewU256FromUint64(1)))
	s.push(NewU256(NewU256FromUint64(2)))
	s.push(NewU256(NewU256FromUint64(3)))
	vals, err := s.popN(2)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := vals[0].AsU256()
	b, _ := vals[1].AsU256()
	if a.Uint64() != 2 || b.Uint64() != 3 {
		t.Fatalf("popN(2) want [2,3] oldest-first, got [%s,%s]", a, b)
	}
}

func TestStackPopTypedMismatch(t *testing.T) {
	s := newStack()
	s.push(NewBool(true))
	if _, err := s.popU256(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("popU256 on a Bool must fail InvalidType, got %v", err)
	}
}
