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

// encodeVarint writes n as a big-endian minimum-length integer prefixed
// by its own byte length, per spec.md §6 ("Integer varints are
// big-endian minimum-length").
func encodeVarint(n uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	minimal := buf[i:]
	return append([]byte{byte(len(minimal))}, minimal...)
}

// decodeVarint reads back what encodeVarint wrote.
func decodeVarint(b []byte) (uint64, []byte, error) {
	if len(b) < 1 {
		return 0, nil, fmt.Errorf("varint: empty input")
	}
	n := int(b[0])
	b = b[1:]
	if n > 8 || len(b) < n {
		return 0, nil, fmt.Errorf("varint: invalid length %d", n)
	}
	var buf [8]byte
	copy(buf[8-n:], b[:n])
	return binary.BigEndian.Uint64(buf[:]), b[n:], nil
}

// encodeBigInt encodes a 256-bit checked integer's minimal big-endian
// two's-complement/magnitude bytes, length-prefixed the same way as
// encodeVarint, per spec.md §4.1's "big-endian variable-length integer"
// grammar for I256Const/U256Const.
func encodeBigInt(b [32]byte) []byte {
	i := 0
	for i < 31 && b[i] == 0 {
		i++
	}
	minimal := b[i:]
	return append([]byte{byte(len(minimal))}, minimal...)
}

func decodeBigIntBytes(b []byte) ([]byte, []byte, error) {
	if len(b) < 1 {
		return nil, nil, fmt.Errorf("bigint: empty input")
	}
	n := int(b[0])
	b = b[1:]
	if len(b) < n {
		return nil, nil, fmt.Errorf("bigint: short input")
	}
	return b[:n], b[n:], nil
}

// encodeBytes writes a varint-length-prefixed byte slice, the `[T]`
// grammar spec.md §6 specifies ("varint(length) || elements").
func encodeBytes(b []byte) []byte {
	return append(encodeVarint(uint64(len(b))), b...)
}

func decodeBytes(b []byte) ([]byte, []byte, error) {
	n, rest, err := decodeVarint(b)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < n {
		return nil, nil, fmt.Errorf("bytes: short input, want %d have %d", n, len(rest))
	}
	return rest[:n], rest[n:], nil
}
