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
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// hashBlake2b/hashKeccak256/hashSha256/hashSha3 implement spec.md
// §4.4's four hash opcodes, each returning a 32-byte digest. Grouped
// here rather than inline in instructions_bytes.go because they share
// nothing opcode-specific — each is a straight pop/hash/push.
func hashBlake2b(b []byte) [32]byte   { return blake2b.Sum256(b) }
func hashKeccak256(b []byte) [32]byte { return sha3keccak(b) }
func hashSha256(b []byte) [32]byte    { return sha256.Sum256(b) }
func hashSha3(b []byte) [32]byte      { h := sha3.Sum256(b); return h }

// sha3keccak is Keccak-256, distinct from the Sha3 opcode's NIST
// SHA3-256 — the same two-hash-functions-same-family distinction the
// teacher's crypto.Keccak256 vs. any SHA3 caller must keep straight.
func sha3keccak(b []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
