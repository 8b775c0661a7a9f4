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

// BlockEnv is the immutable block-level context captured at execution
// start, per spec.md §5 — the only source BlockTimeStamp/BlockTarget
// may read from; no operation may otherwise observe wall-clock time.
// Mirrors the teacher's BlockContext (core/vm/evm.go), generalized from
// Ethereum's difficulty/basefee fields to Alephium's timestamp/target.
type BlockEnv struct {
	TimeStampMillis int64
	Target          U256
}

// TimeStamp returns the block timestamp as a checked U256, failing
// NegativeTimeStamp if the captured value is negative — a VM-level
// sanity check on what should be an externally-validated block header
// field, per spec.md §7's NegativeTimeStamp error kind.
func (e BlockEnv) TimeStamp() (U256, error) {
	if e.TimeStampMillis < 0 {
		return U256{}, ErrNegativeTimeStamp
	}
	return NewU256FromUint64(uint64(e.TimeStampMillis)), nil
}
