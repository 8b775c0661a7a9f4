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

// GasCost is a static per-opcode cost bucket. Values are fixed by
// spec.md §6 and are consensus-critical.
type GasCost uint64

const (
	GasZero      GasCost = 0
	GasBase      GasCost = 2
	GasVeryLow   GasCost = 3
	GasLow       GasCost = 5
	GasMid       GasCost = 8
	GasHigh      GasCost = 10
	GasCall      GasCost = 100
	GasCreate    GasCost = 32000
	GasDestroy   GasCost = 5000
	GasBalance   GasCost = 30
	GasHashBase  GasCost = 30
	GasHashWord  GasCost = 6
	GasSignature GasCost = 2000
)

// hashGas computes the G_hash_base + G_hash_per_word * ceil(n/32) cost
// for a hash opcode operating on an n-byte input, per spec.md §4.4.
func hashGas(n int) uint64 {
	words := (uint64(n) + 31) / 32
	return uint64(GasHashBase) + words*uint64(GasHashWord)
}

// MaxFrameDepth and MaxOperandStackSize resolve spec.md's Open Question
// #1 (no explicit source-codified limit): 1024, matching both the
// spec's own "(e.g., 1024)" hint and the teacher's evm.depth cap.
const (
	MaxFrameDepth       = 1024
	MaxOperandStackSize = 1024
)

// MinJumpOffset and MaxJumpOffset bound a Jump/IfTrue/IfFalse payload,
// per spec.md §4.1 and §6.
const (
	MinJumpOffset = -65536
	MaxJumpOffset = 65536
)
