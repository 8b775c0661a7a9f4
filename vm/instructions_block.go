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

// BlockTimeStamp/BlockTarget, per spec.md §5 — the analogue of the
// teacher's opTimestamp/opDifficulty reading BlockContext fields rather
// than observing wall-clock time directly.

func init() {
	registerOp(BlockTimeStamp, opBlockTimeStamp)
	registerOp(BlockTarget, opBlockTarget)
}

func opBlockTimeStamp(ctx *Context, fr *Frame, in Instr) error {
	ts, err := ctx.Block.TimeStamp()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewU256(ts))
}

func opBlockTarget(ctx *Context, fr *Frame, in Instr) error {
	return fr.OpStack.push(NewU256(ctx.Block.Target))
}
