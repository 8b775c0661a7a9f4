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

// Command alphvm is a standalone harness for running or disassembling
// a single hex-encoded contract/script against an in-memory world
// state — the VM's analogue of the teacher's cmd/evm offline runner,
// built on the same urfave/cli/v2 App/Command/Flag convention as
// cmd/geth.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/alephium-chain/alph-vm/common"
	"github.com/alephium-chain/alph-vm/log"
	"github.com/alephium-chain/alph-vm/vm"
)

var (
	scriptFlag = &cli.StringFlag{
		Name:     "script",
		Usage:    "Path to a file holding the hex-encoded contract/script bytecode",
		Required: true,
	}
	stateFlag = &cli.StringFlag{
		Name:  "state",
		Usage: "Path to a file holding the hex-encoded EncodeVals list passed as the invoked method's arguments",
	}
	gasAmountFlag = &cli.Uint64Flag{
		Name:  "gas-amount",
		Usage: "Gas allotted to the run",
		Value: 1000000,
	}
	gasPriceFlag = &cli.Uint64Flag{
		Name:  "gas-price",
		Usage: "Gas price, in minimal ALPH units",
		Value: 1,
	}
	methodFlag = &cli.IntFlag{
		Name:  "method",
		Usage: "Index of the method to invoke",
		Value: 0,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Log verbosity: 0=crit 1=error 2=warn 3=info 4=debug 5=trace",
		Value: 3,
	}
)

func main() {
	app := &cli.App{
		Name:  "alphvm",
		Usage: "run or disassemble Alephium VM bytecode",
		Commands: []*cli.Command{
			runCommand,
			disasmCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "execute a script/contract's method",
	Flags: []cli.Flag{scriptFlag, stateFlag, gasAmountFlag, gasPriceFlag, methodFlag, verbosityFlag},
	Action: func(c *cli.Context) error {
		log.SetLevel(log.Lvl(c.Int(verbosityFlag.Name)))

		contract, raw, err := loadContract(c.String(scriptFlag.Name))
		if err != nil {
			return err
		}

		world := vm.NewInMemoryWorldState()
		block := vm.BlockEnv{TimeStampMillis: 0, Target: vm.NewU256FromUint64(0)}
		firstInputRef := []byte("alphvm-cli-harness")
		ctx := vm.NewContext(world, block, common.Hash{}, c.Uint64(gasAmountFlag.Name), vm.NewU256FromUint64(c.Uint64(gasPriceFlag.Name)), nil, firstInputRef)

		var args []vm.Val
		if p := c.String(stateFlag.Name); p != "" {
			args, err = loadArgs(p)
			if err != nil {
				return err
			}
		}

		obj := &vm.ContractObj{Code: contract, Fields: nil}
		addr := vm.Address{}
		state, rets, err := vm.Run(ctx, obj, c.Int(methodFlag.Name), args, addr, vm.CodeHash(raw), contract.IsStateful())

		fmt.Printf("state: %s\n", state)
		fmt.Printf("gas used: %d\n", ctx.GasUsed())
		if err != nil {
			return fmt.Errorf("run failed: %w", err)
		}
		for i, v := range rets {
			fmt.Printf("return[%d]: %s\n", i, v)
		}
		return nil
	},
}

var disasmCommand = &cli.Command{
	Name:  "disasm",
	Usage: "print a script/contract's decoded instruction listing",
	Flags: []cli.Flag{scriptFlag},
	Action: func(c *cli.Context) error {
		contract, _, err := loadContract(c.String(scriptFlag.Name))
		if err != nil {
			return err
		}
		for i, m := range contract.Methods {
			fmt.Printf("method %d (public=%v payable=%v):\n", i, m.IsPublic, m.IsPayable)
			fmt.Print(vm.Disassemble(m.Instrs))
		}
		return nil
	},
}

func loadContract(path string) (*vm.Contract, []byte, error) {
	hexBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read script: %w", err)
	}
	raw, err := hex.DecodeString(trimHex(string(hexBytes)))
	if err != nil {
		return nil, nil, fmt.Errorf("decode script hex: %w", err)
	}
	contract, err := vm.DecodeContract(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode contract: %w", err)
	}
	return contract, raw, nil
}

func loadArgs(path string) ([]vm.Val, error) {
	hexBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	raw, err := hex.DecodeString(trimHex(string(hexBytes)))
	if err != nil {
		return nil, fmt.Errorf("decode state hex: %w", err)
	}
	vals, _, err := vm.DecodeVals(raw)
	if err != nil {
		return nil, fmt.Errorf("decode state args: %w", err)
	}
	return vals, nil
}

func trimHex(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
