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

package tx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alephium-chain/alph-vm/common"
	"github.com/alephium-chain/alph-vm/vm"
)

func sampleInput() TxOutputRef {
	return TxOutputRef{Hash: common.BytesToHash([]byte("a-spent-utxo")), Index: 1}
}

func TestUnsignedTransactionValidate(t *testing.T) {
	good := &UnsignedTransaction{
		Inputs:       []TxOutputRef{sampleInput()},
		FixedOutputs: []AssetOutput{{Amount: vm.NewU256FromUint64(100), Address: vm.Address{}}},
		GasAmount:    20000,
		GasPrice:     vm.NewU256FromUint64(1),
	}
	require.NoError(t, good.Validate())

	noInputs := *good
	noInputs.Inputs = nil
	require.Error(t, noInputs.Validate())

	zeroGas := *good
	zeroGas.GasAmount = 0
	require.Error(t, zeroGas.Validate())

	zeroPrice := *good
	zeroPrice.GasPrice = vm.NewU256FromUint64(0)
	require.Error(t, zeroPrice.Validate())

	dustOutput := *good
	dustOutput.FixedOutputs = []AssetOutput{{Amount: vm.NewU256FromUint64(0)}}
	require.Error(t, dustOutput.Validate())
}

func TestUnsignedTransactionValidateEmptyScript(t *testing.T) {
	tx := &UnsignedTransaction{
		Inputs:    []TxOutputRef{sampleInput()},
		GasAmount: 1,
		GasPrice:  vm.NewU256FromUint64(1),
		Script:    &vm.Contract{},
	}
	require.Error(t, tx.Validate(), "a non-nil script with no methods is invalid")
}

func TestUnsignedTransactionGasFee(t *testing.T) {
	tx := &UnsignedTransaction{GasAmount: 1000, GasPrice: vm.NewU256FromUint64(2)}
	require.Equal(t, uint64(2000), tx.GasFee().Uint64())
}

func TestUnsignedTransactionFirstInputRef(t *testing.T) {
	in := sampleInput()
	tx := &UnsignedTransaction{Inputs: []TxOutputRef{in}}
	require.Equal(t, in.Bytes(), tx.FirstInputRef())

	empty := &UnsignedTransaction{}
	require.Nil(t, empty.FirstInputRef())
}

func TestUnsignedTransactionTotalOutputAlf(t *testing.T) {
	tx := &UnsignedTransaction{
		FixedOutputs: []AssetOutput{
			{Amount: vm.NewU256FromUint64(10)},
			{Amount: vm.NewU256FromUint64(15)},
		},
	}
	require.Equal(t, uint64(25), tx.TotalOutputAlf().Uint64())
}

func TestTxOutputRefBytesIncludesIndex(t *testing.T) {
	a := TxOutputRef{Hash: common.BytesToHash([]byte("x")), Index: 0}
	b := TxOutputRef{Hash: common.BytesToHash([]byte("x")), Index: 1}
	require.NotEqual(t, a.Bytes(), b.Bytes(), "distinct indices into the same tx must serialize differently")
}
