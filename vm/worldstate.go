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

import "github.com/alephium-chain/alph-vm/common"

// WorldState is the only way the VM ever touches persisted contract
// state, per spec.md §1/§2 ("storage engine ... accessed only via a
// WorldState trait"). It mirrors the teacher's StateDB interface shape
// (core/vm/evm.go consumes state only through such an interface), with
// LoadContract/CreateContract/DestroyContract standing in for StateDB's
// GetState/SetState/SelfDestruct.
type WorldState interface {
	LoadContract(id common.Hash) (*StatefulContractObj, error)
	CreateContract(id common.Hash, obj *StatefulContractObj) error
	DestroyContract(id common.Hash) error
	ContractExists(id common.Hash) bool

	// OutputBalances is the transaction-scoped accumulator Transfer*/
	// IssueToken opcodes write into, per spec.md §4.6.
	OutputBalances() *OutputBalances
}

// InMemoryWorldState is a simple map-backed WorldState, suitable for
// the CLI harness and unit tests — a snapshot view built up-front, per
// spec.md §5 ("expected to serve from an in-memory snapshot built
// before execution").
type InMemoryWorldState struct {
	contracts map[common.Hash]*StatefulContractObj
	output    *OutputBalances
}

func NewInMemoryWorldState() *InMemoryWorldState {
	return &InMemoryWorldState{
		contracts: make(map[common.Hash]*StatefulContractObj),
		output:    NewOutputBalances(),
	}
}

func (w *InMemoryWorldState) LoadContract(id common.Hash) (*StatefulContractObj, error) {
	obj, ok := w.contracts[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return obj, nil
}

func (w *InMemoryWorldState) CreateContract(id common.Hash, obj *StatefulContractObj) error {
	w.contracts[id] = obj
	return nil
}

func (w *InMemoryWorldState) DestroyContract(id common.Hash) error {
	if _, ok := w.contracts[id]; !ok {
		return ErrContractNotFound
	}
	delete(w.contracts, id)
	return nil
}

func (w *InMemoryWorldState) ContractExists(id common.Hash) bool {
	_, ok := w.contracts[id]
	return ok
}

func (w *InMemoryWorldState) OutputBalances() *OutputBalances { return w.output }
