// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/tx"
	"github.com/voltio/volt-chain/volt"
	"github.com/voltio/volt-chain/xenv"
)

// ScriptEnv carries everything one script call may touch: the state, the
// transaction and block contexts, and the outputs collected on the way.
type ScriptEnv struct {
	state    *state.State
	txCtx    *xenv.TransactionContext
	blockCtx *xenv.BlockContext
	toAddr   *volt.Address

	returnData []byte
	events     []*tx.Event
}

func NewScriptEnv(state *state.State, blockCtx *xenv.BlockContext, txCtx *xenv.TransactionContext, to *volt.Address) *ScriptEnv {
	return &ScriptEnv{
		state:      state,
		txCtx:      txCtx,
		blockCtx:   blockCtx,
		toAddr:     to,
		returnData: make([]byte, 0),
		events:     make([]*tx.Event, 0),
	}
}

func (env *ScriptEnv) GetState() *state.State             { return env.state }
func (env *ScriptEnv) GetTxCtx() *xenv.TransactionContext { return env.txCtx }
func (env *ScriptEnv) GetBlockCtx() *xenv.BlockContext    { return env.blockCtx }
func (env *ScriptEnv) GetToAddr() *volt.Address           { return env.toAddr }

func (env *ScriptEnv) SetReturnData(data []byte) {
	env.returnData = data
}
func (env *ScriptEnv) GetReturnData() []byte {
	if env.returnData == nil || len(env.returnData) <= 0 {
		return nil
	}
	return env.returnData
}

func (env *ScriptEnv) AddEvent(address volt.Address, topics []volt.Bytes32, data []byte) {
	env.events = append(env.events, &tx.Event{
		Address: address,
		Topics:  topics,
		Data:    data,
	})
}

func (env *ScriptEnv) GetEvents() tx.Events {
	return env.events
}

func (env *ScriptEnv) GetOutput() *ScriptEngineOutput {
	return &ScriptEngineOutput{
		data:   env.GetReturnData(),
		events: env.events,
	}
}
