// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"context"
	"encoding/binary"
	"log/slog"
	"sync"
	"time"

	"github.com/voltio/volt-chain/co"
	"github.com/voltio/volt-chain/logdb"
	"github.com/voltio/volt-chain/script"
	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
	"github.com/voltio/volt-chain/xenv"
)

const pendingCallLimit = 1024

// Call is one pending script call, admitted by SubmitCall and executed in
// the next packed block.
type Call struct {
	ID     volt.Bytes32
	Origin volt.Address
	To     *volt.Address
	Data   []byte
	Gas    uint64
	Nonce  uint64
}

// Node drives the chain one block per interval. Each block executes the
// pending calls against a checkpointed state, runs the module block hooks,
// then commits state and event logs together.
type Node struct {
	stateCreator *state.Creator
	scriptEngine *script.ScriptEngine
	logDB        *logdb.LogDB
	logger       *slog.Logger

	goes co.Goes

	mu       sync.Mutex
	pending  []*Call
	nonce    uint64
	blockNum uint32
}

func New(stateCreator *state.Creator, se *script.ScriptEngine, logDB *logdb.LogDB) *Node {
	return &Node{
		stateCreator: stateCreator,
		scriptEngine: se,
		logDB:        logDB,
		logger:       slog.With("pkg", "node"),
		pending:      make([]*Call, 0),
	}
}

// BlockNumber returns the number of the last packed block.
func (n *Node) BlockNumber() uint32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.blockNum
}

// SubmitCall admits a script call for the next block. Returns the call id.
func (n *Node) SubmitCall(origin volt.Address, to *volt.Address, data []byte, gas uint64) (volt.Bytes32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.pending) >= pendingCallLimit {
		return volt.Bytes32{}, errCallQueueFull
	}
	nonce := n.nonce
	n.nonce++

	call := &Call{
		ID:     callID(origin, nonce),
		Origin: origin,
		To:     to,
		Data:   data,
		Gas:    gas,
		Nonce:  nonce,
	}
	n.pending = append(n.pending, call)
	return call.ID, nil
}

// Run packs blocks on the block interval until the context is canceled.
func (n *Node) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(volt.BlockInterval) * time.Second)
	defer ticker.Stop()

	n.logger.Info("node started", "interval", volt.BlockInterval)
	for {
		select {
		case <-ctx.Done():
			n.goes.Wait()
			n.logger.Info("node stopped", "blockNum", n.BlockNumber())
			return ctx.Err()
		case <-ticker.C:
			if err := n.PackBlock(); err != nil {
				n.logger.Error("pack block failed", "error", err)
			}
		}
	}
}

// PackBlock executes one block: pending calls first, module hooks last.
func (n *Node) PackBlock() error {
	n.mu.Lock()
	num := n.blockNum + 1
	calls := n.pending
	n.pending = make([]*Call, 0)
	n.mu.Unlock()

	now := uint64(time.Now().Unix())
	blockCtx := &xenv.BlockContext{Number: num, Time: now}
	blockID := blockIDOf(num)

	st, err := n.stateCreator.NewState()
	if err != nil {
		return err
	}
	batch := n.logDB.Prepare(blockID, num, now)

	n.scriptEngine.OnBlockStart(num)

	for _, call := range calls {
		txCtx := &xenv.TransactionContext{
			ID:     call.ID,
			Origin: call.Origin,
			Nonce:  call.Nonce,
		}
		checkpoint := st.NewCheckpoint()
		senv := setypes.NewScriptEnv(st, blockCtx, txCtx, call.To)

		output, _, err := n.scriptEngine.HandleScriptData(senv, call.Data, call.To, call.Gas)
		if err != nil || st.Err() != nil {
			st.RevertTo(checkpoint)
			n.logger.Warn("call reverted", "id", call.ID.AbbrevString(), "error", err)
			continue
		}
		batch.ForTransaction(call.ID, call.Origin).Insert(output.GetEvents())
	}

	// block-end hooks run outside any transaction context
	hookEnv := setypes.NewScriptEnv(st, blockCtx, &xenv.TransactionContext{}, nil)
	n.scriptEngine.OnBlockEnd(hookEnv)
	if hookEvents := hookEnv.GetEvents(); len(hookEvents) > 0 {
		batch.ForTransaction(volt.Bytes32{}, volt.Address{}).Insert(hookEvents)
	}

	if err := st.Err(); err != nil {
		return err
	}
	if err := st.Stage().Commit(); err != nil {
		return err
	}
	if err := batch.Commit(); err != nil {
		return err
	}

	n.mu.Lock()
	n.blockNum = num
	n.mu.Unlock()

	n.logger.Debug("block packed", "num", num, "calls", len(calls))
	return nil
}

func callID(origin volt.Address, nonce uint64) volt.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], nonce)
	return volt.Blake2b(origin.Bytes(), b[:])
}

func blockIDOf(num uint32) volt.Bytes32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], num)
	return volt.Blake2b([]byte("block"), b[:])
}
