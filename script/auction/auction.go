// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"
	"log/slog"

	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
)

var (
	AuctionGlobInst *Auction
	log             = slog.With("pkg", "auction")
)

// Auction is the energy auction module. It owns four keyed stores: the
// auction registry, the participant rosters, the block-indexed execution
// queue and the id sequence. All mutation goes through the opcode handlers
// and the block-end settlement hook.
type Auction struct {
	stateCreator *state.Creator
	logger       *slog.Logger
}

func GetAuctionGlobInst() *Auction {
	return AuctionGlobInst
}

func SetAuctionGlobInst(inst *Auction) {
	AuctionGlobInst = inst
}

func NewAuction(sc *state.Creator) *Auction {
	auction := &Auction{
		stateCreator: sc,
		logger:       slog.With("pkg", "auction"),
	}
	SetAuctionGlobInst(auction)
	return auction
}

func (a *Auction) Start() error {
	log.Info("auction module started")
	return nil
}

func (a *Auction) PrepareAuctionHandler() func(senv *setypes.ScriptEnv, payload []byte, to *volt.Address, gas uint64) (*setypes.ScriptEngineOutput, uint64, error) {
	return func(senv *setypes.ScriptEnv, payload []byte, to *volt.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
		ab, err := AuctionDecodeFromBytes(payload)
		if err != nil {
			log.Error("decode auction body failed", "error", err)
			return nil, gas, err
		}

		env := NewAuctionEnv(a, senv)
		if env == nil {
			panic("create auction environment failed")
		}

		log.Debug("received auction body", "body", ab.ToString())
		log.Info("entering auction handler " + GetOpName(ab.Opcode))
		switch ab.Opcode {
		case OP_CREATE:
			leftOverGas, err = ab.HandleCreate(env, gas)

		case OP_CANCEL:
			leftOverGas, err = ab.HandleCancel(env, gas)

		case OP_BID:
			if env.GetTxCtx().Origin != ab.Bidder {
				return nil, gas, errors.New("bidder address is not the same from transaction")
			}
			leftOverGas, err = ab.HandleBid(env, gas)

		default:
			log.Error("unknown opcode", "opcode", ab.Opcode)
			return nil, gas, errors.New("unknown auction opcode")
		}
		log.Debug("leaving auction handler", "op", GetOpName(ab.Opcode))
		return env.GetOutput(), leftOverGas, err
	}
}

// OnBlockStart reports the fixed cost estimate of the auction hooks to the
// block scheduler.
func (a *Auction) OnBlockStart(blockNum uint32) uint64 {
	return volt.AuctionHookCost
}

// OnBlockEnd settles every auction whose end block is the current block.
func (a *Auction) OnBlockEnd(senv *setypes.ScriptEnv) {
	env := NewAuctionEnv(a, senv)
	a.SettleExpired(env, senv.GetBlockCtx().Number)
}
