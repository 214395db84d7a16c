// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/voltio/volt-chain/script/auction"
	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
)

var (
	ScriptGlobInst *ScriptEngine
)

// global data
type ScriptEngine struct {
	stateCreator *state.Creator
	logger       *slog.Logger
	modReg       Registry
}

// Glob Instance
func GetScriptGlobInst() *ScriptEngine {
	return ScriptGlobInst
}

func SetScriptGlobInst(inst *ScriptEngine) {
	ScriptGlobInst = inst
}

func NewScriptEngine(state *state.Creator) *ScriptEngine {
	se := &ScriptEngine{
		stateCreator: state,
		logger:       slog.Default().With("pkg", "se"),
	}
	SetScriptGlobInst(se)

	// start all sub modules
	se.StartAllModules()
	return se
}

func (se *ScriptEngine) StartAllModules() {
	// auction
	ModuleAuctionInit(se)
}

func (se *ScriptEngine) HandleScriptData(senv *setypes.ScriptEnv, data []byte, to *volt.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	if len(data) < len(ScriptPattern) {
		return nil, gas, errors.New("script data shorter than pattern")
	}
	if !bytes.Equal(data[:len(ScriptPattern)], ScriptPattern[:]) {
		err := fmt.Errorf("pattern mismatch, pattern = %v", hex.EncodeToString(data[:len(ScriptPattern)]))
		se.logger.Error("invalid script data", "error", err)
		return nil, gas, err
	}
	script, err := DecodeScriptData(data[len(ScriptPattern):])
	if err != nil {
		se.logger.Error("decode script message failed", "error", err)
		return nil, gas, err
	}

	header := script.Header

	mod, find := se.modReg.Find(header.GetModID())
	if !find {
		err := fmt.Errorf("could not address module %v", header.GetModID())
		se.logger.Error("dispatch failed", "error", err)
		return nil, gas, err
	}

	//module handler
	seOutput, leftOverGas, err = mod.modHandler(senv, script.Payload, to, gas)
	return
}

// OnBlockStart sums the hook cost estimates of every registered module.
func (se *ScriptEngine) OnBlockStart(blockNum uint32) uint64 {
	total := uint64(0)
	for _, mod := range se.modReg.All() {
		if mod.onBlockStart != nil {
			total += mod.onBlockStart(blockNum)
		}
	}
	return total
}

// OnBlockEnd runs every registered module's block-end hook. This is where
// time-driven transitions such as auction settlement happen.
func (se *ScriptEngine) OnBlockEnd(senv *setypes.ScriptEnv) {
	for _, mod := range se.modReg.All() {
		if mod.onBlockEnd != nil {
			mod.onBlockEnd(senv)
		}
	}
}

func EncodeScriptData(body interface{}) ([]byte, error) {
	modId := uint32(999)
	switch body.(type) {
	case auction.AuctionBody:
		modId = AUCTION_MODULE_ID
	case *auction.AuctionBody:
		modId = AUCTION_MODULE_ID
	default:
		return []byte{}, errors.New("unrecognized body")
	}
	payload, err := rlp.EncodeToBytes(body)
	if err != nil {
		return []byte{}, err
	}
	s := &ScriptData{Header: ScriptHeader{Version: uint32(0), ModID: modId}, Payload: payload}
	data, err := rlp.EncodeToBytes(s)
	if err != nil {
		return []byte{}, err
	}
	data = append(ScriptPattern[:], data...)
	return data, nil
}

func DecodeScriptData(bytes []byte) (*ScriptData, error) {
	script := ScriptData{}
	err := rlp.DecodeBytes(bytes, &script)
	return &script, err
}
