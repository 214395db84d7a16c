// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltio/volt-chain/lvldb"
	"github.com/voltio/volt-chain/script"
	"github.com/voltio/volt-chain/script/auction"
	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
	"github.com/voltio/volt-chain/xenv"
)

const SELLER_ADDRESS = "0x1de8ca2f973d026300af89041b0ecb1c0803a7e6"

func newTestEngine(t *testing.T) (*script.ScriptEngine, *state.Creator) {
	kv, err := lvldb.NewMem()
	require.NoError(t, err)
	sc := state.NewCreator(kv)
	return script.NewScriptEngine(sc), sc
}

func newSenv(t *testing.T, sc *state.Creator, blockNum uint32, origin volt.Address) *setypes.ScriptEnv {
	st, err := sc.NewState()
	require.NoError(t, err)
	to := volt.AuctionModuleAddr
	return setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: blockNum},
		&xenv.TransactionContext{Origin: origin},
		&to)
}

func TestEncodeDecodeScriptData(t *testing.T) {
	body := &auction.AuctionBody{
		Opcode:        auction.OP_CREATE,
		Quantity:      big.NewInt(2),
		StartingPrice: big.NewInt(1000),
		PeriodMinutes: 5,
	}
	data, err := script.EncodeScriptData(body)
	require.NoError(t, err)
	assert.Equal(t, script.ScriptPattern[:], data[:len(script.ScriptPattern)])

	decoded, err := script.DecodeScriptData(data[len(script.ScriptPattern):])
	require.NoError(t, err)
	assert.Equal(t, script.AUCTION_MODULE_ID, decoded.Header.GetModID())

	ab, err := auction.AuctionDecodeFromBytes(decoded.Payload)
	require.NoError(t, err)
	assert.Equal(t, auction.OP_CREATE, ab.Opcode)
	assert.Equal(t, "1000", ab.StartingPrice.String())
}

func TestEncodeUnknownBody(t *testing.T) {
	_, err := script.EncodeScriptData("not a body")
	assert.Error(t, err)
}

func TestHandleScriptDataDispatch(t *testing.T) {
	se, sc := newTestEngine(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)

	data, err := script.EncodeScriptData(&auction.AuctionBody{
		Opcode:        auction.OP_CREATE,
		Quantity:      big.NewInt(2),
		StartingPrice: big.NewInt(1000),
		PeriodMinutes: 5,
	})
	require.NoError(t, err)

	senv := newSenv(t, sc, 2, seller)
	to := volt.AuctionModuleAddr
	output, leftOverGas, err := se.HandleScriptData(senv, data, &to, volt.ClauseGas*2)
	require.NoError(t, err)
	assert.Equal(t, volt.ClauseGas, leftOverGas)
	require.NotNil(t, output)
	assert.Len(t, output.GetEvents(), 1)

	created := auction.GetAuctionGlobInst().GetAuction(senv.GetState(), 0)
	require.NotNil(t, created)
	assert.Equal(t, uint32(52), created.EndAt)
}

func TestHandleScriptDataPatternMismatch(t *testing.T) {
	se, sc := newTestEngine(t)
	senv := newSenv(t, sc, 2, volt.Address{})
	to := volt.AuctionModuleAddr

	_, leftOverGas, err := se.HandleScriptData(senv, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, &to, volt.ClauseGas)
	assert.Error(t, err)
	assert.Equal(t, volt.ClauseGas, leftOverGas)

	_, _, err = se.HandleScriptData(senv, []byte{0xde}, &to, volt.ClauseGas)
	assert.Error(t, err)
}

func TestHandleScriptDataBidderMismatch(t *testing.T) {
	se, sc := newTestEngine(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)

	createData, err := script.EncodeScriptData(&auction.AuctionBody{
		Opcode:        auction.OP_CREATE,
		Quantity:      big.NewInt(2),
		StartingPrice: big.NewInt(1000),
		PeriodMinutes: 5,
	})
	require.NoError(t, err)
	senv := newSenv(t, sc, 2, seller)
	to := volt.AuctionModuleAddr
	_, _, err = se.HandleScriptData(senv, createData, &to, volt.ClauseGas)
	require.NoError(t, err)

	// a bid must be signed by the bidder itself
	bidData, err := script.EncodeScriptData(&auction.AuctionBody{
		Opcode:    auction.OP_BID,
		AuctionID: 0,
		Bidder:    volt.BytesToAddress([]byte("someone else")),
		Amount:    big.NewInt(2000),
	})
	require.NoError(t, err)
	_, _, err = se.HandleScriptData(senv, bidData, &to, volt.ClauseGas)
	assert.Error(t, err)
}
