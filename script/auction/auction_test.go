// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltio/volt-chain/lvldb"
	"github.com/voltio/volt-chain/script/auction"
	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
	"github.com/voltio/volt-chain/xenv"
)

const (
	SELLER_ADDRESS = "0x1de8ca2f973d026300af89041b0ecb1c0803a7e6"
	BUYER_ADDRESS  = "0x0205c2D862cA051010698b69b54278cbAf945C0b"
	OTHER_ADDRESS  = "0x8a88c59bf15451f9deb1d62f7734fece2002668e"
)

func newTestAuction(t *testing.T) (*auction.Auction, *state.State) {
	kv, err := lvldb.NewMem()
	require.NoError(t, err)
	sc := state.NewCreator(kv)
	a := auction.NewAuction(sc)
	st, err := sc.NewState()
	require.NoError(t, err)
	return a, st
}

func newCallEnv(a *auction.Auction, st *state.State, blockNum uint32, origin volt.Address) *auction.AuctionEnv {
	to := volt.AuctionModuleAddr
	senv := setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: blockNum, Time: uint64(blockNum) * volt.BlockInterval},
		&xenv.TransactionContext{Origin: origin},
		&to)
	return auction.NewAuctionEnv(a, senv)
}

func createBody(quantity, startingPrice int64, periodMinutes uint16) *auction.AuctionBody {
	return &auction.AuctionBody{
		Opcode:        auction.OP_CREATE,
		Quantity:      big.NewInt(quantity),
		StartingPrice: big.NewInt(startingPrice),
		PeriodMinutes: periodMinutes,
	}
}

func bidBody(auctionID uint64, bidder volt.Address, amount int64) *auction.AuctionBody {
	return &auction.AuctionBody{
		Opcode:    auction.OP_BID,
		AuctionID: auctionID,
		Bidder:    bidder,
		Amount:    big.NewInt(amount),
	}
}

func cancelBody(auctionID uint64) *auction.AuctionBody {
	return &auction.AuctionBody{
		Opcode:    auction.OP_CANCEL,
		AuctionID: auctionID,
	}
}

func TestCreateSchedulesSettlement(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	env := newCallEnv(a, st, 2, seller)

	leftOverGas, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas*2)
	require.NoError(t, err)
	assert.Equal(t, volt.ClauseGas, leftOverGas)

	data := a.GetAuction(st, 0)
	require.NotNil(t, data)
	assert.Equal(t, uint64(0), data.AuctionID)
	assert.Equal(t, seller, data.SellerID)
	assert.Equal(t, auction.AuctionOpen, data.Status)
	assert.Equal(t, uint32(50), data.Period) // 5 min at a 6s block interval
	assert.Equal(t, uint32(2), data.StartAt)
	assert.Equal(t, uint32(52), data.EndAt)
	assert.Equal(t, uint32(1), data.Category.Level)

	// the starting bid is seeded as the first and highest bid
	require.Len(t, data.Bids, 1)
	assert.Equal(t, seller, data.HighestBid.Bidder)
	assert.Equal(t, "1000", data.HighestBid.Amount.String())

	assert.True(t, a.QueueContains(st, 52, 0))
	assert.Equal(t, uint64(1), a.GetSequence(st))

	roster := a.GetRoster(st, seller)
	require.NotNil(t, roster)
	assert.Equal(t, auction.PartySeller, roster.Party)
	assert.Equal(t, 1, roster.Count())

	events := env.GetEvents()
	require.Len(t, events, 1)
	assert.Equal(t, auction.AuctionCreatedEvent, events[0].Topics[0])
	assert.Equal(t, auction.AuctionIDToBytes32(0), events[0].Topics[1])
}

func TestSequenceNeverReused(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)

	for i := 0; i < 3; i++ {
		env := newCallEnv(a, st, 2, seller)
		_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(3), a.GetSequence(st))

	env := newCallEnv(a, st, 3, seller)
	_, err := cancelBody(1).HandleCancel(env, volt.ClauseGas)
	require.NoError(t, err)

	// a canceled id leaves a gap, the sequence keeps going
	env = newCallEnv(a, st, 3, seller)
	_, err = createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)
	assert.NotNil(t, a.GetAuction(st, 3))
	assert.Equal(t, uint64(4), a.GetSequence(st))
}

func TestBidBeatsStartingPriceOnly(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)
	other := volt.MustParseAddress(OTHER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	// equal to the starting price is not enough
	env = newCallEnv(a, st, 3, buyer)
	_, err = bidBody(0, buyer, 1000).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)
	data := a.GetAuction(st, 0)
	assert.Len(t, data.Bids, 1)
	assert.Equal(t, "1000", data.HighestBid.Amount.String())

	// below the starting price is not enough either
	env = newCallEnv(a, st, 3, buyer)
	_, err = bidBody(0, buyer, 999).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)
	assert.Len(t, a.GetAuction(st, 0).Bids, 1)

	// above the starting price wins
	env = newCallEnv(a, st, 4, buyer)
	_, err = bidBody(0, buyer, 1500).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)
	data = a.GetAuction(st, 0)
	require.Len(t, data.Bids, 2)
	assert.Equal(t, buyer, data.HighestBid.Bidder)
	assert.Equal(t, "1500", data.HighestBid.Amount.String())
	assert.Equal(t, buyer, data.Bids[0].Bidder)

	// a later bid above the starting price replaces the highest bid even
	// when its amount is lower than the current highest
	env = newCallEnv(a, st, 5, other)
	_, err = bidBody(0, other, 1200).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)
	data = a.GetAuction(st, 0)
	require.Len(t, data.Bids, 3)
	assert.Equal(t, other, data.HighestBid.Bidder)
	assert.Equal(t, "1200", data.HighestBid.Amount.String())
}

func TestBidOnMissingAuction(t *testing.T) {
	a, st := newTestAuction(t)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)

	env := newCallEnv(a, st, 3, buyer)
	_, err := bidBody(42, buyer, 2000).HandleBid(env, volt.ClauseGas)
	assert.Equal(t, auction.ErrAuctionNotFound, err)
	assert.Equal(t, []byte(err.Error()), env.GetReturnData())
}

func TestRejectedBidStillRefreshesRoster(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	env = newCallEnv(a, st, 3, buyer)
	_, err = bidBody(0, buyer, 500).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)

	roster := a.GetRoster(st, buyer)
	require.NotNil(t, roster)
	assert.Equal(t, auction.PartyBuyer, roster.Party)
	assert.Equal(t, 1, roster.Count())

	// the bid-added event fires even for a rejected bid and carries the
	// submitted bid
	events := env.GetEvents()
	require.Len(t, events, 1)
	assert.Equal(t, auction.AuctionBidAddedEvent, events[0].Topics[0])
}

func TestCancelByNonSeller(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	other := volt.MustParseAddress(OTHER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	// any signed origin may cancel, not just the seller
	env = newCallEnv(a, st, 3, other)
	_, err = cancelBody(0).HandleCancel(env, volt.ClauseGas)
	require.NoError(t, err)

	assert.Nil(t, a.GetAuction(st, 0))
	assert.False(t, a.QueueContains(st, 52, 0))

	roster := a.GetRoster(st, seller)
	require.NotNil(t, roster)
	assert.Equal(t, 0, roster.Count())

	events := env.GetEvents()
	require.Len(t, events, 1)
	assert.Equal(t, auction.AuctionCanceledEvent, events[0].Topics[0])
}

func TestCancelIsFinal(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	env = newCallEnv(a, st, 3, seller)
	_, err = cancelBody(0).HandleCancel(env, volt.ClauseGas)
	require.NoError(t, err)

	// the record is erased, so any further operation sees a missing auction
	env = newCallEnv(a, st, 4, seller)
	_, err = cancelBody(0).HandleCancel(env, volt.ClauseGas)
	assert.Equal(t, auction.ErrAuctionNotFound, err)

	env = newCallEnv(a, st, 4, buyer)
	_, err = bidBody(0, buyer, 5000).HandleBid(env, volt.ClauseGas)
	assert.Equal(t, auction.ErrAuctionNotFound, err)
}

func TestCancelMissingAuction(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := cancelBody(7).HandleCancel(env, volt.ClauseGas)
	assert.Equal(t, auction.ErrAuctionNotFound, err)
}

func TestSettleExpiredExactlyOnce(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)

	// two auctions created at the same block expire together
	for i := 0; i < 2; i++ {
		env := newCallEnv(a, st, 2, seller)
		_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
		require.NoError(t, err)
	}

	env := newCallEnv(a, st, 10, buyer)
	_, err := bidBody(0, buyer, 1500).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)

	// settlement at a block before the end block is a no-op
	env = newCallEnv(a, st, 51, volt.Address{})
	a.SettleExpired(env, 51)
	assert.Len(t, env.GetEvents(), 0)
	assert.NotNil(t, a.GetAuction(st, 0))

	env = newCallEnv(a, st, 52, volt.Address{})
	a.SettleExpired(env, 52)

	assert.Nil(t, a.GetAuction(st, 0))
	assert.Nil(t, a.GetAuction(st, 1))
	assert.False(t, a.QueueContains(st, 52, 0))
	assert.False(t, a.QueueContains(st, 52, 1))

	// matched + executed per auction
	events := env.GetEvents()
	require.Len(t, events, 4)
	assert.Equal(t, auction.AuctionMatchedEvent, events[0].Topics[0])
	assert.Equal(t, auction.AuctionExecutedEvent, events[1].Topics[0])

	// a second pass over the same block finds an empty bucket
	env = newCallEnv(a, st, 52, volt.Address{})
	a.SettleExpired(env, 52)
	assert.Len(t, env.GetEvents(), 0)
}

func TestSettleWithoutBidsUsesStartingBid(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	env = newCallEnv(a, st, 52, volt.Address{})
	a.SettleExpired(env, 52)

	// with no accepted bid the seller's own starting bid wins
	events := env.GetEvents()
	require.Len(t, events, 2)
	assert.Equal(t, auction.AuctionMatchedEvent, events[0].Topics[0])
	assert.Equal(t, auction.AuctionExecutedEvent, events[1].Topics[0])
}

func TestSettleLeavesRosterStale(t *testing.T) {
	a, st := newTestAuction(t)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	buyer := volt.MustParseAddress(BUYER_ADDRESS)

	env := newCallEnv(a, st, 2, seller)
	_, err := createBody(2, 1000, 5).HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)

	env = newCallEnv(a, st, 10, buyer)
	_, err = bidBody(0, buyer, 1500).HandleBid(env, volt.ClauseGas)
	require.NoError(t, err)

	env = newCallEnv(a, st, 52, volt.Address{})
	a.SettleExpired(env, 52)
	assert.Nil(t, a.GetAuction(st, 0))

	// rosters are snapshots, settlement does not clean them up
	sellerRoster := a.GetRoster(st, seller)
	require.NotNil(t, sellerRoster)
	assert.Equal(t, 1, sellerRoster.Count())
	buyerRoster := a.GetRoster(st, buyer)
	require.NotNil(t, buyerRoster)
	assert.Equal(t, 1, buyerRoster.Count())
}
