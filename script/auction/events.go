// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/voltio/volt-chain/volt"
)

// Event topic0 values. Topic1 is always the auction id.
var (
	AuctionCreatedEvent  = volt.Blake2b([]byte("AuctionCreated"))
	AuctionBidAddedEvent = volt.Blake2b([]byte("AuctionBidAdded"))
	AuctionMatchedEvent  = volt.Blake2b([]byte("AuctionMatched"))
	AuctionExecutedEvent = volt.Blake2b([]byte("AuctionExecuted"))
	AuctionCanceledEvent = volt.Blake2b([]byte("AuctionCanceled"))
)

type AuctionCreatedEventData struct {
	AuctionID     uint64
	SellerID      volt.Address
	Quantity      *big.Int
	StartingPrice *big.Int
}

type AuctionBidAddedEventData struct {
	AuctionID uint64
	SellerID  volt.Address
	Quantity  *big.Int
	Bid       Bid
}

type AuctionMatchedEventData struct {
	AuctionID     uint64
	SellerID      volt.Address
	Quantity      *big.Int
	StartingPrice *big.Int
	HighestBid    Bid
	MatchedAt     uint32
}

type AuctionExecutedEventData struct {
	AuctionID     uint64
	SellerID      volt.Address
	BuyerID       volt.Address
	Quantity      *big.Int
	StartingPrice *big.Int
	HighestBid    *big.Int
	ExecutedAt    uint32
}

type AuctionCanceledEventData struct {
	AuctionID     uint64
	SellerID      volt.Address
	Quantity      *big.Int
	StartingPrice *big.Int
}

// AuctionIDToBytes32 puts the auction id into topic form.
func AuctionIDToBytes32(auctionID uint64) volt.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], auctionID)
	return volt.BytesToBytes32(b[:])
}

func (env *AuctionEnv) emitEvent(topic0 volt.Bytes32, auctionID uint64, data interface{}) {
	encoded, err := rlp.EncodeToBytes(data)
	if err != nil {
		log.Error("rlp encode event data failed", "error", err)
		return
	}
	env.AddEvent(volt.AuctionModuleAddr, []volt.Bytes32{topic0, AuctionIDToBytes32(auctionID)}, encoded)
}

func (env *AuctionEnv) EmitAuctionCreated(a *AuctionData) {
	env.emitEvent(AuctionCreatedEvent, a.AuctionID, &AuctionCreatedEventData{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Quantity:      a.Quantity,
		StartingPrice: a.StartingBid.Amount,
	})
}

func (env *AuctionEnv) EmitAuctionBidAdded(a *AuctionData, bid Bid) {
	env.emitEvent(AuctionBidAddedEvent, a.AuctionID, &AuctionBidAddedEventData{
		AuctionID: a.AuctionID,
		SellerID:  a.SellerID,
		Quantity:  a.Quantity,
		Bid:       bid,
	})
}

func (env *AuctionEnv) EmitAuctionMatched(a *AuctionData, matchedAt uint32) {
	env.emitEvent(AuctionMatchedEvent, a.AuctionID, &AuctionMatchedEventData{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Quantity:      a.Quantity,
		StartingPrice: a.StartingBid.Amount,
		HighestBid:    a.HighestBid,
		MatchedAt:     matchedAt,
	})
}

func (env *AuctionEnv) EmitAuctionExecuted(a *AuctionData, executedAt uint32) {
	env.emitEvent(AuctionExecutedEvent, a.AuctionID, &AuctionExecutedEventData{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		BuyerID:       a.HighestBid.Bidder,
		Quantity:      a.Quantity,
		StartingPrice: a.StartingBid.Amount,
		HighestBid:    a.HighestBid.Amount,
		ExecutedAt:    executedAt,
	})
}

func (env *AuctionEnv) EmitAuctionCanceled(a *AuctionData) {
	env.emitEvent(AuctionCanceledEvent, a.AuctionID, &AuctionCanceledEventData{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Quantity:      a.Quantity,
		StartingPrice: a.StartingBid.Amount,
	})
}
