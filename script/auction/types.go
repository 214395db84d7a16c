// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/voltio/volt-chain/volt"
)

// AuctionStatus status of an auction. Open is the initial status, Closed is
// terminal. Settlement removes the record instead of transitioning it.
type AuctionStatus uint8

const (
	AuctionOpen AuctionStatus = iota
	AuctionClosed
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionOpen:
		return "Open"
	case AuctionClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Tier classifies an auction by its energy quantity. Informational only, it
// does not affect the bidding rules.
type Tier struct {
	Level uint32
}

// TierForQuantity derives the tier from the energy quantity in KWH.
func TierForQuantity(quantity *big.Int) Tier {
	if quantity.Cmp(big.NewInt(volt.AuctionTierThreshold)) < 0 {
		return Tier{Level: 1}
	}
	return Tier{Level: 2}
}

// PartyType the role of a roster owner.
type PartyType uint8

const (
	PartySeller PartyType = iota
	PartyBuyer
)

func (p PartyType) String() string {
	switch p {
	case PartySeller:
		return "Seller"
	case PartyBuyer:
		return "Buyer"
	default:
		return "Unknown"
	}
}

// Bid one bid on an auction. Immutable once created, compared by Amount only.
type Bid struct {
	Bidder volt.Address
	Amount *big.Int
}

func (b *Bid) ToString() string {
	return fmt.Sprintf("Bid(bidder=%v, amount=%v)", b.Bidder.AbbrevString(), b.Amount)
}

// AuctionData the canonical record of one auction, owned by the registry.
// Bids is ordered most-recent-first; the starting bid is the initial entry
// and is never removed. HighestBid strictly increases in amount relative to
// the starting bid.
type AuctionData struct {
	AuctionID   uint64
	SellerID    volt.Address
	Quantity    *big.Int
	StartingBid Bid
	Bids        []Bid
	Period      uint32 // auction period in blocks
	Status      AuctionStatus
	StartAt     uint32
	EndAt       uint32
	HighestBid  Bid
	Category    Tier
}

func newAuctionData(auctionID uint64, seller volt.Address, quantity, startingPrice *big.Int, period, startAt uint32) *AuctionData {
	startingBid := Bid{Bidder: seller, Amount: startingPrice}
	return &AuctionData{
		AuctionID:   auctionID,
		SellerID:    seller,
		Quantity:    quantity,
		StartingBid: startingBid,
		Bids:        []Bid{startingBid},
		Period:      period,
		Status:      AuctionOpen,
		StartAt:     startAt,
		EndAt:       startAt + period,
		HighestBid:  startingBid,
		Category:    TierForQuantity(quantity),
	}
}

// AcceptBid applies the bid-acceptance rule: a bid is accepted iff its amount
// is strictly greater than the starting bid's amount. An accepted bid is
// prepended to Bids and overwrites HighestBid, regardless of previously
// accepted bids. Returns whether the bid was accepted.
func (a *AuctionData) AcceptBid(b Bid) bool {
	if b.Amount.Cmp(a.StartingBid.Amount) <= 0 {
		return false
	}
	a.Bids = append([]Bid{b}, a.Bids...)
	a.HighestBid = b
	return true
}

func (a *AuctionData) ToString() string {
	s := []string{fmt.Sprintf("AuctionData(id=%v, seller=%v, quantity=%v, status=%v, period=%v, startAt=%v, endAt=%v, tier=%v, highestBid=%v)",
		a.AuctionID, a.SellerID.AbbrevString(), a.Quantity, a.Status, a.Period, a.StartAt, a.EndAt, a.Category.Level, a.HighestBid.ToString())}
	for i, b := range a.Bids {
		s = append(s, fmt.Sprintf("  %d.%v", i, b.ToString()))
	}
	return strings.Join(s, "\n")
}
