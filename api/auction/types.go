// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/voltio/volt-chain/script/auction"
)

type Bid struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

type AuctionRecord struct {
	AuctionID     uint64 `json:"auctionID"`
	SellerID      string `json:"sellerID"`
	Quantity      string `json:"quantity"`
	StartingPrice string `json:"startingPrice"`
	Bids          []Bid  `json:"bids"`
	Period        uint32 `json:"period"`
	Status        string `json:"status"`
	StartAt       uint32 `json:"startAt"`
	EndAt         uint32 `json:"endAt"`
	HighestBid    Bid    `json:"highestBid"`
	Tier          uint32 `json:"tier"`
}

type Roster struct {
	ParticipantID string          `json:"participantID"`
	Party         string          `json:"party"`
	Auctions      []AuctionRecord `json:"auctions"`
}

type QueueMembership struct {
	BlockNumber uint32 `json:"blockNumber"`
	AuctionID   uint64 `json:"auctionID"`
	Queued      bool   `json:"queued"`
}

type Sequence struct {
	NextSequence uint64 `json:"nextSequence"`
}

func convertBid(b auction.Bid) Bid {
	return Bid{
		Bidder: b.Bidder.String(),
		Amount: b.Amount.String(),
	}
}

func convertAuction(a *auction.AuctionData) *AuctionRecord {
	bids := make([]Bid, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, convertBid(b))
	}
	return &AuctionRecord{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID.String(),
		Quantity:      a.Quantity.String(),
		StartingPrice: a.StartingBid.Amount.String(),
		Bids:          bids,
		Period:        a.Period,
		Status:        a.Status.String(),
		StartAt:       a.StartAt,
		EndAt:         a.EndAt,
		HighestBid:    convertBid(a.HighestBid),
		Tier:          a.Category.Level,
	}
}

func convertRoster(r *auction.AuctionRoster) *Roster {
	participant := ""
	if r.ParticipantID != nil {
		participant = r.ParticipantID.String()
	}
	auctions := make([]AuctionRecord, 0, len(r.Auctions))
	for _, a := range r.Auctions {
		auctions = append(auctions, *convertAuction(a))
	}
	return &Roster{
		ParticipantID: participant,
		Party:         r.Party.String(),
		Auctions:      auctions,
	}
}
