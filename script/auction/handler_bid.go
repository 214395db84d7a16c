// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/voltio/volt-chain/volt"
)

// HandleBid places a bid on an open auction. A bid is accepted only when it
// beats the starting price; an accepted bid always becomes the highest bid,
// even when a previously accepted bid was higher. The buyer and seller
// rosters are refreshed whether or not the bid was accepted.
func (ab *AuctionBody) HandleBid(env *AuctionEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	Auction := env.GetAuction()
	state := env.GetState()

	if gas < volt.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - volt.ClauseGas
	}

	data := Auction.GetAuction(state, ab.AuctionID)
	if data == nil {
		log.Info("bid on unknown auction", "id", ab.AuctionID)
		err = ErrAuctionNotFound
		return
	}

	if data.Status != AuctionOpen {
		log.Info("bid on closed auction", "id", ab.AuctionID)
		err = ErrAuctionAlreadyClosed
		return
	}

	newBid := Bid{Bidder: ab.Bidder, Amount: ab.Amount}
	if data.AcceptBid(newBid) {
		Auction.SetAuction(state, data)
		bidAcceptedCounter.Inc()
	} else {
		log.Info("bid below starting price, not accepted", "id", ab.AuctionID, "amount", ab.Amount.String(), "startingPrice", data.StartingBid.Amount.String())
	}

	// the rosters are refreshed even for a rejected bid
	buyer := ab.Bidder
	buyerRoster := Auction.GetRoster(state, buyer)
	if buyerRoster == nil {
		buyerRoster = newRoster(PartyBuyer)
		buyerRoster.ParticipantID = &buyer
		buyerRoster.Append(data)
		Auction.SetRoster(state, buyer, buyerRoster)
	} else if buyerRoster.Replace(data) {
		buyerRoster.ParticipantID = &buyer
		Auction.SetRoster(state, buyer, buyerRoster)
	}

	sellerRoster := Auction.GetRoster(state, data.SellerID)
	if sellerRoster != nil && sellerRoster.Replace(data) {
		Auction.SetRoster(state, data.SellerID, sellerRoster)
	}

	// the event carries the submitted bid, not necessarily the highest one
	env.EmitAuctionBidAdded(data, newBid)
	log.Info("bid handled", "id", data.AuctionID, "bidder", newBid.Bidder.AbbrevString(), "amount", newBid.Amount.String(), "highest", data.HighestBid.Amount.String())
	return
}
