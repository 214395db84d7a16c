// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/voltio/volt-chain/volt"
)

// HandleCreate opens a new auction on behalf of the transaction origin.
func (ab *AuctionBody) HandleCreate(env *AuctionEnv, gas uint64) (leftOverGas uint64, err error) {
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

	seller := env.GetTxCtx().Origin
	auctionID := Auction.GetSequence(state)
	period := volt.PeriodMinutesToBlocks(ab.PeriodMinutes)
	startAt := env.GetBlockCtx().Number

	data := newAuctionData(auctionID, seller, ab.Quantity, ab.StartingPrice, period, startAt)

	roster := Auction.GetRoster(state, seller)
	if roster == nil {
		roster = newRoster(PartySeller)
	}
	roster.ParticipantID = &seller
	roster.Append(data)
	Auction.SetRoster(state, seller, roster)

	bucket := Auction.GetQueueBucket(state, data.EndAt)
	Auction.SetQueueBucket(state, data.EndAt, bucket.Add(auctionID))

	Auction.SetAuction(state, data)
	Auction.SetSequence(state, auctionID+1)

	env.EmitAuctionCreated(data)
	auctionCreatedCounter.Inc()
	log.Info("auction created", "id", auctionID, "seller", seller.AbbrevString(), "quantity", data.Quantity.String(), "endAt", data.EndAt)
	return
}
