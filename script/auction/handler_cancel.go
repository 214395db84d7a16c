// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/voltio/volt-chain/volt"
)

// HandleCancel closes an open auction and erases it from the registry, the
// seller roster and the execution queue. Any signed origin may cancel, the
// caller is not required to be the seller.
func (ab *AuctionBody) HandleCancel(env *AuctionEnv, gas uint64) (leftOverGas uint64, err error) {
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
		log.Info("cancel on unknown auction", "id", ab.AuctionID)
		err = ErrAuctionNotFound
		return
	}

	if data.Status != AuctionOpen {
		log.Info("cancel on closed auction", "id", ab.AuctionID)
		err = ErrAuctionAlreadyClosed
		return
	}

	data.Status = AuctionClosed
	Auction.RemoveAuction(state, data.AuctionID)

	roster := Auction.GetRoster(state, data.SellerID)
	if roster != nil && roster.Remove(data.AuctionID) {
		Auction.SetRoster(state, data.SellerID, roster)
	}

	bucket := Auction.GetQueueBucket(state, data.EndAt)
	Auction.SetQueueBucket(state, data.EndAt, bucket.Remove(data.AuctionID))

	env.EmitAuctionCanceled(data)
	auctionCanceledCounter.Inc()
	log.Info("auction canceled", "id", data.AuctionID, "seller", data.SellerID.AbbrevString(), "origin", env.GetTxCtx().Origin.AbbrevString())
	return
}
