// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
)

// SettleExpired drains the whole execution-queue bucket of the given block
// and finalizes every auction in it. A bucket entry without a registry
// record means the registry/queue pairing contract was broken, which is not
// recoverable.
//
// Settled auctions are erased from the registry; roster snapshots are left
// behind and go stale.
func (a *Auction) SettleExpired(env *AuctionEnv, blockNum uint32) {
	state := env.GetState()

	bucket := a.GetQueueBucket(state, blockNum)
	if len(bucket) == 0 {
		return
	}

	for _, auctionID := range bucket {
		data := a.GetAuction(state, auctionID)
		if data == nil {
			panic(fmt.Sprintf("execution queue references missing auction %v at block %v", auctionID, blockNum))
		}

		a.RemoveAuction(state, auctionID)

		env.EmitAuctionMatched(data, blockNum)
		env.EmitAuctionExecuted(data, blockNum)
		auctionSettledCounter.Inc()
		log.Info("auction settled", "id", auctionID, "buyer", data.HighestBid.Bidder.AbbrevString(), "amount", data.HighestBid.Amount.String(), "block", blockNum)
	}

	a.SetQueueBucket(state, blockNum, QueueBucket{})
}
