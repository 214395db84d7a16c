// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	setypes "github.com/voltio/volt-chain/script/types"
)

type AuctionEnv struct {
	*setypes.ScriptEnv
	auction *Auction
}

func NewAuctionEnv(auction *Auction, senv *setypes.ScriptEnv) *AuctionEnv {
	return &AuctionEnv{
		auction:   auction,
		ScriptEnv: senv,
	}
}

func (env *AuctionEnv) GetAuction() *Auction { return env.auction }
