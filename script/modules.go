// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"github.com/voltio/volt-chain/script/auction"
)

const (
	AUCTION_MODULE_NAME = string("auction")
	AUCTION_MODULE_ID   = uint32(1001)
)

func ModuleAuctionInit(se *ScriptEngine) *auction.Auction {
	a := auction.NewAuction(se.stateCreator)
	if a == nil {
		panic("init auction module failed")
	}

	mod := &Module{
		modName:      AUCTION_MODULE_NAME,
		modID:        AUCTION_MODULE_ID,
		modHandler:   a.PrepareAuctionHandler(),
		onBlockStart: a.OnBlockStart,
		onBlockEnd:   a.OnBlockEnd,
	}
	if err := se.modReg.Register(AUCTION_MODULE_ID, mod); err != nil {
		panic("register auction module failed")
	}

	a.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return a
}
