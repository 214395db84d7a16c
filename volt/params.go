// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package volt

// Constants of the chain.
const (
	// BlockInterval is the time between two consecutive blocks, in seconds.
	BlockInterval uint64 = 6

	// ClauseGas is charged for every handled script clause.
	ClauseGas uint64 = 16000

	// AuctionHookCost is the fixed cost estimate reported to the block
	// scheduler for the auction block-boundary hooks.
	AuctionHookCost uint64 = 100000000

	// AuctionRosterCapacity bounds the per-account auction roster. The
	// oldest snapshot is evicted first once the roster is full.
	AuctionRosterCapacity = 5

	// AuctionTierThreshold splits auctions into tier 1 (quantity below the
	// threshold, in KWH) and tier 2.
	AuctionTierThreshold = 5
)

// the global variables of the auction module
var (
	// 0x6374696f6e2d6d6f64756c652d61646472657373
	AuctionModuleAddr = BytesToAddress([]byte("auction-module-address"))
)

// PeriodMinutesToBlocks converts an auction period given in minutes into a
// block count, truncating toward zero.
func PeriodMinutesToBlocks(minutes uint16) uint32 {
	return uint32(uint64(minutes) * 60 / BlockInterval)
}
