// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"

	"github.com/voltio/volt-chain/volt"
)

//  api routine interface
func GetAuctionByID(auctionID uint64) (*AuctionData, error) {
	auction := GetAuctionGlobInst()
	if auction == nil {
		log.Warn("auction is not initialized...")
		return nil, errors.New("auction is not initialized")
	}

	state, err := auction.stateCreator.NewState()
	if err != nil {
		return nil, err
	}
	return auction.GetAuction(state, auctionID), nil
}

func GetRosterOf(addr volt.Address) (*AuctionRoster, error) {
	auction := GetAuctionGlobInst()
	if auction == nil {
		log.Warn("auction is not initialized...")
		return nil, errors.New("auction is not initialized")
	}

	state, err := auction.stateCreator.NewState()
	if err != nil {
		return nil, err
	}
	return auction.GetRoster(state, addr), nil
}

func GetQueueMembership(blockNum uint32, auctionID uint64) (bool, error) {
	auction := GetAuctionGlobInst()
	if auction == nil {
		log.Warn("auction is not initialized...")
		return false, errors.New("auction is not initialized")
	}

	state, err := auction.stateCreator.NewState()
	if err != nil {
		return false, err
	}
	return auction.QueueContains(state, blockNum, auctionID), nil
}

func GetNextSequence() (uint64, error) {
	auction := GetAuctionGlobInst()
	if auction == nil {
		log.Warn("auction is not initialized...")
		return 0, errors.New("auction is not initialized")
	}

	state, err := auction.stateCreator.NewState()
	if err != nil {
		return 0, err
	}
	return auction.GetSequence(state), nil
}
