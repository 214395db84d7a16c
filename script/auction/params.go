// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/binary"
	"errors"

	"github.com/voltio/volt-chain/volt"
)

// the global storage keys of the auction module
var (
	AuctionSequenceKey = volt.Blake2b([]byte("auction-sequence-key"))

	registryKeyPrefix = []byte("auction-registry-key")
	rosterKeyPrefix   = []byte("auction-roster-key")
	queueKeyPrefix    = []byte("auction-queue-key")
)

const (
	OP_CREATE = uint32(1)
	OP_CANCEL = uint32(2)
	OP_BID    = uint32(3)
)

var (
	ErrAuctionNotFound      = errors.New("auction does not exist")
	ErrAuctionAlreadyClosed = errors.New("auction is already closed")

	// reserved for deposit enforcement, never returned by the current logic
	ErrInsufficientDeposit = errors.New("insufficient attached deposit")
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE:
		return "Create"
	case OP_CANCEL:
		return "Cancel"
	case OP_BID:
		return "Bid"
	default:
		return "Unknown"
	}
}

// RegistryKey derives the storage key of the auction record with the given id.
func RegistryKey(auctionID uint64) volt.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], auctionID)
	return volt.Blake2b(registryKeyPrefix, b[:])
}

// RosterKey derives the storage key of the roster of the given participant.
func RosterKey(addr volt.Address) volt.Bytes32 {
	return volt.Blake2b(rosterKeyPrefix, addr.Bytes())
}

// QueueKey derives the storage key of the execution-queue bucket for the
// given block number.
func QueueKey(blockNum uint32) volt.Bytes32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], blockNum)
	return volt.Blake2b(queueKeyPrefix, b[:])
}
