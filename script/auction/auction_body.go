// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/voltio/volt-chain/volt"
)

// AuctionBody is the wire form of one auction operation. Create uses
// Quantity/StartingPrice/PeriodMinutes, cancel uses AuctionID, bid uses
// AuctionID/Bidder/Amount.
type AuctionBody struct {
	Opcode        uint32
	Version       uint32
	Option        uint32
	AuctionID     uint64
	Bidder        volt.Address
	Amount        *big.Int // bid amount, in the native token
	Quantity      *big.Int // energy quantity, in KWH
	StartingPrice *big.Int // in the native token
	PeriodMinutes uint16
	Timestamp     uint64
	Nonce         uint64
}

func (ab *AuctionBody) ToString() string {
	return fmt.Sprintf("AuctionBody: Opcode=%v, Version=%v, Option=%v, AuctionID=%v, Bidder=%v, Amount=%v, Quantity=%v, StartingPrice=%v, PeriodMinutes=%v, Timestamp=%v, Nonce=%v",
		ab.Opcode, ab.Version, ab.Option, ab.AuctionID, ab.Bidder.AbbrevString(), ab.Amount, ab.Quantity, ab.StartingPrice, ab.PeriodMinutes, ab.Timestamp, ab.Nonce)
}

func (ab *AuctionBody) String() string {
	return ab.ToString()
}

func AuctionEncodeBytes(ab *AuctionBody) []byte {
	auctionBytes, err := rlp.EncodeToBytes(ab)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return auctionBytes
}

func AuctionDecodeFromBytes(bytes []byte) (*AuctionBody, error) {
	ab := AuctionBody{}
	err := rlp.DecodeBytes(bytes, &ab)
	return &ab, err
}
