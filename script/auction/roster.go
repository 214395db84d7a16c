// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"strings"

	"github.com/voltio/volt-chain/volt"
)

// AuctionRoster is the per-account cache of auction snapshots. It is
// denormalized on purpose: entries are value copies of registry records and
// may go stale, the registry stays authoritative. Bounded to
// volt.AuctionRosterCapacity snapshots, oldest evicted first.
type AuctionRoster struct {
	ParticipantID *volt.Address
	Party         PartyType
	Auctions      []*AuctionData
}

func newRoster(party PartyType) *AuctionRoster {
	return &AuctionRoster{
		ParticipantID: nil,
		Party:         party,
		Auctions:      make([]*AuctionData, 0),
	}
}

// Append adds a snapshot. Once the roster is full the oldest snapshot is
// dropped so the bound is never exceeded.
func (r *AuctionRoster) Append(a *AuctionData) {
	if len(r.Auctions) >= volt.AuctionRosterCapacity {
		r.Auctions = r.Auctions[1:]
	}
	r.Auctions = append(r.Auctions, a)
}

// IndexOf returns the index of the snapshot with the given auction id, or -1.
func (r *AuctionRoster) IndexOf(auctionID uint64) int {
	for i, a := range r.Auctions {
		if a.AuctionID == auctionID {
			return i
		}
	}
	return -1
}

// Replace overwrites the snapshot with a matching auction id. Returns false
// when the roster holds no snapshot of this auction.
func (r *AuctionRoster) Replace(a *AuctionData) bool {
	index := r.IndexOf(a.AuctionID)
	if index < 0 {
		return false
	}
	r.Auctions[index] = a
	return true
}

// Remove drops the snapshot with the given auction id.
func (r *AuctionRoster) Remove(auctionID uint64) bool {
	index := r.IndexOf(auctionID)
	if index < 0 {
		return false
	}
	r.Auctions = append(r.Auctions[:index], r.Auctions[index+1:]...)
	return true
}

func (r *AuctionRoster) Count() int {
	return len(r.Auctions)
}

func (r *AuctionRoster) ToString() string {
	if r == nil || len(r.Auctions) == 0 {
		return "AuctionRoster (size:0)"
	}
	participant := "nil"
	if r.ParticipantID != nil {
		participant = r.ParticipantID.AbbrevString()
	}
	s := []string{fmt.Sprintf("AuctionRoster(participant=%v, party=%v)", participant, r.Party)}
	for i, a := range r.Auctions {
		s = append(s, fmt.Sprintf("  %d. auction %v", i, a.AuctionID))
	}
	return strings.Join(s, "\n")
}
