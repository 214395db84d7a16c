// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

// QueueBucket holds the ids of the auctions expiring at one block number,
// sorted ascending. Presence in the bucket is the only payload; an id is
// inserted at creation and removed exactly once, either by cancel or by
// settlement.
type QueueBucket []uint64

func (q QueueBucket) indexOf(auctionID uint64) (int, int) {
	// return values:
	//     first parameter: if found, the index of the item
	//     second parameter: if not found, the correct insert index of the item
	if len(q) <= 0 {
		return -1, 0
	}
	l := 0
	r := len(q)
	for l < r {
		m := (l + r) / 2
		if auctionID < q[m] {
			r = m
		} else if auctionID > q[m] {
			l = m + 1
		} else {
			return m, -1
		}
	}
	return -1, r
}

// Contains returns whether the bucket holds the given id.
func (q QueueBucket) Contains(auctionID uint64) bool {
	index, _ := q.indexOf(auctionID)
	return index >= 0
}

// Add inserts the id keeping the bucket sorted.
func (q QueueBucket) Add(auctionID uint64) QueueBucket {
	index, insertIndex := q.indexOf(auctionID)
	if index >= 0 {
		return q
	}
	updated := make(QueueBucket, 0, len(q)+1)
	updated = append(updated, q[:insertIndex]...)
	updated = append(updated, auctionID)
	updated = append(updated, q[insertIndex:]...)
	return updated
}

// Remove drops the id from the bucket.
func (q QueueBucket) Remove(auctionID uint64) QueueBucket {
	index, _ := q.indexOf(auctionID)
	if index < 0 {
		return q
	}
	return append(q[:index], q[index+1:]...)
}
