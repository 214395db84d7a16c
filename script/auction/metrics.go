// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import "github.com/prometheus/client_golang/prometheus"

var (
	auctionCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_created_total",
		Help: "Counter of created auctions",
	})
	auctionCanceledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_canceled_total",
		Help: "Counter of canceled auctions",
	})
	bidAcceptedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_accepted_total",
		Help: "Counter of accepted bids",
	})
	auctionSettledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_settled_total",
		Help: "Counter of settled auctions",
	})
)

func init() {
	prometheus.MustRegister(auctionCreatedCounter)
	prometheus.MustRegister(auctionCanceledCounter)
	prometheus.MustRegister(bidAcceptedCounter)
	prometheus.MustRegister(auctionSettledCounter)
}
