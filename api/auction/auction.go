// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/voltio/volt-chain/api/utils"
	"github.com/voltio/volt-chain/script/auction"
	"github.com/voltio/volt-chain/volt"
)

type Auction struct {
}

func New() *Auction {
	return &Auction{}
}

func (at *Auction) handleGetSequence(w http.ResponseWriter, req *http.Request) error {
	seq, err := auction.GetNextSequence()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Sequence{NextSequence: seq})
}

func (at *Auction) handleGetAuctionByID(w http.ResponseWriter, req *http.Request) error {
	id, err := strconv.ParseUint(mux.Vars(req)["auctionID"], 10, 64)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "auctionID"))
	}
	a, err := auction.GetAuctionByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return utils.HTTPError(errors.New("auction does not exist"), http.StatusNotFound)
	}
	return utils.WriteJSON(w, convertAuction(a))
}

func (at *Auction) handleGetRoster(w http.ResponseWriter, req *http.Request) error {
	addr, err := volt.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	r, err := auction.GetRosterOf(addr)
	if err != nil {
		return err
	}
	if r == nil {
		return utils.HTTPError(errors.New("roster does not exist"), http.StatusNotFound)
	}
	return utils.WriteJSON(w, convertRoster(r))
}

func (at *Auction) handleGetQueueMembership(w http.ResponseWriter, req *http.Request) error {
	blockNum, err := strconv.ParseUint(mux.Vars(req)["blockNum"], 10, 32)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "blockNum"))
	}
	id, err := strconv.ParseUint(mux.Vars(req)["auctionID"], 10, 64)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "auctionID"))
	}
	queued, err := auction.GetQueueMembership(uint32(blockNum), id)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &QueueMembership{
		BlockNumber: uint32(blockNum),
		AuctionID:   id,
		Queued:      queued,
	})
}

func (at *Auction) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/sequence").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetSequence))
	sub.Path("/auctions/{auctionID}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetAuctionByID))
	sub.Path("/rosters/{address}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetRoster))
	sub.Path("/queue/{blockNum}/{auctionID}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetQueueMembership))
}
