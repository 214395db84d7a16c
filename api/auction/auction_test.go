// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiauction "github.com/voltio/volt-chain/api/auction"
	"github.com/voltio/volt-chain/lvldb"
	"github.com/voltio/volt-chain/script/auction"
	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
	"github.com/voltio/volt-chain/xenv"
)

const SELLER_ADDRESS = "0x1de8ca2f973d026300af89041b0ecb1c0803a7e6"

func initAuctionServer(t *testing.T) *httptest.Server {
	kv, err := lvldb.NewMem()
	require.NoError(t, err)
	sc := state.NewCreator(kv)
	a := auction.NewAuction(sc)

	st, err := sc.NewState()
	require.NoError(t, err)
	seller := volt.MustParseAddress(SELLER_ADDRESS)
	to := volt.AuctionModuleAddr
	senv := setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: 2},
		&xenv.TransactionContext{Origin: seller},
		&to)
	env := auction.NewAuctionEnv(a, senv)

	body := &auction.AuctionBody{
		Opcode:        auction.OP_CREATE,
		Quantity:      big.NewInt(2),
		StartingPrice: big.NewInt(1000),
		PeriodMinutes: 5,
	}
	_, err = body.HandleCreate(env, volt.ClauseGas)
	require.NoError(t, err)
	require.NoError(t, st.Stage().Commit())

	router := mux.NewRouter()
	apiauction.New().Mount(router, "/auction")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}

func TestGetSequence(t *testing.T) {
	ts := initAuctionServer(t)

	body, code := httpGet(t, ts.URL+"/auction/sequence")
	require.Equal(t, http.StatusOK, code)

	var seq apiauction.Sequence
	require.NoError(t, json.Unmarshal(body, &seq))
	assert.Equal(t, uint64(1), seq.NextSequence)
}

func TestGetAuctionByID(t *testing.T) {
	ts := initAuctionServer(t)

	body, code := httpGet(t, ts.URL+"/auction/auctions/0")
	require.Equal(t, http.StatusOK, code)

	var record apiauction.AuctionRecord
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, uint64(0), record.AuctionID)
	assert.Equal(t, "1000", record.StartingPrice)
	assert.Equal(t, uint32(52), record.EndAt)
	assert.Equal(t, "Open", record.Status)

	_, code = httpGet(t, ts.URL+"/auction/auctions/42")
	assert.Equal(t, http.StatusNotFound, code)

	_, code = httpGet(t, ts.URL+"/auction/auctions/not-a-number")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetRoster(t *testing.T) {
	ts := initAuctionServer(t)

	body, code := httpGet(t, ts.URL+"/auction/rosters/"+SELLER_ADDRESS)
	require.Equal(t, http.StatusOK, code)

	var roster apiauction.Roster
	require.NoError(t, json.Unmarshal(body, &roster))
	assert.Equal(t, "Seller", roster.Party)
	require.Len(t, roster.Auctions, 1)
	assert.Equal(t, uint64(0), roster.Auctions[0].AuctionID)

	_, code = httpGet(t, ts.URL+"/auction/rosters/0x0000000000000000000000000000000000000001")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetQueueMembership(t *testing.T) {
	ts := initAuctionServer(t)

	body, code := httpGet(t, ts.URL+"/auction/queue/52/0")
	require.Equal(t, http.StatusOK, code)

	var membership apiauction.QueueMembership
	require.NoError(t, json.Unmarshal(body, &membership))
	assert.True(t, membership.Queued)

	body, code = httpGet(t, ts.URL+"/auction/queue/51/0")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &membership))
	assert.False(t, membership.Queued)
}
