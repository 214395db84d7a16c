// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voltio/volt-chain/api/auction"
	"github.com/voltio/volt-chain/api/events"
	"github.com/voltio/volt-chain/logdb"
)

// New return api router
func New(logDB *logdb.LogDB, allowedOrigins string) (http.HandlerFunc, func()) {
	origins := strings.Split(strings.TrimSpace(allowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	events.New(logDB).
		Mount(router, "/logs/event")
	auction.New().
		Mount(router, "/auction")
	router.Path("/metrics").Handler(promhttp.Handler())

	handler := requestID(router)

	return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedHeaders([]string{"content-type"}))(handler).ServeHTTP,
		func() {}
}

// requestID tags every request with a unique id, echoed back in the
// x-request-id header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get("x-request-id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("x-request-id", id)
		next.ServeHTTP(w, req)
	})
}
