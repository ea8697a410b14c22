// Package transport exposes the ledger over REST and gRPC health.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/internal/service"
	"github.com/goodnatureofminers/shieldledger-backend/pkg/safe"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	smallBodyLimit = 128
	largeBodyLimit = 10 << 20

	broadcastReply = "OK"
)

type handlerFunc func(r *http.Request, params map[string]string) (any, error)

// RESTHandler serves the ledger's JSON routes.
type RESTHandler struct {
	ledger  LedgerService
	metrics Metrics
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// NewRESTHandler builds a RESTHandler. A nil limiter leaves broadcasts unthrottled.
func NewRESTHandler(l LedgerService, metrics Metrics, limiter ratelimit.Limiter, logger *zap.Logger) (*RESTHandler, error) {
	if l == nil {
		return nil, errors.New("ledger service is required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RESTHandler{ledger: l, metrics: metrics, limiter: limiter, logger: logger}, nil
}

// Register adds every route to mux.
func (h *RESTHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handle  handlerFunc
		status  func(error) int
	}{
		{http.MethodGet, "/latest/height", h.latestHeight, statusCode},
		{http.MethodGet, "/latest/hash", h.latestHash, statusCode},
		{http.MethodGet, "/latest/block", h.latestBlock, statusCode},
		{http.MethodGet, "/block/{height}", h.getBlock, statusCode},
		{http.MethodGet, "/statePath", h.statePath, statusCode},
		{http.MethodGet, "/records/all", h.records(ledger.RecordsAll), recordsStatusCode},
		{http.MethodGet, "/records/spent", h.records(ledger.RecordsSpent), recordsStatusCode},
		{http.MethodGet, "/records/unspent", h.records(ledger.RecordsUnspent), recordsStatusCode},
		{http.MethodGet, "/transactions/{height}", h.getTransactions, statusCode},
		{http.MethodGet, "/transaction/{id}", h.getTransaction, statusCode},
		{http.MethodPost, "/transaction/broadcast", h.broadcast, statusCode},
		{http.MethodGet, "/memoryPool/transactions", h.memoryPool, statusCode},
		{http.MethodPost, "/block/advance", h.advance, statusCode},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, h.wrap(route.pattern, route.handle, route.status)); err != nil {
			return err
		}
	}
	return nil
}

func (h *RESTHandler) wrap(route string, fn handlerFunc, status func(error) int) gwruntime.HandlerFunc {
	logger := h.logger.With(zap.String("route", route))
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		started := time.Now()
		code := http.StatusOK

		v, err := fn(r, params)
		if err == nil {
			var body []byte
			if body, err = json.Marshal(v); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(code)
				_, _ = w.Write(body)
			}
		}
		if err != nil {
			code = status(err)
			if code >= http.StatusInternalServerError {
				logger.Error("request failed", zap.Error(err))
			} else {
				logger.Debug("request rejected", zap.Error(err), zap.Int("code", code))
			}
			http.Error(w, http.StatusText(code), code)
		}
		h.metrics.ObserveRequest(route, code, started)
	}
}

func (h *RESTHandler) latestHeight(*http.Request, map[string]string) (any, error) {
	return h.ledger.LatestHeight(), nil
}

func (h *RESTHandler) latestHash(*http.Request, map[string]string) (any, error) {
	return h.ledger.LatestHash(), nil
}

func (h *RESTHandler) latestBlock(r *http.Request, _ map[string]string) (any, error) {
	return h.ledger.LatestBlock(r.Context())
}

func (h *RESTHandler) getBlock(r *http.Request, params map[string]string) (any, error) {
	height, err := parseHeight(params["height"])
	if err != nil {
		return nil, err
	}
	return h.ledger.GetBlock(r.Context(), height)
}

func (h *RESTHandler) getTransactions(r *http.Request, params map[string]string) (any, error) {
	height, err := parseHeight(params["height"])
	if err != nil {
		return nil, err
	}
	return h.ledger.GetTransactions(r.Context(), height)
}

func (h *RESTHandler) getTransaction(r *http.Request, params map[string]string) (any, error) {
	id, err := model.ParseHash(params["id"])
	if err != nil {
		return nil, err
	}
	return h.ledger.GetTransaction(r.Context(), id)
}

func (h *RESTHandler) statePath(r *http.Request, _ map[string]string) (any, error) {
	var commitment model.Field
	if err := decodeBody(r, smallBodyLimit, &commitment); err != nil {
		return nil, err
	}
	return h.ledger.StatePath(r.Context(), commitment)
}

func (h *RESTHandler) records(filter ledger.RecordsFilter) handlerFunc {
	return func(r *http.Request, _ map[string]string) (any, error) {
		var viewKey account.ViewKey
		if err := decodeBody(r, smallBodyLimit, &viewKey); err != nil {
			return nil, err
		}
		return h.ledger.FindRecords(r.Context(), viewKey, filter)
	}
}

func (h *RESTHandler) memoryPool(*http.Request, map[string]string) (any, error) {
	return h.ledger.MemoryPoolTransactions(), nil
}

func (h *RESTHandler) broadcast(r *http.Request, _ map[string]string) (any, error) {
	var tx model.Transaction
	if err := decodeBody(r, largeBodyLimit, &tx); err != nil {
		return nil, err
	}
	h.limiter.Take()
	if err := h.ledger.Submit(r.Context(), service.BroadcastTransaction(tx)); err != nil {
		return nil, err
	}
	return broadcastReply, nil
}

func (h *RESTHandler) advance(r *http.Request, _ map[string]string) (any, error) {
	var block model.Block
	if err := decodeBody(r, largeBodyLimit, &block); err != nil {
		return nil, err
	}
	if err := h.ledger.Submit(r.Context(), service.AdvanceBlock(block)); err != nil {
		return nil, err
	}
	return broadcastReply, nil
}

func parseHeight(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, decodeError("height", err)
	}
	height, err := safe.Uint32(v)
	if err != nil {
		return 0, decodeError("height", err)
	}
	return height, nil
}
