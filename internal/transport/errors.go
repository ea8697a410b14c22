package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

var errBodyTooLarge = errors.New("request body too large")

func decodeError(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", model.ErrDecode, what, err)
}

// decodeBody reads at most limit bytes of JSON from the request body into v.
func decodeBody(r *http.Request, limit int64, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, limit)
		}
		return decodeError("body", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		if errors.Is(err, model.ErrDecode) {
			return err
		}
		return decodeError("body", err)
	}
	return nil
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, model.ErrQueueClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrDuplicate),
		errors.Is(err, model.ErrDoubleSpend),
		errors.Is(err, model.ErrInvalidTransaction),
		errors.Is(err, model.ErrInvalidBlock):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// recordsStatusCode reports every failure that is not a malformed request as not found.
func recordsStatusCode(err error) int {
	switch code := statusCode(err); code {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return code
	}
	return http.StatusNotFound
}
