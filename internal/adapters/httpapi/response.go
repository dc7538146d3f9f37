package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"nordweb/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

var errBadRequest = errors.New("malformed request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case "product_not_found", "post_not_found", "block_not_found":
		return http.StatusNotFound
	case "unsupported_currency", "unsupported_language", "invalid_email",
		"invalid_block", "invalid_translation", "invalid_setting", "bad_request":
		return http.StatusBadRequest
	case "unauthorized":
		return http.StatusUnauthorized
	case "translation_superseded":
		return http.StatusConflict
	case "translation_upstream":
		return http.StatusBadGateway
	case "translation_disabled":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with a message localized for the request. Errors
// without a domain code are logged and reported as generic failures.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	if errors.Is(err, errBadRequest) {
		code = "bad_request"
	}
	status := statusFor(code)
	if code == "" {
		code = "generic"
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	lang := localeFrom(r.Context()).Lang
	msg := h.translations.Resolve(r.Context(), "error."+code, lang)
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: msg}})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
