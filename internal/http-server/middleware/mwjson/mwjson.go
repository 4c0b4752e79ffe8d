package mwjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"bookingRegistry/internal/lib/api/response"
	"bookingRegistry/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

// New rejects requests that declare a JSON body but send something that is
// not a JSON object, before any handler runs. Bodies over maxBytes are
// refused with 413. The body is handed on to the next handler unchanged.
func New(log *slog.Logger, maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/json"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody ||
				render.GetRequestContentType(r) != render.ContentTypeJSON {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					log.Warn("request body too large", slog.Int64("limit", tooLarge.Limit))
					render.Status(r, http.StatusRequestEntityTooLarge)
					render.JSON(w, r, response.Error(response.MsgTooLarge))
					return
				}

				log.Error("failed to read request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.MsgInvalidJSON))
				return
			}

			if !isObjectOrEmpty(body) {
				log.Info("malformed JSON body", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.MsgInvalidJSON))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func isObjectOrEmpty(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}

	return trimmed[0] == '{' && json.Valid(trimmed)
}
