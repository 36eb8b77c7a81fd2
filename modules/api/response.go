package api

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/gymnexus/pkg/apierr"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
)

// response renders itself to the client.
type response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	apierr.Write(w, e.err)
	return nil
}

func ok(body any) response { return jsonResponse{status: http.StatusOK, body: body} }

func fail(err error) response { return errorResponse{err: err} }

// handlerFunc is an endpoint that returns its response instead of writing it.
type handlerFunc func(r *http.Request) response

func (h *handlers) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			resp = fail(apierr.ErrInternal)
		}
		if err := resp.Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}
