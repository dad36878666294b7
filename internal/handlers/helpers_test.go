package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-event-planner/internal/middlewares"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request whose body is body marshalled to JSON, or the raw string when body is a string.
func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(data)
	}
	return httptest.NewRequest(method, target, r)
}

// withUser attaches a session user id the way AuthMiddleware does.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(middlewares.WithUserID(r.Context(), userID))
}

// withURLParams sets chi route parameters on the request.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
