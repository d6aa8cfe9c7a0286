package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/goalkeeper/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "goal doesn't exist", errors.New("details"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{Code: http.StatusNotFound, Message: "goal doesn't exist", Details: "details"}, resp)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Value float64 `json:"value"`
	}
	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value": -2.5}`))
		var p payload
		require.NoError(t, httputil.DecodeJSON(r, &p))
		assert.Equal(t, -2.5, p.Value)
	})
	t.Run("no body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		var p payload
		assert.ErrorIs(t, httputil.DecodeJSON(r, &p), httputil.ErrEmptyBody)
	})
	t.Run("corrupted", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("corrupted"))
		var p payload
		assert.Error(t, httputil.DecodeJSON(r, &p))
	})
}
