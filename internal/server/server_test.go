package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyspell/internal/corrector"
	"hyspell/internal/preprocess"
	"hyspell/internal/service"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	vocab := corrector.BuildVocabulary(preprocess.Tokens("ասում ասում ասում գնում"))
	return NewHandler(service.NewSpeller(corrector.New(vocab), nil, nil), nil, time.Second)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCorrectEndpoint(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		body       string
		wantStatus string
		wantTop    string
	}{
		{"misspelled", `{"word":"ասոմ"}`, "suggestions", "ասում"},
		{"known", `{"word":"գնում"}`, "correct", ""},
		{"unknown", `{"word":"բերել"}`, "no_suggestion", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/correct", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Word        string                `json:"word"`
				Status      string                `json:"status"`
				Suggestions []corrector.Candidate `json:"suggestions"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantTop != "" {
				require.NotEmpty(t, resp.Suggestions)
				assert.Equal(t, tt.wantTop, resp.Suggestions[0].Word)
			} else {
				assert.Empty(t, resp.Suggestions)
			}
		})
	}
}

func TestCorrectEndpointRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/correct", `{"word":"  "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/correct", `not json`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/correct", "").Code)
}

func TestCheckEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/check", `{"text":"Նա ասոմ է, որ գնում ենք։"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tokens []struct {
			Position int    `json:"position"`
			Token    string `json:"token"`
			Status   string `json:"status"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 6)
	assert.Equal(t, "ասոմ", resp.Tokens[1].Token)
	assert.Equal(t, "suggestions", resp.Tokens[1].Status)
	assert.Equal(t, "correct", resp.Tokens[4].Status)
}

func TestHealthAndRequestID(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	assert.JSONEq(t, `{"status":"ok","vocabulary":2}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(requestIDHeader))
}

type slowSpeller struct{}

func (slowSpeller) Check(ctx context.Context, _ string) (corrector.Result, error) {
	<-ctx.Done()
	return corrector.Result{}, ctx.Err()
}

func (slowSpeller) CheckText(ctx context.Context, _ string) ([]corrector.TokenResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowSpeller) VocabularySize() int { return 0 }

func TestCorrectEndpointTimeout(t *testing.T) {
	h := NewHandler(slowSpeller{}, nil, 10*time.Millisecond)

	rec := do(t, h, http.MethodPost, "/api/v1/correct", `{"word":"ասոմ"}`)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
