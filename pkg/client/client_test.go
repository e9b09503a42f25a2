package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prepforge/prepforge/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient(baseURL string) *Client {
	return New(baseURL, "test-key", WithRetry(time.Millisecond, 2))
}

func TestDoSendsHeaders(t *testing.T) {
	var gotKey, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotCT = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	var out map[string]any
	err := fastClient(srv.URL).do(context.Background(), http.MethodGet, "/x", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotCT)
}

func TestDoRejectsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!doctype html><html><body>SPA fallback</body></html>"))
	}))
	defer srv.Close()

	var out map[string]any
	err := fastClient(srv.URL).do(context.Background(), http.MethodGet, "/x", nil, &out)
	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestDoDoesNotRetryAuthFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid API key","status":"error","statusCode":401}`))
	}))
	defer srv.Close()

	err := fastClient(srv.URL).do(context.Background(), http.MethodGet, "/x", nil, nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "invalid API key", se.Message)
	assert.Equal(t, int32(1), calls.Load(), "401 must not be retried")
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := fastClient(srv.URL).do(context.Background(), http.MethodGet, "/x", nil, nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestDoRecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	var out map[string]any
	err := fastClient(srv.URL).do(context.Background(), http.MethodGet, "/x", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, int32(2), calls.Load())
}

func TestReviewsFallsBackToMocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not the api</html>"))
	}))
	defer srv.Close()

	reviews := fastClient(srv.URL).Reviews(context.Background(), "", "")
	assert.Equal(t, MockReviews(), reviews, "read path degrades to local mock data")
}

func TestReviewsSuccess(t *testing.T) {
	want := []model.Review{{ID: 1, Company: "Acme", Role: "Engineer", Rating: 4}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Acme", r.URL.Query().Get("company"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	reviews := fastClient(srv.URL).Reviews(context.Background(), "Acme", "")
	assert.Equal(t, want, reviews)
}

func TestSubmitReviewSurfacesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"company and role are required","status":"error","statusCode":400}`))
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).SubmitReview(context.Background(), map[string]any{"role": "Engineer"})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
}

func TestSubmitReviewSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body["company"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.SubmitReviewResponse{
			Review:  model.Review{ID: 7, Company: "Acme", Role: "Engineer", Rating: 3},
			Message: "Review submitted successfully",
		})
	}))
	defer srv.Close()

	resp, err := fastClient(srv.URL).SubmitReview(context.Background(), map[string]any{"company": "Acme", "role": "Engineer"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Review.ID)
}
