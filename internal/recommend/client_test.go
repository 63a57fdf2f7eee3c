package recommend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(upstream *httptest.Server) *Client {
	return NewClient(upstream.URL, "test-key", upstream.Client())
}

func TestClient_Recommend(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercises/bodyPart/chest", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.NotEmpty(t, r.Header.Get("X-RapidAPI-Host"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"0025","name":"barbell bench press","bodyPart":"chest","target":"pectorals","equipment":"barbell","gifUrl":"https://example.com/0025.gif"},
			{"id":"0033","name":"cable fly","bodyPart":"chest","target":"pectorals","equipment":"cable","gifUrl":"https://example.com/0033.gif"}
		]`))
	}))
	defer upstream.Close()

	exercises, err := newTestClient(upstream).Recommend(context.Background(), "chest")
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "barbell bench press", exercises[0].Name)
	assert.Equal(t, "pectorals", exercises[0].Target)
	assert.Equal(t, "cable", exercises[1].Equipment)
}

func TestClient_Recommend_EmptyResult(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).Recommend(context.Background(), "tail")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrEmptyResult))
	assert.False(t, apperr.IsUpstream(err))
}

func TestClient_Recommend_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something broke", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).Recommend(context.Background(), "chest")
	require.Error(t, err)

	var ue *apperr.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusInternalServerError, ue.StatusCode)
	assert.False(t, errors.Is(err, apperr.ErrEmptyResult))
	assert.False(t, errors.Is(err, apperr.ErrUpstreamTimeout))
}

func TestClient_Recommend_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "test-key", &http.Client{Timeout: 20 * time.Millisecond})

	_, err := client.Recommend(context.Background(), "chest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUpstreamTimeout))
	assert.False(t, apperr.IsUpstream(err))
}

func TestClient_Recommend_MalformedPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).Recommend(context.Background(), "chest")
	require.Error(t, err)
	assert.True(t, apperr.IsUpstream(err))
}

func TestClient_Recommend_EmptyTarget(t *testing.T) {
	client := NewClient("https://exercisedb.p.rapidapi.com", "test-key", http.DefaultClient)

	_, err := client.Recommend(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
