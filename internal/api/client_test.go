package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID      string `json:"id,omitempty"`
	College string `json:"college"`
}

func newTestClient(t *testing.T, baseURL string, obs Observer) *Client {
	t.Helper()
	c := NewClient(Options{BaseURL: baseURL, Timeout: time.Second}, obs)
	t.Cleanup(c.Close)
	return c
}

func TestClient_List_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/task", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","college":"MIT"},{"id":"2","college":"Yale"}]`)
	}))
	defer srv.Close()

	var got []item
	err := newTestClient(t, srv.URL+"/", nil).List(context.Background(), "/api/task", &got)

	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1", College: "MIT"}, {ID: "2", College: "Yale"}}, got)
}

func TestClient_Create_SendsJSONAndDecodesReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body item
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "MIT", body.College)
		assert.Empty(t, body.ID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(item{ID: "new", College: body.College})
	}))
	defer srv.Close()

	var got item
	err := newTestClient(t, srv.URL, nil).Create(context.Background(), "/api/notes", item{College: "MIT"}, &got)

	require.NoError(t, err)
	assert.Equal(t, item{ID: "new", College: "MIT"}, got)
}

func TestClient_Create_EmptyReplyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	got := item{College: "untouched"}
	err := newTestClient(t, srv.URL, nil).Create(context.Background(), "/api/college", item{}, &got)

	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, "untouched", got.College)
}

func TestClient_Create_NilOutIgnoresReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL, nil).Create(context.Background(), "/api/college", item{}, nil)
	require.NoError(t, err)
}

func TestClient_Delete_EmptyIDSendsNothing(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL, nil).Delete(context.Background(), "/api/task", "")

	assert.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, "INVALID", ErrorCode(err))
	assert.Zero(t, hits)
}

func TestClient_Delete_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/resource/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL, nil).Delete(context.Background(), "/api/resource", "a/b")
	require.NoError(t, err)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "no such record")
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL, nil).Delete(context.Background(), "/api/task", "9")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatus)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "no such record", se.Body)
	assert.Contains(t, err.Error(), "DELETE /api/task: status 404")
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	var got []item
	err := newTestClient(t, srv.URL, nil).List(context.Background(), "/api/task", &got)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	t.Cleanup(c.Close)

	var got []item
	err := c.List(context.Background(), "/api/task", &got)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_CanceledIsNotTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []item
	err := newTestClient(t, srv.URL, nil).List(ctx, "/api/task", &got)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "CANCELED", ErrorCode(err))
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 2))
	// "é" is two bytes; cutting at 2 would split it.
	assert.Equal(t, "a…", truncate("aéb", 2))
	assert.Equal(t, "aé…", truncate("aébc", 3))
}

func TestClient_Unavailable(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", nil) // nothing listening

	var got []item
	err := c.List(context.Background(), "/api/task", &got)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ObserverSeesCollectionPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var events []CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { events = append(events, e) }}

	err := newTestClient(t, srv.URL, obs).Delete(context.Background(), "/api/notes", "abc")
	require.Error(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "DELETE", events[0].Method)
	assert.Equal(t, "/api/notes", events[0].Path, "ids must not leak into the path label")
	assert.Equal(t, http.StatusInternalServerError, events[0].Status)
	assert.False(t, events[0].Success)
	assert.Equal(t, "STATUS", events[0].ErrorCode)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", ErrorCode(nil))
	assert.Equal(t, "TIMEOUT", ErrorCode(ErrTimeout))
	assert.Equal(t, "UNAVAILABLE", ErrorCode(ErrUnavailable))
	assert.Equal(t, "STATUS", ErrorCode(&StatusError{Code: 500}))
	assert.Equal(t, "DECODE", ErrorCode(ErrDecode))
	assert.Equal(t, "UNKNOWN", ErrorCode(errors.New("boom")))
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
