package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/campusadmin/internal/api"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/alexanderramin/campusadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records requests and replies with canned bodies keyed by
// "METHOD path".
type fakeAPI struct {
	mu       sync.Mutex
	replies  map[string]string
	status   map[string]int
	requests []string
	bodies   map[string]string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *api.Client) {
	t.Helper()
	f := &fakeAPI{replies: map[string]string{}, status: map[string]int{}, bodies: map[string]string{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	client := api.NewClient(api.Options{BaseURL: srv.URL, Timeout: time.Second}, nil)
	t.Cleanup(client.Close)
	return f, client
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.bodies[key] = string(body)
	reply, code := f.replies[key], f.status[key]
	f.mu.Unlock()

	if code == 0 {
		code = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, reply)
}

func (f *fakeAPI) reply(key string, code int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[key] = body
	f.status[key] = code
}

func (f *fakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeAPI) Body(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[key]
}

func TestRemoteStore_CatalogToPrerequisitesScenario(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("GET /api/college", 200, `[{"college":"MIT","program":["CS","EE"]}]`)
	f.reply("GET /api/prerequisite", 200, `[
		{"id":1,"college":"MIT","program":"CS","msg":"calculus","src":"a"},
		{"id":2,"college":"MIT","program":"EE","msg":"circuits","src":"b"},
		{"id":"x3","college":"Yale","program":"CS","msg":"logic","src":"c"}
	]`)

	catalog, err := NewRemoteCatalog(client).List(context.Background())
	require.NoError(t, err)

	var s Selector
	s.SetCatalog(catalog)
	s.SelectCollege("MIT")
	require.Equal(t, []string{"CS", "EE"}, s.ProgramOptions())
	s.SelectProgram("CS")

	e := NewEditor(PrerequisiteKind, NewRemoteStore(client, PrerequisiteKind), nil, nil)
	ticket := e.Select(s.Pair())
	require.True(t, e.ApplyFetch(e.Fetch(context.Background(), ticket)).OK())

	assert.Equal(t, []domain.Prerequisite{
		{ID: "1", College: "MIT", Program: "CS", Msg: "calculus", Src: "a"},
	}, e.Items())
	assert.Equal(t, []string{"GET /api/college", "GET /api/prerequisite"}, f.Requests())
}

func TestRemoteStore_TaskCreateSendsNormalizedDate(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("GET /api/task", 200, `[]`)
	f.reply("POST /api/task", 201, `{"id":"t1","college":"MIT","program":"CS","task":"Apply","date":"2024-05-01T00:00:00.000Z"}`)

	e := NewEditor(TaskKind, NewRemoteStore(client, TaskKind), nil, nil)
	ticket := loadedEditor(t, e, testutil.PairMITCS)

	out := e.ApplyAdd(e.Submit(context.Background(), ticket, Values{"task": "Apply", "date": "2024-05-01"}))
	require.True(t, out.OK())

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.Body("POST /api/task")), &sent))
	assert.Equal(t, map[string]any{
		"college": "MIT",
		"program": "CS",
		"task":    "Apply",
		"date":    "2024-05-01T00:00:00.000Z",
	}, sent)
	assert.Equal(t, domain.ID("t1"), e.Items()[0].ID)
}

func TestRemoteStore_DeleteHitsRecordPath(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("DELETE /api/notes/n1", 200, `{"message":"deleted"}`)

	err := NewRemoteStore(client, NoteKind).Delete(context.Background(), "n1")

	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /api/notes/n1"}, f.Requests())
}

func TestRemoteStore_StatusErrorIsWrapped(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("GET /api/resource", 500, `{"error":"db down"}`)

	_, err := NewRemoteStore(client, ResourceKind).List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrStatus)
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.Code)
}

func TestRemoteStore_EmptyCreateReplyIsNotAdded(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("GET /api/task", 200, `[]`)
	f.reply("POST /api/task", 201, ``)

	e := NewEditor(TaskKind, NewRemoteStore(client, TaskKind), nil, nil)
	ticket := loadedEditor(t, e, testutil.PairMITCS)

	out := e.ApplyAdd(e.Submit(context.Background(), ticket, Values{"task": "Apply", "date": "2024-05-01"}))

	assert.ErrorIs(t, out.Err, api.ErrDecode)
	assert.Zero(t, e.Len())
	assert.Equal(t, []string{"GET /api/task", "POST /api/task"}, f.Requests())
}

func TestRemoteStore_CreateReplyWithoutIDIsRejected(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("POST /api/notes", 201, `{"message":"saved"}`)

	_, err := NewRemoteStore(client, NoteKind).Create(context.Background(),
		domain.Note{College: "MIT", Program: "CS", Title: "Syllabus"})

	assert.ErrorIs(t, err, ErrNoRecordID)
}

func TestRemoteStore_DeleteWithoutIDSendsNothing(t *testing.T) {
	f, client := newFakeAPI(t)

	err := NewRemoteStore(client, TaskKind).Delete(context.Background(), "")

	assert.ErrorIs(t, err, api.ErrMissingID)
	assert.Empty(t, f.Requests())
}
