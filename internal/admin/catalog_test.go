package admin

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/campusadmin/internal/api"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/alexanderramin/campusadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteCatalog_AddPostsSingleProgram(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("POST /api/college", 201, `{"id":"c9","college":"Yale","program":["Art"]}`)
	rec := &testutil.RecordingRecorder{}

	got, err := WithJournal(NewRemoteCatalog(client), rec, nil).Add(context.Background(), "Yale", "Art")

	require.NoError(t, err)
	assert.Equal(t, domain.CollegeProgram{ID: "c9", College: "Yale", Program: []string{"Art"}}, got)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.Body("POST /api/college")), &sent))
	assert.Equal(t, map[string]any{"college": "Yale", "program": []any{"Art"}}, sent)

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OpAddCollege, entries[0].Op)
	assert.Equal(t, "Yale: Art", entries[0].Summary)
	assert.True(t, entries[0].OK)
}

func TestRemoteCatalog_AddFallsBackToSubmittedEntry(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("POST /api/college", 201, `{"message":"created"}`)

	got, err := NewRemoteCatalog(client).Add(context.Background(), "Yale", "Art")

	require.NoError(t, err)
	assert.Equal(t, domain.CollegeProgram{College: "Yale", Program: []string{"Art"}}, got)
}

func TestWithJournal_RecordsFailedAdd(t *testing.T) {
	f, client := newFakeAPI(t)
	f.reply("POST /api/college", 400, `{"error":"bad"}`)
	rec := &testutil.RecordingRecorder{}

	_, err := WithJournal(NewRemoteCatalog(client), rec, nil).Add(context.Background(), "Yale", "Art")

	assert.ErrorIs(t, err, api.ErrStatus)
	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].OK)
	assert.NotEmpty(t, entries[0].Error)
}

func TestApplyCatalogAdd(t *testing.T) {
	var s Selector
	s.SetCatalog(testutil.Catalog())

	failed := ApplyCatalogAdd(&s, CatalogResult{Pair: domain.Pair{College: "Yale", Program: "Art"}, Err: errRemote})
	assert.ErrorIs(t, failed.Err, errRemote)
	assert.Len(t, s.Catalog(), 3)

	entry := domain.CollegeProgram{ID: "c9", College: "Yale", Program: []string{"Art"}}
	ok := ApplyCatalogAdd(&s, CatalogResult{Pair: domain.Pair{College: "Yale", Program: "Art"}, Entry: entry})
	assert.True(t, ok.OK())
	assert.Equal(t, "Added Yale / Art", ok.Message())

	s.SelectCollege("Yale")
	assert.Equal(t, []string{"Art"}, s.ProgramOptions())
}
