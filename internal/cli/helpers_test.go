package cli

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/config"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/alexanderramin/campusadmin/internal/repository"
	"github.com/alexanderramin/campusadmin/internal/teatest"
	"github.com/alexanderramin/campusadmin/internal/testutil"
	"go.uber.org/zap"
)

// fakes exposes the in-memory backends behind a test App.
type fakes struct {
	prerequisites *testutil.FakeStore[domain.Prerequisite]
	tasks         *testutil.FakeStore[domain.Task]
	notes         *testutil.FakeStore[domain.Note]
	resources     *testutil.FakeStore[domain.Resource]
	catalog       *testutil.FakeCatalog
	feedback      *testutil.FakeFeedback
	journal       *repository.SQLiteJournalRepo
}

var pairMITEE = domain.Pair{College: "MIT", Program: "EE"}

// testApp wires an App over fake remote collections and an in-memory
// journal. MIT/CS and MIT/EE each have records of every kind.
func testApp(t *testing.T) (*App, *fakes) {
	t.Helper()
	database := testutil.NewTestDB(t)
	mitcs := testutil.PairMITCS

	f := &fakes{
		prerequisites: testutil.NewFakeStore(testutil.PrerequisiteWithID,
			testutil.NewPrerequisite(mitcs, "calculus"),
			testutil.NewPrerequisite(pairMITEE, "circuits"),
			testutil.NewPrerequisite(mitcs, "algebra"),
		),
		tasks: testutil.NewFakeStore(testutil.TaskWithID,
			testutil.NewTask(mitcs, "Submit transcript", "2024-05-01T00:00:00.000Z"),
		),
		notes: testutil.NewFakeStore(testutil.NoteWithID,
			testutil.NewNote(pairMITEE, "Lab safety"),
		),
		resources: testutil.NewFakeStore(testutil.ResourceWithID,
			testutil.NewResource(mitcs, "OCW"),
		),
		catalog: testutil.NewFakeCatalog(testutil.Catalog()...),
		feedback: testutil.NewFakeFeedback(
			domain.Feedback{ID: "f1", College: "MIT", Program: "CS", Content: "Great", Rating: "5"},
		),
		journal: repository.NewSQLiteJournalRepo(database),
	}

	cfg := config.DefaultConfig()
	cfg.BaseURL = "http://api.test"
	recorder := admin.NewJournalRecorder(testutil.NewTestUoW(database), cfg.BaseURL, 0, nil)
	app := &App{
		Config: cfg,
		Logger: zap.NewNop(),
		Stores: admin.Stores{
			Prerequisites: f.prerequisites,
			Tasks:         f.tasks,
			Notes:         f.notes,
			Resources:     f.resources,
		},
		Catalog:  admin.WithJournal(f.catalog, recorder, nil),
		Feedback: f.feedback,
		Recorder: recorder,
		Journal:  f.journal,
	}
	return app, f
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app, nil)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return teatest.StripANSI(buf.String()), err
}
