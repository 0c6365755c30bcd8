package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paperforge/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.LedgerConfig{
		Path: filepath.Join(t.TempDir(), "ledger", "runs.db"),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testSession(runID, topic string, createdAt time.Time) types.Session {
	return types.Session{
		RunID:     runID,
		Topic:     topic,
		Stage:     types.StageRendered,
		Artifacts: types.Artifacts{HTMLPath: "doc/" + runID + ".html", PDFPath: "doc/" + runID + ".pdf"},
		CreatedAt: createdAt,
	}
}

// --- tests ---

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	for i, topic := range []string{"first topic", "second topic", "third topic"} {
		s := testSession(topic[:5], topic, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, s, "Paper on "+topic, KindCreate); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Topic != "third topic" || entries[2].Topic != "first topic" {
		t.Errorf("entries not newest first: %s, %s, %s",
			entries[0].Topic, entries[1].Topic, entries[2].Topic)
	}

	e := entries[0]
	if e.Status != types.StatusCompleted {
		t.Errorf("status = %q", e.Status)
	}
	if e.Kind != KindCreate {
		t.Errorf("kind = %q", e.Kind)
	}
	if e.Title != "Paper on third topic" {
		t.Errorf("title = %q", e.Title)
	}
	if e.HTMLPath == "" || e.PDFPath == "" {
		t.Errorf("artifact paths lost: %+v", e)
	}
	if !e.CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created_at = %v", e.CreatedAt)
	}
}

func TestRecordFailedRun(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	s := types.Session{
		RunID:     "failed-run",
		Topic:     "doomed topic",
		Stage:     types.StageFailed,
		Err:       "generating paper: model overloaded",
		Research:  types.ResearchBundle{Degraded: true},
		CreatedAt: time.Now(),
	}
	if err := store.Record(ctx, s, "", KindCreate); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if entries[0].Status != types.StatusFailed {
		t.Errorf("status = %q", entries[0].Status)
	}
	if !entries[0].Degraded {
		t.Error("degraded flag lost")
	}
	if entries[0].Err != "generating paper: model overloaded" {
		t.Errorf("error = %q", entries[0].Err)
	}
}

func TestRecordUpsert(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	s := types.Session{RunID: "run-1", Topic: "topic", Stage: types.StageFailed, Err: "boom", CreatedAt: created}
	if err := store.Record(ctx, s, "", KindCreate); err != nil {
		t.Fatalf("Record: %v", err)
	}

	s = testSession("run-1", "topic", created)
	if err := store.Record(ctx, s, "Recovered", KindCreate); err != nil {
		t.Fatalf("Record (update): %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 after upsert", len(entries))
	}
	if entries[0].Status != types.StatusCompleted || entries[0].Title != "Recovered" {
		t.Errorf("row not updated: %+v", entries[0])
	}
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		s := testSession(strings.Repeat("x", i+1), "topic", base.Add(time.Duration(i)*time.Second))
		if err := store.Record(ctx, s, "", KindCreate); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestFormatTable(t *testing.T) {
	entries := []Entry{
		{
			Topic:     "a very long research topic that keeps going",
			Kind:      KindCreate,
			Status:    "completed",
			Degraded:  true,
			HTMLPath:  "doc/research_paper_a_20260314_093000.html",
			CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	FormatTable(entries, &buf)
	out := buf.String()

	if !strings.Contains(out, "completed*") {
		t.Error("degraded completion should be starred")
	}
	if !strings.Contains(out, "research_paper_a_20260314_093000.html") {
		t.Error("artifact name missing")
	}
	if !strings.Contains(out, "1 runs") {
		t.Error("footer missing")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No runs recorded.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	entries := []Entry{{RunID: "r1", Topic: "t", Kind: KindCreate, Status: "completed"}}

	var buf bytes.Buffer
	if err := FormatJSON(entries, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded []Entry
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].RunID != "r1" {
		t.Errorf("decoded = %+v", decoded)
	}
}
