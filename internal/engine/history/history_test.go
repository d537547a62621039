package history

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
)

// resetLocal points the package at a fresh database under dir so each
// test starts empty.
func resetLocal(t *testing.T) {
	t.Helper()
	if localDB != nil {
		localDB.Close()
	}
	localDB = nil
	localErr = nil
	localOnce = sync.Once{}
	SetPath(filepath.Join(t.TempDir(), "history.db"))
}

func testEntry(title string, score float64) Entry {
	return Entry{
		ResumeName:   "João da Silva",
		JobTitle:     title,
		Company:      "Empresa X",
		Language:     "pt",
		OverallScore: score,
		Result:       json.RawMessage(`{"overall_score":66.67}`),
	}
}

func TestSaveAndList(t *testing.T) {
	resetLocal(t)
	ctx := context.Background()

	id, err := Save(ctx, testEntry("Desenvolvedor Python", 66.67))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	out, err := List(ctx, ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 1 || len(out.Entries) != 1 {
		t.Fatalf("got %d/%d entries", len(out.Entries), out.Total)
	}
	e := out.Entries[0]
	if e.ID != id || e.JobTitle != "Desenvolvedor Python" || e.Company != "Empresa X" {
		t.Errorf("entry = %+v", e)
	}
	if e.OverallScore != 66.67 {
		t.Errorf("OverallScore = %v", e.OverallScore)
	}
	if e.CreatedAt == "" {
		t.Error("CreatedAt not set")
	}
	var payload map[string]float64
	if err := json.Unmarshal(e.Result, &payload); err != nil {
		t.Errorf("stored result is not valid JSON: %v", err)
	}
}

func TestSaveValidation(t *testing.T) {
	resetLocal(t)
	ctx := context.Background()

	e := testEntry("", 50)
	if _, err := Save(ctx, e); err == nil {
		t.Error("missing job title must be rejected")
	}

	e = testEntry("Desenvolvedor", 50)
	e.Result = nil
	if _, err := Save(ctx, e); err == nil {
		t.Error("missing result payload must be rejected")
	}
}

func TestListNewestFirst(t *testing.T) {
	resetLocal(t)
	ctx := context.Background()

	for _, title := range []string{"Primeira", "Segunda", "Terceira"} {
		if _, err := Save(ctx, testEntry(title, 50)); err != nil {
			t.Fatalf("Save %s: %v", title, err)
		}
	}

	out, err := List(ctx, ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("got %d entries", len(out.Entries))
	}
	// Same-second inserts fall back to id order, newest first.
	if out.Entries[0].JobTitle != "Terceira" || out.Entries[2].JobTitle != "Primeira" {
		t.Errorf("order = [%s %s %s]",
			out.Entries[0].JobTitle, out.Entries[1].JobTitle, out.Entries[2].JobTitle)
	}
}

func TestListMinScore(t *testing.T) {
	resetLocal(t)
	ctx := context.Background()

	for i, score := range []float64{30, 55, 80} {
		e := testEntry("Vaga", score)
		e.ResumeName = string(rune('a' + i))
		if _, err := Save(ctx, e); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	out, err := List(ctx, ListInput{MinScore: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 2 || len(out.Entries) != 2 {
		t.Fatalf("got %d/%d entries, want 2", len(out.Entries), out.Total)
	}
	for _, e := range out.Entries {
		if e.OverallScore < 50 {
			t.Errorf("entry below min score leaked: %+v", e)
		}
	}
}

func TestListLimit(t *testing.T) {
	resetLocal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := Save(ctx, testEntry("Vaga", 50)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	out, err := List(ctx, ListInput{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Errorf("got %d entries, want 2", len(out.Entries))
	}
	if out.Total != 5 {
		t.Errorf("Total = %d, want 5 regardless of limit", out.Total)
	}
}

func TestListEmpty(t *testing.T) {
	resetLocal(t)

	out, err := List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Entries == nil || len(out.Entries) != 0 {
		t.Errorf("empty store must list a non-nil empty slice, got %v", out.Entries)
	}
}
