package selfcare

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestService(t *testing.T) *DefaultSelfCareService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	writeCatalogFile(t, path, "mood,energy,advice\nlow,low,Walk\nlow,high,Call a friend\nhigh,high,Celebrate\n")
	return &DefaultSelfCareService{
		Catalog:      NewCatalogCache(path, "advice", 30*time.Minute, nil),
		AdviceColumn: "advice",
	}
}

func TestServiceRecommend(t *testing.T) {
	svc := newTestService(t)

	advice, err := svc.Recommend(context.Background(), map[string]string{"mood": "low", "energy": "high"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if advice != "Call a friend" {
		t.Errorf("advice = %q, want %q", advice, "Call a friend")
	}
}

func TestServiceRecommendEmptyQuery(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), map[string]string{"mood": " "})
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("error = %v, want ErrEmptyQuery", err)
	}
}

func TestServiceColumns(t *testing.T) {
	svc := newTestService(t)

	columns, err := svc.Columns(context.Background())
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(columns))
	}
	if columns[0].Name != "mood" || columns[1].Name != "energy" {
		t.Errorf("column order = [%s %s], want header order [mood energy]", columns[0].Name, columns[1].Name)
	}
	wantMood := []string{"high", "low"}
	if len(columns[0].Options) != 2 || columns[0].Options[0] != wantMood[0] || columns[0].Options[1] != wantMood[1] {
		t.Errorf("mood options = %v, want %v", columns[0].Options, wantMood)
	}
}
