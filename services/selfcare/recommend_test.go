package selfcare

import (
	"errors"
	"testing"

	"serenemind/models"
)

func TestBestMatch(t *testing.T) {
	catalog := []models.CatalogRow{
		{"mood": "sad", "energy": "low", "advice": "Listen to a comfort playlist"},
		{"mood": "sad", "energy": "high", "advice": "Go for a bike ride"},
		{"mood": "happy", "energy": "high", "advice": "Plan a picnic"},
	}

	tests := []struct {
		name  string
		query map[string]string
		want  string
	}{
		{
			name:  "exact match on all fields",
			query: map[string]string{"mood": "sad", "energy": "high"},
			want:  "Go for a bike ride",
		},
		{
			name:  "partial match beats no match",
			query: map[string]string{"mood": "happy", "energy": "low"},
			want:  "Listen to a comfort playlist",
		},
		{
			name:  "blank fields excluded from scoring",
			query: map[string]string{"mood": "happy", "energy": "  "},
			want:  "Plan a picnic",
		},
		{
			name:  "field absent from catalog scores zero everywhere",
			query: map[string]string{"weather": "rainy"},
			want:  "Go for a bike ride", // three-way tie, smallest advice wins
		},
		{
			name:  "matching is case sensitive",
			query: map[string]string{"mood": "SAD", "energy": "high"},
			want:  "Go for a bike ride",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BestMatch(tc.query, catalog, "advice")
			if err != nil {
				t.Fatalf("BestMatch: %v", err)
			}
			if got != tc.want {
				t.Errorf("BestMatch = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBestMatchTieBreak(t *testing.T) {
	catalog := []models.CatalogRow{
		{"mood": "low", "advice": "Walk"},
		{"mood": "low", "advice": "Call a friend"},
		{"mood": "high", "advice": "Celebrate"},
	}
	got, err := BestMatch(map[string]string{"mood": "low"}, catalog, "advice")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if got != "Call a friend" {
		t.Errorf("BestMatch = %q, want %q", got, "Call a friend")
	}
}

func TestBestMatchOrderIndependent(t *testing.T) {
	// The tie-break is the smallest advice string, so reordering the catalog
	// must not change the winner.
	rows := []models.CatalogRow{
		{"mood": "low", "advice": "Walk"},
		{"mood": "low", "advice": "Call a friend"},
		{"mood": "low", "advice": "Stretch"},
		{"mood": "high", "advice": "Celebrate"},
	}
	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	for _, perm := range permutations {
		catalog := make([]models.CatalogRow, 0, len(rows))
		for _, i := range perm {
			catalog = append(catalog, rows[i])
		}
		got, err := BestMatch(map[string]string{"mood": "low"}, catalog, "advice")
		if err != nil {
			t.Fatalf("BestMatch: %v", err)
		}
		if got != "Call a friend" {
			t.Errorf("permutation %v: BestMatch = %q, want %q", perm, got, "Call a friend")
		}
	}
}

func TestBestMatchEmptyQuery(t *testing.T) {
	catalog := []models.CatalogRow{{"mood": "low", "advice": "Walk"}}

	tests := []struct {
		name  string
		query map[string]string
	}{
		{"nil query", nil},
		{"no fields", map[string]string{}},
		{"only blank", map[string]string{"mood": ""}},
		{"only whitespace", map[string]string{"mood": "   ", "energy": "\t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BestMatch(tc.query, catalog, "advice")
			if !errors.Is(err, ErrEmptyQuery) {
				t.Errorf("error = %v, want ErrEmptyQuery", err)
			}
		})
	}
}

func TestBestMatchEmptyCatalog(t *testing.T) {
	_, err := BestMatch(map[string]string{"mood": "low"}, nil, "advice")
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}
