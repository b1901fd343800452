package selfcare

import (
	"strings"

	"serenemind/models"
)

// BestMatch selects the catalog row whose categorical fields agree with the
// query on the largest fraction of answered fields and returns its advice
// text.
//
// Blank (empty or whitespace-only) query values are excluded from scoring.
// Matching is exact string comparison; no case folding or normalization. A
// queried field absent from a row simply scores zero for that row.
//
// All rows attaining the maximum score are collected and the tie is resolved
// by the lexicographically smallest advice string, so the result does not
// depend on catalog row order.
func BestMatch(query map[string]string, catalog []models.CatalogRow, adviceColumn string) (string, error) {
	fields := make(map[string]string, len(query))
	for name, value := range query {
		if strings.TrimSpace(value) == "" {
			continue
		}
		fields[name] = value
	}
	if len(fields) == 0 {
		return "", ErrEmptyQuery
	}
	if len(catalog) == 0 {
		return "", ErrEmptyCatalog
	}

	bestScore := -1.0
	var bestAdvice []string

	for _, row := range catalog {
		matched := 0
		for name, value := range fields {
			if row[name] == value {
				matched++
			}
		}
		score := float64(matched) / float64(len(fields))

		switch {
		case score > bestScore:
			bestScore = score
			bestAdvice = bestAdvice[:0]
			bestAdvice = append(bestAdvice, row[adviceColumn])
		case score == bestScore:
			bestAdvice = append(bestAdvice, row[adviceColumn])
		}
	}

	winner := bestAdvice[0]
	for _, advice := range bestAdvice[1:] {
		if advice < winner {
			winner = advice
		}
	}
	return winner, nil
}
