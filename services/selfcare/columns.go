package selfcare

import (
	"sort"

	"serenemind/models"
)

// DeriveColumns builds the selectable options for the question form: for
// every header column except the advice column, the sorted set of distinct
// non-empty values observed across the catalog. Columns appear in header
// order. The derivation is recomputed on every call; caching belongs to the
// caller.
func DeriveColumns(rows []models.CatalogRow, header []string, adviceColumn string) []models.ColumnDescriptor {
	descriptors := make([]models.ColumnDescriptor, 0, len(header))
	for _, name := range header {
		if name == adviceColumn {
			continue
		}

		seen := make(map[string]struct{})
		for _, row := range rows {
			if value, ok := row[name]; ok {
				seen[value] = struct{}{}
			}
		}

		options := make([]string, 0, len(seen))
		for value := range seen {
			options = append(options, value)
		}
		sort.Strings(options)

		descriptors = append(descriptors, models.ColumnDescriptor{Name: name, Options: options})
	}
	return descriptors
}
