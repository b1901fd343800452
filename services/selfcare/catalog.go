package selfcare

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"serenemind/models"
)

// LoadCatalog reads the reference catalog from a CSV file. The first record
// is the header; one column, named by adviceColumn, holds the free-text
// recommendation and every other column is categorical.
func LoadCatalog(path, adviceColumn string) ([]models.CatalogRow, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f, adviceColumn)
}

// ParseCatalog parses CSV catalog data. Every cell is whitespace-trimmed;
// empty cells are treated as "value absent" and left out of the row map.
// Rows with no advice text are dropped.
func ParseCatalog(r io.Reader, adviceColumn string) ([]models.CatalogRow, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Hand-maintained catalogs have ragged rows; accept them instead of
	// failing the whole load. Short rows leave trailing columns absent and
	// extra cells are ignored.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("catalog CSV has no header row")
	}

	header := make([]string, len(records[0]))
	adviceIdx := -1
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
		if header[i] == adviceColumn {
			adviceIdx = i
		}
	}
	if adviceIdx < 0 {
		return nil, nil, fmt.Errorf("catalog CSV has no %q column", adviceColumn)
	}

	var rows []models.CatalogRow
	for _, record := range records[1:] {
		row := make(models.CatalogRow, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}
			row[header[i]] = value
		}
		if row[adviceColumn] == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, header, nil
}
