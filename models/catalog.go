package models

// CatalogRow is one historical reference record used by the self-care
// recommender. Keys are column names; values are categorical strings. The
// distinguished advice column holds the free-text recommendation. Cells that
// were empty in the source table are simply absent from the map.
type CatalogRow map[string]string

// ColumnDescriptor lists the distinct values observed for one categorical
// column across the loaded catalog. Used to render the question form.
type ColumnDescriptor struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}
