package domain

import "time"

// DatasetRecord is a named dataset as stored by the repository
type DatasetRecord struct {
	Name      string    `json:"name"`
	Revision  int64     `json:"revision"`
	Dataset   *Dataset  `json:"dataset"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DatasetSummary describes a stored dataset without its contents
type DatasetSummary struct {
	Name      string    `json:"name"`
	Revision  int64     `json:"revision"`
	Materials int       `json:"materials"`
	Recipes   int       `json:"recipes"`
	UpdatedAt time.Time `json:"updated_at"`
}
