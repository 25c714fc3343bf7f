package output

import (
	json "github.com/goccy/go-json"

	"github.com/mapleplan/retirement-planner/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanProjection) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (j JSONFormatter) FormatBatch(result *domain.BatchResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
