package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mapleplan/retirement-planner/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.PlanProjection) ([]byte, error)
	FormatBatch(result *domain.BatchResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when writing to disk.
	Extension() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file.
func WriteFormatted(f Formatter, result *domain.PlanProjection) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	return writeTimestamped("retirement_plan", f.Extension(), data)
}

// WriteBatchFormatted runs a formatter over a batch result and writes the
// output to a timestamped file.
func WriteBatchFormatted(f Formatter, result *domain.BatchResult) (string, error) {
	data, err := f.FormatBatch(result)
	if err != nil {
		return "", err
	}
	return writeTimestamped("retirement_batch", f.Extension(), data)
}

func writeTimestamped(prefix, ext string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"csv-summary": "csv",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
