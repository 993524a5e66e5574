// Package results persists conformance run reports as JSON files so runs
// can be compared and archived outside the process lifetime.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// DefaultDir is where reports land when no path is configured.
const DefaultDir = "results"

// Filename derives the report filename from the run's start time and id.
func Filename(report *conformance.RunReport) string {
	short := report.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("run-%s-%s.json",
		report.StartedAt.Format(constants.TimeFormatFilename), short)
}

// Save writes a run report under dir, creating the directory if needed,
// and returns the written path.
func Save(report *conformance.RunReport, dir string) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("mkdir", dir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding run report: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, Filename(report))
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// Load reads a run report back from disk.
func Load(path string) (*conformance.RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var report conformance.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.NewParseError("json", path, "malformed run report", err)
	}
	return &report, nil
}

// Latest returns the most recently started report in dir, or an error when
// the directory holds none.
func Latest(dir string) (*conformance.RunReport, error) {
	if dir == "" {
		dir = DefaultDir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	var latest *conformance.RunReport
	var latestAt time.Time
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		report, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if latest == nil || report.StartedAt.Time.After(latestAt) {
			latest = report
			latestAt = report.StartedAt.Time
		}
	}
	if latest == nil {
		return nil, errors.NewNotFoundError("run report", dir)
	}
	return latest, nil
}
