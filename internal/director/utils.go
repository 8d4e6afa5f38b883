package director

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScenarioDir is where scenarios are looked up when no input is given
var DefaultScenarioDir = filepath.Join("internal", "scenarios")

// GenerateScenarioPath creates a timestamped scenario filename in dir
func GenerateScenarioPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("scenario_%s.yaml", timestamp))
}

// WriteExampleScenario writes ExampleScenario to a new timestamped file in
// dir, creating dir if needed, and returns its path
func WriteExampleScenario(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scenarios directory: %w", err)
	}
	path := GenerateScenarioPath(dir)
	if err := WriteScenario(ExampleScenario(), path); err != nil {
		return "", err
	}
	return path, nil
}

// IsScenarioFile reports whether path has a YAML extension
func IsScenarioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// FindLatestScenario finds the most recent scenario file in dir
func FindLatestScenario(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scenarios directory: %w", err)
	}

	var latestFile string
	var latestTime time.Time

	for _, entry := range entries {
		if entry.IsDir() || !IsScenarioFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// The file may be gone or a dangling link by now
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = path
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no scenario files found in %s", dir)
	}

	return latestFile, nil
}
