// Package store loads the keyword table from its YAML rule file.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/csv-summary/internal/rules"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// rulesFile mirrors the on-disk format:
//
//	categories:
//	  - name: Groceries
//	    keywords: [coop, migros]
//
// yaml.v3 preserves sequence order, which the categorizer's tie-break rule
// depends on.
type rulesFile struct {
	Categories []rules.Category `yaml:"categories"`
}

// RuleStore resolves and reads the keyword rule file.
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a store for the given rule file. An empty path means
// the default "categories.yaml" searched in the standard locations.
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{RulesFile: rulesFile}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                            // Current directory
		filepath.Join("config", filename),   // ./config/ directory
		filepath.Join("database", filename), // ./database/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Last resort: the user's config directory.
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "csv-summary", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTable loads the keyword table from the YAML rule file. A missing file
// is not an error: the built-in default table is returned with a warning, so
// a fresh checkout still categorizes sensibly.
func (s *RuleStore) LoadTable() (rules.Table, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Rule file not found: %s, using built-in categories", filename)
			return rules.Default(), nil
		}
		return rules.Table{}, fmt.Errorf("error resolving rule file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return rules.Table{}, fmt.Errorf("error reading rule file: %w", err)
	}

	table, err := ParseTable(data)
	if err != nil {
		return rules.Table{}, fmt.Errorf("error parsing rule file %s: %w", filePath, err)
	}

	log.WithFields(logrus.Fields{
		"file":       filePath,
		"categories": table.Len(),
	}).Debug("Loaded keyword table")
	return table, nil
}

// ParseTable parses YAML rule data into a keyword table. Both the wrapped
// format ("categories: [...]") and a bare category list are accepted.
func ParseTable(data []byte) (rules.Table, error) {
	var wrapped rulesFile
	wrappedErr := yaml.Unmarshal(data, &wrapped)
	if wrappedErr == nil && len(wrapped.Categories) > 0 {
		return rules.New(wrapped.Categories), nil
	}

	var bare []rules.Category
	if err := yaml.Unmarshal(data, &bare); err == nil {
		return rules.New(bare), nil
	}

	if wrappedErr != nil {
		return rules.Table{}, wrappedErr
	}
	// A well-formed file with no categories yields an empty table.
	return rules.New(wrapped.Categories), nil
}
