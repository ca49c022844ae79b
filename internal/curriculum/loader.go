package curriculum

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/curriculum.yaml
var embeddedCanon []byte

// canonFile is the top-level shape of a curriculum data file.
type canonFile struct {
	Topics []Topic `yaml:"topics"`
}

// LoadEmbedded builds a registry from the canon compiled into the
// binary. This is the default curriculum source.
func LoadEmbedded() (*Registry, error) {
	var f canonFile
	if err := yaml.Unmarshal(embeddedCanon, &f); err != nil {
		return nil, fmt.Errorf("parse embedded curriculum: %w", err)
	}
	return NewRegistry(f.Topics)
}

// LoadDir builds a registry from all YAML files under dir, letting a
// deployment override the embedded canon. Files that fail to parse
// are skipped with a warning; an invalid topic set still fails.
func LoadDir(dir string) (*Registry, error) {
	var topics []Topic

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var f canonFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			slog.Warn("skipping invalid curriculum file", "path", path, "error", err)
			return nil
		}
		topics = append(topics, f.Topics...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk curriculum dir: %w", err)
	}

	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics found under %s", dir)
	}

	reg, err := NewRegistry(topics)
	if err != nil {
		return nil, err
	}
	slog.Info("curriculum loaded", "dir", dir, "topics", len(topics))
	return reg, nil
}

// Load resolves the curriculum source: the WORKSMITH_CURRICULUM_DIR
// override when set, the embedded canon otherwise.
func Load() (*Registry, error) {
	if dir := os.Getenv("WORKSMITH_CURRICULUM_DIR"); dir != "" {
		return LoadDir(dir)
	}
	return LoadEmbedded()
}
