package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LoadDir reads catalog definition files (*.json) from dir and registers each
// valid one, overriding any built-in catalog for the same role. Invalid files
// are skipped with a warning so one bad definition cannot take the others
// down. A missing directory is not an error.
func LoadDir(dir string, reg *Registry) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read catalog dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read catalog file %s: %w", entry.Name(), err)
		}

		var cat Catalog
		if err := json.Unmarshal(raw, &cat); err != nil {
			zap.L().Warn("skipping catalog file (invalid JSON)",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		if err := reg.Register(&cat); err != nil {
			zap.L().Warn("skipping catalog file (invalid catalog)",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		loaded++
	}

	zap.L().Info("catalog directory loaded",
		zap.String("dir", dir), zap.Int("catalogs", loaded))
	return nil
}
