package files

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrDataUnavailable = errors.New("bingo data unavailable")
	ErrMalformedData   = errors.New("bingo data malformed")
)

// Cell is one entry of the data file.
type Cell struct {
	String string `json:"string" yaml:"string"`
}

// Labels reads the cell labels stored at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func Labels(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDataUnavailable, "%s: %v", path, err)
	}

	cells, err := decode(path, content)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedData, "%s: %v", path, err)
	}

	labels := make([]string, 0, len(cells))
	for i, cell := range cells {
		if strings.TrimSpace(cell.String) == "" {
			return nil, errors.Wrapf(ErrMalformedData, "%s: entry %d has no label", path, i)
		}
		labels = append(labels, cell.String)
	}
	return labels, nil
}

func decode(path string, content []byte) ([]Cell, error) {
	var cells []Cell
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cells); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(content, &cells); err != nil {
			return nil, err
		}
	}
	return cells, nil
}
