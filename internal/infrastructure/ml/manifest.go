package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// LoadManifest reads and validates the model metadata manifest.
func LoadManifest(path string) (*model.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model manifest: %w", err)
	}

	var m model.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
