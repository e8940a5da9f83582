package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/telia-oss/hydra-pr-jobsets/jobset"
)

// LoadTemplate reads the inputs every legacy jobset starts from. Files ending
// in .yaml or .yml are read as YAML, anything else as JSON. Unknown fields
// are rejected.
func LoadTemplate(path string) (jobset.Inputs, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	var inputs jobset.Inputs
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		d := yaml.NewDecoder(bytes.NewReader(b))
		d.KnownFields(true)
		if err := d.Decode(&inputs); err != nil {
			return nil, fmt.Errorf("failed to decode template: %w", err)
		}
	default:
		d := json.NewDecoder(bytes.NewReader(b))
		d.DisallowUnknownFields()
		if err := d.Decode(&inputs); err != nil {
			return nil, fmt.Errorf("failed to decode template: %w", err)
		}
	}

	for name, input := range inputs {
		if input.Type == "" {
			return nil, fmt.Errorf("template input %q: type is required", name)
		}
	}
	return inputs.Clone(), nil
}
