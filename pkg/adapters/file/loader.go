// Package file loads automaton definitions from YAML or JSON documents.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a definition file. ".json" files are parsed as JSON, anything else as YAML.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var def Definition
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return &def, nil
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return def, nil
}

// Parse decodes a YAML document. Since YAML is a superset of JSON, JSON input works too.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Decode converts a generic map (e.g. frontmatter or an API payload) into a Definition.
// Unknown keys are an error.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}
