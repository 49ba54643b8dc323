// Copyright (C) 2026 The rust-game-of-life Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// AssetEntry describes one bundled .cells pattern, decoded from
// assets/manifest.yaml the same way db.Definition decodes a table's
// definition.yaml: a YAML document read through JSON struct tags via
// sigs.k8s.io/yaml.
type AssetEntry struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description,omitempty"`
}

// Manifest is the bundled asset directory's table of contents.
type Manifest struct {
	Patterns []AssetEntry `json:"patterns"`
}

// LoadManifest reads and decodes manifest.yaml from dir.
func LoadManifest(dir string) (*Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("seed: reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("seed: decoding manifest: %w", err)
	}
	return &m, nil
}

// Find returns the asset entry with the given base name.
func (m *Manifest) Find(name string) (AssetEntry, error) {
	for _, e := range m.Patterns {
		if e.Name == name {
			return e, nil
		}
	}
	return AssetEntry{}, fmt.Errorf("seed: no bundled pattern named %q", name)
}

// LoadNamed resolves name against the manifest in dir and parses the
// corresponding .cells file.
func LoadNamed(dir, name string) (*Pattern, error) {
	m, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}
	entry, err := m.Find(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, entry.File))
	if err != nil {
		return nil, fmt.Errorf("seed: opening pattern %q: %w", name, err)
	}
	defer f.Close()
	return Load(f)
}
