// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ErrManifest: the manifest file exists but cannot be interpreted.
var ErrManifest = errors.New("malformed manifest")

type manifestFile struct {
	URL        string            `json:"url"`
	Checksum   string            `json:"checksum,omitempty"`
	Size       int64             `json:"size,omitempty"`
	Date       string            `json:"date,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

type manifest struct {
	Deposition int            `json:"deposition,omitempty"`
	Template   string         `json:"template,omitempty"`
	Files      []manifestFile `json:"files"`
}

// Save writes the registry as a YAML manifest. Local files get their stat
// refreshed first (which may invalidate a stale checksum); no network I/O
// happens here.
func (r *Registry) Save(path string) error {
	if err := r.pendingGuard(); err != nil {
		return err
	}

	m := manifest{
		Deposition: r.deposition,
		Template:   r.template,
		Files:      make([]manifestFile, 0, len(r.files)),
	}
	for _, f := range r.files {
		if f.IsLocal() {
			if err := f.refreshStat(); err != nil {
				return err
			}
		}
		m.Files = append(m.Files, manifestFile{
			URL:        f.URL,
			Checksum:   f.Checksum,
			Size:       f.Filesize,
			Date:       f.Filedate,
			Properties: f.Properties,
		})
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	r.manifest = path
	return nil
}

// Load rebuilds a registry from a manifest written by Save.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	r := &Registry{
		template:   m.Template,
		deposition: m.Deposition,
		index:      map[string]int{},
		pending:    map[string]bool{},
		manifest:   path,
	}
	for _, mf := range m.Files {
		if mf.URL == "" {
			return nil, fmt.Errorf("%w: file entry without url", ErrManifest)
		}
		f := newLocalFile(mf.URL, mf.Properties)
		f.Checksum = mf.Checksum
		f.Filesize = mf.Size
		f.Filedate = mf.Date
		if _, dup := r.index[f.Filename]; dup {
			return nil, fmt.Errorf("%w: duplicate filename %v", ErrManifest, f.Filename)
		}
		r.index[f.Filename] = len(r.files)
		r.files = append(r.files, f)
	}
	return r, nil
}

// ManifestPath is where the registry was last saved or loaded from; empty
// when never persisted.
func (r *Registry) ManifestPath() string { return r.manifest }
