// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package metadata models the deposit metadata of a Zenodo record as an
// explicit struct: the recognized fields are enumerated here rather than
// carried in an open map, so typos surface at compile time and validation
// stays in one place.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

type Record struct {
	UploadType      string `json:"upload_type,omitempty"`
	PublicationType string `json:"publication_type,omitempty"`
	ImageType       string `json:"image_type,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`

	Creators     []Creator     `json:"creators,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`

	AccessRight      string `json:"access_right,omitempty"`
	License          string `json:"license,omitempty"`
	EmbargoDate      string `json:"embargo_date,omitempty"`
	AccessConditions string `json:"access_conditions,omitempty"`

	Keywords   []string `json:"keywords,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	References []string `json:"references,omitempty"`

	Communities        []Community         `json:"communities,omitempty"`
	Grants             []Grant             `json:"grants,omitempty"`
	Subjects           []Subject           `json:"subjects,omitempty"`
	RelatedIdentifiers []RelatedIdentifier `json:"related_identifiers,omitempty"`

	Version  string `json:"version,omitempty"`
	Language string `json:"language,omitempty"`
	Method   string `json:"method,omitempty"`

	PrereserveDOI bool `json:"prereserve_doi,omitempty"`
}

// Validate checks what Zenodo requires before a publish can succeed:
// mandatory fields, enumerated values, ISO-8601 dates and the coherence
// rules between access_right and license/embargo/conditions.
func (r *Record) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(r.Creators) == 0 {
		return fmt.Errorf("at least one creator is required")
	}
	if !uploadTypes[r.UploadType] {
		return fmt.Errorf("invalid upload_type '%v'", r.UploadType)
	}
	if r.UploadType == "publication" && r.PublicationType == "" {
		return fmt.Errorf("publication_type is required for upload_type publication")
	}
	if r.UploadType == "image" && r.ImageType == "" {
		return fmt.Errorf("image_type is required for upload_type image")
	}

	if r.AccessRight != "" && !accessRights[r.AccessRight] {
		return fmt.Errorf("invalid access_right '%v'", r.AccessRight)
	}
	switch r.AccessRight {
	case "open", "embargoed":
		if r.License == "" {
			return fmt.Errorf("license is required for access_right %v", r.AccessRight)
		}
	case "restricted":
		if r.AccessConditions == "" {
			return fmt.Errorf("access_conditions is required for access_right restricted")
		}
	}
	if r.AccessRight == "embargoed" && r.EmbargoDate == "" {
		return fmt.Errorf("embargo_date is required for access_right embargoed")
	}

	for _, d := range []struct{ name, value string }{
		{"publication_date", r.PublicationDate},
		{"embargo_date", r.EmbargoDate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return fmt.Errorf("%v '%v' is not an ISO-8601 date", d.name, d.value)
		}
	}
	return nil
}

// ToMap converts the record to the map shape the deposit API takes.
func (r *Record) ToMap() (map[string]interface{}, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// FromFile reads a metadata record from a YAML (or JSON) file.
func FromFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file: %w", err)
	}
	return &r, nil
}

// ToFile writes the record as YAML.
func (r *Record) ToFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
