// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"encoding/json"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/utils"
)

type Deposition struct {
	ID           int                    `json:"id"`
	ConceptRecID string                 `json:"conceptrecid,omitempty"`
	DOI          string                 `json:"doi,omitempty"`
	Title        string                 `json:"title,omitempty"`
	State        string                 `json:"state,omitempty"`
	Submitted    bool                   `json:"submitted,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Links        map[string]string      `json:"links,omitempty"`
	Files        []File                 `json:"files,omitempty"`
}

// EffectiveDOI returns the registered DOI, falling back to the
// pre-reserved one for unpublished depositions.
func (d *Deposition) EffectiveDOI() string {
	if d.DOI != "" {
		return d.DOI
	}
	if pre, ok := d.Metadata["prereserve_doi"].(map[string]interface{}); ok {
		return utils.GetStringValue(pre, "doi")
	}
	return ""
}

type File struct {
	ID       string
	Filename string
	Filesize int64
	Checksum string
	Links    map[string]string
}

// The deposit files API and the bucket API name fields differently
// (filename/filesize/checksum vs key/size/checksum with an "md5:" prefix);
// both decode into the same struct, checksum normalized to bare md5 hex.
func (f *File) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID        string            `json:"id"`
		VersionID string            `json:"version_id"`
		Filename  string            `json:"filename"`
		Key       string            `json:"key"`
		Filesize  *int64            `json:"filesize"`
		Size      *int64            `json:"size"`
		Checksum  string            `json:"checksum"`
		Links     map[string]string `json:"links"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.ID = raw.ID
	if f.ID == "" {
		f.ID = raw.VersionID
	}
	f.Filename = raw.Filename
	if f.Filename == "" {
		f.Filename = raw.Key
	}
	switch {
	case raw.Filesize != nil:
		f.Filesize = *raw.Filesize
	case raw.Size != nil:
		f.Filesize = *raw.Size
	}
	f.Checksum = utils.NormalizeChecksum(raw.Checksum)
	f.Links = raw.Links
	return nil
}

func (f File) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string            `json:"id,omitempty"`
		Filename string            `json:"filename,omitempty"`
		Filesize int64             `json:"filesize,omitempty"`
		Checksum string            `json:"checksum,omitempty"`
		Links    map[string]string `json:"links,omitempty"`
	}{f.ID, f.Filename, f.Filesize, f.Checksum, f.Links})
}

type ListRequest struct {
	// Query is an Elasticsearch-style search string (optional)
	Query string
	// Status filters on "draft" or "published" (optional)
	Status string
	// Sort is one of bestmatch, -bestmatch, mostrecent, -mostrecent
	Sort string
	// Size is the page size requested from the server; 0 keeps the server
	// default. All pages are fetched regardless.
	Size        int
	AllVersions bool
}

func parseDeposition(body []byte) (*Deposition, error) {
	var d Deposition
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
