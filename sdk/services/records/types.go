// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"encoding/json"
	"fmt"
)

type Record struct {
	ID           int                    `json:"id"`
	ConceptRecID string                 `json:"conceptrecid,omitempty"`
	DOI          string                 `json:"doi,omitempty"`
	Title        string                 `json:"title,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Links        map[string]string      `json:"links,omitempty"`
}

// Page is one page of search results in the hits envelope.
type Page struct {
	Hits  []Record
	Total int
	Links map[string]string
}

type SearchRequest struct {
	Query       string
	Sort        string
	Communities string
	Type        string
	Size        int
	Page        int
	AllVersions bool
}

func parsePage(body []byte) (*Page, error) {
	var raw struct {
		Hits struct {
			Hits  []Record `json:"hits"`
			Total int      `json:"total"`
		} `json:"hits"`
		Links map[string]string `json:"links"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return &Page{Hits: raw.Hits.Hits, Total: raw.Hits.Total, Links: raw.Links}, nil
}
