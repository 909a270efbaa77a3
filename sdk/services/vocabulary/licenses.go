// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Term is a vocabulary entry; the shape varies per vocabulary so it stays
// an open map.
type Term map[string]interface{}

type TermPage struct {
	Hits  []Term
	Total int
	Links map[string]string
}

// Licenses searches the license vocabulary (e.g. q="cc-by").
func (s *VocabularyService) Licenses(ctx context.Context, q string, page, size int) (*TermPage, error) {
	params := map[string]string{"q": q}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if size > 0 {
		params["size"] = strconv.Itoa(size)
	}

	url := s.http.BuildURL("licenses", "", "", params)
	b, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Hits struct {
			Hits  []Term `json:"hits"`
			Total int    `json:"total"`
		} `json:"hits"`
		Links map[string]string `json:"links"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return &TermPage{Hits: raw.Hits.Hits, Total: raw.Hits.Total, Links: raw.Links}, nil
}

// License retrieves a single license term by id (e.g. "cc-zero").
func (s *VocabularyService) License(ctx context.Context, id string) (Term, error) {
	url := s.http.BuildURL("licenses", id, "", nil)
	b, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	var t Term
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return t, nil
}
