// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"context"
	"errors"
	"strconv"
)

// ErrNoNextPage is returned by NextPage when the current page is the last.
var ErrNoNextPage = errors.New("no next page")

func (s *RecordsService) Search(ctx context.Context, req SearchRequest) (*Page, error) {
	params := map[string]string{
		"q":           req.Query,
		"sort":        req.Sort,
		"communities": req.Communities,
		"type":        req.Type,
	}
	if req.Size > 0 {
		params["size"] = strconv.Itoa(req.Size)
	}
	if req.Page > 0 {
		params["page"] = strconv.Itoa(req.Page)
	}
	if req.AllVersions {
		params["all_versions"] = "true"
	}

	url := s.http.BuildURL(endpoint, "", "", params)
	b, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	return parsePage(b)
}

// NextPage follows the next link of a previously fetched page.
func (s *RecordsService) NextPage(ctx context.Context, page *Page) (*Page, error) {
	next := page.Links["next"]
	if next == "" {
		return nil, ErrNoNextPage
	}
	b, _, err := s.http.Do(ctx, "GET", next, nil)
	if err != nil {
		return nil, err
	}
	return parsePage(b)
}
