// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// List fetches all depositions matching the request, following pagination
// transparently. The deposit API has no page envelope: pages are fetched by
// incrementing `page` until one comes back empty.
func (s *DepositionService) List(ctx context.Context, req ListRequest) ([]Deposition, error) {
	params := map[string]string{
		"q":      req.Query,
		"status": req.Status,
		"sort":   req.Sort,
	}
	if req.Size > 0 {
		params["size"] = strconv.Itoa(req.Size)
	}
	if req.AllVersions {
		params["all_versions"] = "true"
	}

	var all []Deposition
	for page := 1; ; page++ {
		params["page"] = strconv.Itoa(page)
		url := s.http.BuildURL(endpoint, "", "", params)
		body, _, err := s.http.Do(ctx, "GET", url, nil)
		if err != nil {
			return nil, err
		}

		var pageList []Deposition
		if err := json.Unmarshal(body, &pageList); err != nil {
			return nil, fmt.Errorf("json parsing failed: %w", err)
		}
		if len(pageList) == 0 {
			break
		}
		all = append(all, pageList...)
	}
	return all, nil
}
