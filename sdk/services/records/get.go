// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"context"
	"encoding/json"
	"fmt"
)

func (s *RecordsService) Get(ctx context.Context, id string) (*Record, error) {
	url := s.http.BuildURL(endpoint, id, "", nil)
	b, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return &r, nil
}
