// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

func (s *DepositionService) Update(ctx context.Context, id int, metadata map[string]any) (*Deposition, error) {
	if len(metadata) == 0 {
		return nil, errors.New("metadata is required")
	}
	body, err := json.Marshal(map[string]any{"metadata": metadata})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(endpoint, strconv.Itoa(id), "", nil)
	b, _, err := s.http.Do(ctx, "PUT", url, body)
	if err != nil {
		return nil, err
	}
	return parseDeposition(b)
}
