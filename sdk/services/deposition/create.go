// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"encoding/json"
	"fmt"
)

// Create starts a new deposition. An empty metadata map is allowed: Zenodo
// accepts `{}` and pre-reserves a DOI for the draft.
func (s *DepositionService) Create(ctx context.Context, metadata map[string]any) (*Deposition, error) {
	payload := map[string]any{}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(endpoint, "", "", nil)
	b, _, err := s.http.Do(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}
	return parseDeposition(b)
}
