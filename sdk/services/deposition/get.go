// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"strconv"
)

func (s *DepositionService) Retrieve(ctx context.Context, id int) (*Deposition, error) {
	url := s.http.BuildURL(endpoint, strconv.Itoa(id), "", nil)
	b, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	return parseDeposition(b)
}
