// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"strconv"
)

// Delete removes an unpublished deposition. Published ones cannot be
// deleted; the API answers 403.
func (s *DepositionService) Delete(ctx context.Context, id int) error {
	url := s.http.BuildURL(endpoint, strconv.Itoa(id), "", nil)
	_, _, err := s.http.Do(ctx, "DELETE", url, nil)
	return err
}
