// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// action performs POST {base}/deposit/depositions/{id}/actions/{name}
func (s *DepositionService) action(ctx context.Context, id int, name string) (*Deposition, error) {
	url := s.http.BuildURL(endpoint, strconv.Itoa(id), "actions/"+name, nil)
	b, status, err := s.http.Do(ctx, "POST", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s failed (status %d): %w", name, status, err)
	}
	return parseDeposition(b)
}

// Publish makes the deposition public. Publishing is permanent: published
// depositions can no longer be deleted.
func (s *DepositionService) Publish(ctx context.Context, id int) (*Deposition, error) {
	return s.action(ctx, id, "publish")
}

// Edit unlocks a published deposition for metadata editing.
func (s *DepositionService) Edit(ctx context.Context, id int) (*Deposition, error) {
	return s.action(ctx, id, "edit")
}

// Discard drops pending metadata changes of a deposition in edit mode.
func (s *DepositionService) Discard(ctx context.Context, id int) (*Deposition, error) {
	return s.action(ctx, id, "discard")
}

// NewVersion creates a new version of a published deposition and returns
// the new draft, resolved through the latest_draft link of the response.
func (s *DepositionService) NewVersion(ctx context.Context, id int) (*Deposition, error) {
	d, err := s.action(ctx, id, "newversion")
	if err != nil {
		return nil, err
	}

	draftURL := d.Links["latest_draft"]
	if draftURL == "" {
		return nil, errors.New("newversion response carries no latest_draft link")
	}
	b, _, err := s.http.Do(ctx, "GET", draftURL, nil)
	if err != nil {
		return nil, err
	}
	return parseDeposition(b)
}
