// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/services/deposition"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/template"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/utils"
)

// textFields returns pointers to every free-text field that may carry
// placeholders, plus the keyword/reference lists.
func (r *Record) textFields() []*string {
	fields := []*string{
		&r.Title,
		&r.Description,
		&r.Notes,
		&r.AccessConditions,
		&r.Version,
	}
	for i := range r.Keywords {
		fields = append(fields, &r.Keywords[i])
	}
	for i := range r.References {
		fields = append(fields, &r.References[i])
	}
	return fields
}

// Placeholders lists the placeholder names across all text fields, in
// first-appearance order.
func (r *Record) Placeholders() []string {
	var names []string
	seen := map[string]bool{}
	for _, f := range r.textFields() {
		for _, n := range template.Placeholders(*f) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// Render substitutes placeholders in every text field and returns the
// rendered copy. Non-strict rendering leaves unknown placeholders
// verbatim; strict rendering fails, naming every unresolved one.
func (r Record) Render(replacements map[string]string, strict bool) (*Record, error) {
	out := r
	out.Keywords = append([]string(nil), r.Keywords...)
	out.References = append([]string(nil), r.References...)

	if strict {
		var missing []string
		seen := map[string]bool{}
		for _, n := range out.Placeholders() {
			if _, ok := replacements[n]; !ok && !seen[n] {
				seen[n] = true
				missing = append(missing, n)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("unresolved placeholders: %v", strings.Join(missing, ", "))
		}
	}

	for _, f := range out.textFields() {
		*f = template.Replace(*f, replacements)
	}
	return &out, nil
}

// Push renders the record and writes it into the deposition, merged over
// the metadata currently stored there so fields set elsewhere (like the
// pre-reserved DOI) survive.
func (r *Record) Push(ctx context.Context, svc *deposition.DepositionService, depositionID int, replacements map[string]string) (*deposition.Deposition, error) {
	rendered, err := r.Render(replacements, false)
	if err != nil {
		return nil, err
	}
	if err := rendered.Validate(); err != nil {
		return nil, err
	}

	m, err := rendered.ToMap()
	if err != nil {
		return nil, err
	}

	d, err := svc.Retrieve(ctx, depositionID)
	if err != nil {
		return nil, err
	}
	merged := utils.MergeMaps(d.Metadata, m, utils.MergeConfig{"creators": "name", "contributors": "name"})

	return svc.Update(ctx, depositionID, merged)
}
