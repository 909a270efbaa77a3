// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"sort"
	"strconv"
)

// Summary aggregates extracted properties into <name>_min / <name>_max
// pairs, e.g. {"index_min": "1", "index_max": "3"}. With no arguments all
// properties present in the registry are summarized. Values are compared
// numerically when every value parses as a number, lexicographically
// otherwise; results keep the original string form.
func (r *Registry) Summary(properties ...string) (map[string]string, error) {
	if err := r.pendingGuard(); err != nil {
		return nil, err
	}

	if len(properties) == 0 {
		seen := map[string]bool{}
		for _, f := range r.files {
			for p := range f.Properties {
				seen[p] = true
			}
		}
		for p := range seen {
			properties = append(properties, p)
		}
		sort.Strings(properties)
	}

	out := map[string]string{}
	for _, p := range properties {
		var values []string
		for _, f := range r.files {
			if v, ok := f.Properties[p]; ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		min, max := minMax(values)
		out[p+"_min"] = min
		out[p+"_max"] = max
	}
	return out, nil
}

func minMax(values []string) (string, string) {
	numeric := true
	nums := make([]float64, len(values))
	for i, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = n
	}

	minIdx, maxIdx := 0, 0
	for i := 1; i < len(values); i++ {
		if numeric {
			if nums[i] < nums[minIdx] {
				minIdx = i
			}
			if nums[i] > nums[maxIdx] {
				maxIdx = i
			}
		} else {
			if values[i] < values[minIdx] {
				minIdx = i
			}
			if values[i] > values[maxIdx] {
				maxIdx = i
			}
		}
	}
	return values[minIdx], values[maxIdx]
}
