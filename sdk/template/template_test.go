// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/template"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"index", "year"}, template.Placeholders("file{index}_{year}_{index}.csv"))
	assert.Empty(t, template.Placeholders("plain.csv"))
	// malformed braces are not placeholders
	assert.Empty(t, template.Placeholders("file{0index}.csv"))
}

func TestParse(t *testing.T) {
	values, err := template.Parse("file{index}.csv", "file12.csv")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"index": "12"}, values)

	values, err = template.Parse("{sample}_run{run}.dat", "mouse_b6_run3.dat")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sample": "mouse_b6", "run": "3"}, values)
}

func TestParseMismatch(t *testing.T) {
	_, err := template.Parse("file{index}.csv", "other12.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, template.ErrMismatch))

	// literal dot must not act as a wildcard
	_, err = template.Parse("file{index}.csv", "file12Xcsv")
	assert.True(t, errors.Is(err, template.ErrMismatch))
}

func TestParseDuplicatePlaceholder(t *testing.T) {
	_, err := template.Parse("{a}_{a}.csv", "x_y.csv")
	require.Error(t, err)
	assert.False(t, errors.Is(err, template.ErrMismatch))
}

func TestExpandOrder(t *testing.T) {
	got := template.Expand("file{index}.csv", "index", []string{"1", "2", "3"})
	assert.Equal(t, []string{"file1.csv", "file2.csv", "file3.csv"}, got)
}

func TestExpandLeavesOtherPlaceholders(t *testing.T) {
	got := template.Expand("{a}_{b}.csv", "a", []string{"x"})
	assert.Equal(t, []string{"x_{b}.csv"}, got)
}

func TestRoundTrip(t *testing.T) {
	pattern := "run{run}_s{sample}.dat"
	for _, run := range []string{"1", "2"} {
		for _, sample := range template.Expand(pattern, "run", []string{run}) {
			names := template.Expand(sample, "sample", []string{"a", "b"})
			for i, name := range names {
				values, err := template.Parse(pattern, name)
				require.NoError(t, err)
				assert.Equal(t, run, values["run"])
				assert.Equal(t, []string{"a", "b"}[i], values["sample"])
			}
		}
	}
}

func TestReplace(t *testing.T) {
	s := "Records from {index_min} to {index_max}, status {unknown}."
	got := template.Replace(s, map[string]string{"index_min": "1", "index_max": "3"})
	assert.Equal(t, "Records from 1 to 3, status {unknown}.", got)
}
