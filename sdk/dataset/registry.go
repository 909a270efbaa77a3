// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package dataset keeps a local registry of files bound to a Zenodo
// deposition: which sources make up the dataset, their checksums, the
// filename template they follow and the deposition they upload to. The
// registry persists as a YAML manifest and uploads only what changed.
package dataset

import (
	"errors"
	"fmt"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/template"
)

var (
	// ErrNoDeposition: the registry is not bound to a deposition and
	// creating one was not permitted.
	ErrNoDeposition = errors.New("no deposition bound to dataset")

	// ErrPendingPlaceholders: the registry still holds unexpanded template
	// placeholders; Add/Save/Upload/Summary refuse until Expand resolves
	// them all.
	ErrPendingPlaceholders = errors.New("template placeholders pending expansion")
)

type Registry struct {
	template   string
	files      []*LocalFile
	index      map[string]int
	pending    map[string]bool
	deposition int
	manifest   string
}

// New builds a registry from concrete paths. When a template is given,
// every path must match it; the extracted placeholder values become the
// entry's properties.
func New(paths []string, tpl string) (*Registry, error) {
	r := &Registry{
		template: tpl,
		index:    map[string]int{},
		pending:  map[string]bool{},
	}
	if err := r.Add(paths...); err != nil {
		return nil, err
	}
	return r, nil
}

// FromTemplate builds a registry holding the template itself as its single
// entry; every placeholder is pending until Expand supplies its values.
func FromTemplate(tpl string) (*Registry, error) {
	names := template.Placeholders(tpl)
	if len(names) == 0 {
		return nil, fmt.Errorf("template %q has no placeholders", tpl)
	}
	r := &Registry{
		template: tpl,
		index:    map[string]int{},
		pending:  map[string]bool{},
	}
	for _, n := range names {
		r.pending[n] = true
	}
	r.files = append(r.files, newLocalFile(tpl, nil))
	return r, nil
}

func (r *Registry) Template() string { return r.template }

// Files returns the entries in registration order.
func (r *Registry) Files() []*LocalFile { return r.files }

func (r *Registry) Get(filename string) *LocalFile {
	if i, ok := r.index[filename]; ok {
		return r.files[i]
	}
	return nil
}

// DepositionID is 0 while unbound. Only the id is kept; the deposition
// itself is re-resolved through the service on every use.
func (r *Registry) DepositionID() int { return r.deposition }

func (r *Registry) SetDepositionID(id int) { r.deposition = id }

func (r *Registry) pendingGuard() error {
	if len(r.pending) > 0 {
		return fmt.Errorf("%w: %v", ErrPendingPlaceholders, r.Pending())
	}
	return nil
}

// Pending lists the placeholders still awaiting expansion, in template
// appearance order.
func (r *Registry) Pending() []string {
	var names []string
	for _, n := range template.Placeholders(r.template) {
		if r.pending[n] {
			names = append(names, n)
		}
	}
	return names
}

// Add registers paths, merging by filename: a path whose basename is
// already known replaces that entry's URL and keeps its properties.
func (r *Registry) Add(paths ...string) error {
	if err := r.pendingGuard(); err != nil {
		return err
	}
	for _, p := range paths {
		f := newLocalFile(p, nil)
		if r.template != "" {
			props, err := template.Parse(r.template, f.Filename)
			if err != nil {
				return err
			}
			f.Properties = props
		}
		if i, ok := r.index[f.Filename]; ok {
			existing := r.files[i]
			if existing.URL != p {
				existing.URL = p
				existing.Checksum = ""
				existing.Filesize = 0
				existing.Filedate = ""
			}
			continue
		}
		r.index[f.Filename] = len(r.files)
		r.files = append(r.files, f)
	}
	return nil
}

// Expand resolves one pending placeholder. Every current entry is expanded
// into one entry per value: existing entries vary slowest, the new values
// fastest, so expanding placeholders in appearance order makes the leftmost
// one vary slowest.
func (r *Registry) Expand(name string, values ...string) error {
	if r.template == "" {
		return errors.New("registry has no template")
	}
	if !r.pending[name] {
		if _, known := asSet(template.Placeholders(r.template))[name]; known {
			return fmt.Errorf("placeholder '%v' already expanded", name)
		}
		return fmt.Errorf("unknown placeholder '%v'", name)
	}
	if len(values) == 0 {
		return fmt.Errorf("no values for placeholder '%v'", name)
	}

	expanded := make([]*LocalFile, 0, len(r.files)*len(values))
	for _, f := range r.files {
		urls := template.Expand(f.URL, name, values)
		for i, url := range urls {
			props := map[string]string{}
			for k, v := range f.Properties {
				props[k] = v
			}
			props[name] = values[i]
			expanded = append(expanded, newLocalFile(url, props))
		}
	}

	index := map[string]int{}
	for i, f := range expanded {
		if _, dup := index[f.Filename]; dup {
			return fmt.Errorf("expansion of '%v' produces duplicate filename %v", name, f.Filename)
		}
		index[f.Filename] = i
	}

	r.files = expanded
	r.index = index
	delete(r.pending, name)
	return nil
}

func asSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
