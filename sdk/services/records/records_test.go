// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package records_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/services/records"
)

func newFakeRecords(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("GET /api/records", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(map[string]any{
				"hits": map[string]any{
					"hits":  []map[string]any{{"id": 3, "title": "rec three"}},
					"total": 3,
				},
				"links": map[string]string{},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"hits": map[string]any{
				"hits": []map[string]any{
					{"id": 1, "title": "rec one", "doi": "10.5281/zenodo.1"},
					{"id": 2, "title": "rec two"},
				},
				"total": 3,
			},
			"links": map[string]string{"next": srv.URL + "/api/records?page=2"},
		})
	})
	mux.HandleFunc("GET /api/records/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "doi": "10.5281/zenodo.1", "title": "rec one",
			"metadata": map[string]any{"resource_type": map[string]any{"type": "dataset"}},
		})
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newRecordsService(t *testing.T, srv *httptest.Server) *records.RecordsService {
	t.Helper()
	svc, err := records.NewRecordsService(context.Background(), config.Config{
		Core: config.CoreConfig{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return svc
}

func TestSearchAndNextPage(t *testing.T) {
	srv := newFakeRecords(t)
	svc := newRecordsService(t, srv)
	ctx := context.Background()

	page, err := svc.Search(ctx, records.SearchRequest{Query: "rec", Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Hits, 2)
	assert.Equal(t, "10.5281/zenodo.1", page.Hits[0].DOI)

	next, err := svc.NextPage(ctx, page)
	require.NoError(t, err)
	require.Len(t, next.Hits, 1)
	assert.Equal(t, 3, next.Hits[0].ID)

	_, err = svc.NextPage(ctx, next)
	assert.True(t, errors.Is(err, records.ErrNoNextPage))
}

func TestGet(t *testing.T) {
	srv := newFakeRecords(t)
	svc := newRecordsService(t, srv)

	rec, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "rec one", rec.Title)
}
