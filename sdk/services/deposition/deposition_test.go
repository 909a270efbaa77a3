// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/services/deposition"
)

// fakeZenodo is a minimal in-memory deposit API for the unit tests.
type fakeZenodo struct {
	srv     *httptest.Server
	puts    map[string]string // bucket filename -> body
	deleted []string
}

func newFakeZenodo(t *testing.T) *fakeZenodo {
	t.Helper()
	f := &fakeZenodo{puts: map[string]string{}}

	mux := http.NewServeMux()

	depositionJSON := func(id int) map[string]any {
		return map[string]any{
			"id":           id,
			"conceptrecid": "100",
			"title":        "test deposition",
			"state":        "unsubmitted",
			"submitted":    false,
			"metadata": map[string]any{
				"prereserve_doi": map[string]any{"doi": fmt.Sprintf("10.5072/zenodo.%d", id)},
			},
			"links": map[string]string{
				"bucket":       f.srv.URL + "/api/files/bkt",
				"latest_draft": f.srv.URL + "/api/deposit/depositions/43",
			},
			"files": []map[string]any{
				{"id": "f-1", "filename": "file1.csv", "filesize": 8, "checksum": "md5:aabbcc"},
			},
		}
	}

	mux.HandleFunc("POST /api/deposit/depositions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(depositionJSON(42))
	})
	mux.HandleFunc("GET /api/deposit/depositions", func(w http.ResponseWriter, r *http.Request) {
		// three entries over two pages, then an empty page
		switch r.URL.Query().Get("page") {
		case "", "1":
			json.NewEncoder(w).Encode([]map[string]any{{"id": 1}, {"id": 2}})
		case "2":
			json.NewEncoder(w).Encode([]map[string]any{{"id": 3}})
		default:
			json.NewEncoder(w).Encode([]map[string]any{})
		}
	})
	mux.HandleFunc("GET /api/deposit/depositions/42", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(depositionJSON(42))
	})
	mux.HandleFunc("GET /api/deposit/depositions/43", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(depositionJSON(43))
	})
	mux.HandleFunc("GET /api/deposit/depositions/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		json.NewEncoder(w).Encode(map[string]any{"message": "Deposition not found", "status": 404})
	})
	mux.HandleFunc("PUT /api/deposit/depositions/42", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Metadata map[string]any `json:"metadata"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		d := depositionJSON(42)
		d["metadata"] = payload.Metadata
		json.NewEncoder(w).Encode(d)
	})
	mux.HandleFunc("POST /api/deposit/depositions/42/actions/publish", func(w http.ResponseWriter, r *http.Request) {
		d := depositionJSON(42)
		d["state"] = "done"
		d["submitted"] = true
		d["doi"] = "10.5072/zenodo.42"
		w.WriteHeader(202)
		json.NewEncoder(w).Encode(d)
	})
	mux.HandleFunc("POST /api/deposit/depositions/42/actions/newversion", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(depositionJSON(42))
	})
	mux.HandleFunc("PUT /api/files/bkt/{name}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		name := r.PathValue("name")
		f.puts[name] = string(body)
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(map[string]any{
			"key": name, "size": len(body), "checksum": "md5:ddeeff",
			"version_id": "v-1",
		})
	})
	mux.HandleFunc("DELETE /api/deposit/depositions/42/files/f-1", func(w http.ResponseWriter, r *http.Request) {
		f.deleted = append(f.deleted, "f-1")
		w.WriteHeader(204)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func newService(t *testing.T, f *fakeZenodo) *deposition.DepositionService {
	t.Helper()
	svc, err := deposition.NewDepositionService(context.Background(), config.Config{
		Core: config.CoreConfig{BaseURL: f.srv.URL, AccessToken: "tok"},
	})
	require.NoError(t, err)
	return svc
}

func TestCreateAndRetrieve(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)
	ctx := context.Background()

	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, d.ID)
	// DOI not registered yet: falls back to the pre-reserved one
	assert.Equal(t, "10.5072/zenodo.42", d.EffectiveDOI())

	d, err = svc.Retrieve(ctx, 42)
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, "file1.csv", d.Files[0].Filename)
	// md5: prefix stripped
	assert.Equal(t, "aabbcc", d.Files[0].Checksum)
}

func TestRetrieveNotFound(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	_, err := svc.Retrieve(context.Background(), 404)
	require.Error(t, err)

	var apiErr *config.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Name)
}

func TestListFollowsPagination(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	all, err := svc.List(context.Background(), deposition.ListRequest{Size: 2})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestPublish(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	d, err := svc.Publish(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, d.Submitted)
	assert.Equal(t, "10.5072/zenodo.42", d.DOI)
}

func TestNewVersionFollowsDraftLink(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	d, err := svc.NewVersion(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 43, d.ID)
}

func TestCreateFileUploadsToBucket(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	local := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(local, []byte("a,b\n1,2\n"), 0o644))

	uploaded, err := svc.CreateFile(context.Background(), 42, local, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", uploaded.Filename)
	assert.Equal(t, int64(8), uploaded.Filesize)
	assert.Equal(t, "ddeeff", uploaded.Checksum)
	assert.Equal(t, "a,b\n1,2\n", f.puts["data.csv"])
}

func TestDeleteFile(t *testing.T) {
	f := newFakeZenodo(t)
	svc := newService(t, f)

	require.NoError(t, svc.DeleteFile(context.Background(), 42, "f-1"))
	assert.Equal(t, []string{"f-1"}, f.deleted)
}
