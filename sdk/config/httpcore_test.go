// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
)

func TestBuildURL(t *testing.T) {
	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: "https://sandbox.zenodo.org/"})

	assert.Equal(t,
		"https://sandbox.zenodo.org/api/deposit/depositions",
		core.BuildURL("deposit/depositions", "", "", nil))

	assert.Equal(t,
		"https://sandbox.zenodo.org/api/deposit/depositions/42/actions/publish",
		core.BuildURL("deposit/depositions", "42", "actions/publish", nil))

	// params sorted, empty values dropped
	assert.Equal(t,
		"https://sandbox.zenodo.org/api/records?page=2&q=physics",
		core.BuildURL("records", "", "", map[string]string{"q": "physics", "page": "2", "sort": ""}))

	// values are query-escaped
	assert.Equal(t,
		"https://sandbox.zenodo.org/api/records?q=climate+data%26more",
		core.BuildURL("records", "", "", map[string]string{"q": "climate data&more"}))
}

func TestDoSetsAuthHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL, AccessToken: "tok"})
	_, status, err := core.Do(context.Background(), "GET", srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"message":"Validation error.","errors":[{"field":"metadata.title","message":"Missing data."}]}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL})
	_, status, err := core.Do(context.Background(), "POST", srv.URL, []byte(`{}`))
	require.Error(t, err)
	assert.Equal(t, 400, status)

	var apiErr *config.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Bad Request", apiErr.Name)
	assert.Contains(t, apiErr.Detail, "Validation error.")
	assert.Contains(t, apiErr.Detail, "metadata.title")
}

func TestAPIErrorFallbackDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL})
	_, _, err := core.Do(context.Background(), "GET", srv.URL, nil)

	var apiErr *config.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Too Many Requests", apiErr.Name)
	assert.Contains(t, apiErr.Error(), "status code 429")
}

func TestStream(t *testing.T) {
	var gotBody string
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(201)
		w.Write([]byte(`{"key":"data.csv"}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL})
	_, status, err := core.Stream(context.Background(), "PUT", srv.URL+"/bucket/data.csv",
		strings.NewReader("a,b\n1,2\n"), 8)
	require.NoError(t, err)
	assert.Equal(t, 201, status)
	assert.Equal(t, "a,b\n1,2\n", gotBody)
	assert.Equal(t, "application/octet-stream", gotType)
}
