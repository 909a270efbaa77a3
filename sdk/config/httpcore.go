// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type CoreHTTP interface {
	BuildURL(resource, id, action string, params map[string]string) string
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
	Stream(ctx context.Context, method, url string, body io.Reader, size int64) ([]byte, int, error)
}

type httpCore struct {
	httpClient *http.Client
	coreConfig CoreConfig
}

func NewHTTPCore(httpClient *http.Client, coreConfig CoreConfig) CoreHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpCore{httpClient: httpClient, coreConfig: coreConfig}
}

func (httpCore *httpCore) BuildURL(resource, id, action string, params map[string]string) string {
	base := strings.TrimSuffix(httpCore.coreConfig.BaseURL, "/") + "/api/" + resource
	if id != "" {
		base += "/" + id
	}
	if action != "" {
		base += "/" + action
	}
	if len(params) == 0 {
		return base
	}
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if enc := q.Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return httpCore.send(req)
}

// Stream performs a request with a raw body, used for bucket uploads.
func (httpCore *httpCore) Stream(ctx context.Context, method, url string, body io.Reader, size int64) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if size > 0 {
		req.ContentLength = size
	}
	return httpCore.send(req)
}

func (httpCore *httpCore) send(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	if tok := httpCore.coreConfig.AccessToken; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return b, resp.StatusCode, newAPIError(resp.StatusCode, b)
	}
	return b, resp.StatusCode, rerr
}

// APIError is a non-2xx response from the Zenodo API, surfaced verbatim.
// The SDK never retries on its own.
type APIError struct {
	StatusCode int
	Name       string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status code %d (%s): %s", e.StatusCode, e.Name, e.Detail)
}

// Statuses documented by the Zenodo REST API.
var badStatusCodes = map[int][2]string{
	400: {"Bad Request", "Request failed."},
	401: {"Unauthorized", "Request failed, due to an invalid access token."},
	403: {"Forbidden", "Request failed, due to missing authorization (e.g. deleting an already submitted upload or missing scopes for your access token)."},
	404: {"Not Found", "Request failed, due to the resource not being found."},
	405: {"Method Not Allowed", "Request failed, due to unsupported HTTP method."},
	409: {"Conflict", "Request failed, due to the current state of the resource (e.g. edit a deposition which is not fully integrated)."},
	415: {"Unsupported Media Type", "Request failed, due to missing or invalid request header Content-Type."},
	422: {"Unprocessable Entity", "Request failed, due to invalid request payload."},
	429: {"Too Many Requests", "Request failed, due to rate limiting."},
	500: {"Internal Server Error", "Request failed, due to an internal server error."},
}

func newAPIError(status int, body []byte) *APIError {
	name := "Error"
	detail := fmt.Sprintf("request failed with status %d", status)
	if s, ok := badStatusCodes[status]; ok {
		name = s[0]
		detail = s[1]
	}
	var m struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &m) == nil && m.Message != "" {
		detail = m.Message
		if len(m.Errors) > 0 {
			detail = fmt.Sprintf("%s Field '%s'. %s", m.Message, m.Errors[0].Field, m.Errors[0].Message)
		}
	}
	return &APIError{StatusCode: status, Name: name, Detail: detail}
}
