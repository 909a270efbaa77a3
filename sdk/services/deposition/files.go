// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (s *DepositionService) ListFiles(ctx context.Context, id int) ([]File, error) {
	u := s.http.BuildURL(endpoint, strconv.Itoa(id), "files", nil)
	b, _, err := s.http.Do(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	var files []File
	if err := json.Unmarshal(b, &files); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return files, nil
}

func (s *DepositionService) RetrieveFile(ctx context.Context, id int, fileID string) (*File, error) {
	u := s.http.BuildURL(endpoint, strconv.Itoa(id), "files/"+fileID, nil)
	b, _, err := s.http.Do(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return &f, nil
}

// CreateFile uploads localPath as filename into the deposition's bucket.
// Replaces any existing file with the same name.
func (s *DepositionService) CreateFile(ctx context.Context, id int, localPath, filename string) (*File, error) {
	d, err := s.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}
	bucket := d.Links["bucket"]
	if bucket == "" {
		return nil, errors.New("deposition carries no bucket link")
	}
	return s.PutBucketFile(ctx, bucket, localPath, filename)
}

// PutBucketFile streams localPath to {bucket}/{filename}. The bucket API
// takes the raw content, no multipart.
func (s *DepositionService) PutBucketFile(ctx context.Context, bucket, localPath, filename string) (*File, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %v: %w", localPath, err)
	}

	u := strings.TrimSuffix(bucket, "/") + "/" + url.PathEscape(filename)
	b, status, err := s.http.Stream(ctx, "PUT", u, f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("upload of %v failed (status %d): %w", filename, status, err)
	}

	var out File
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return &out, nil
}

func (s *DepositionService) DeleteFile(ctx context.Context, id int, fileID string) error {
	u := s.http.BuildURL(endpoint, strconv.Itoa(id), "files/"+fileID, nil)
	_, _, err := s.http.Do(ctx, "DELETE", u, nil)
	return err
}

// SortFiles sets the display order of the deposition files to the given
// file ids.
func (s *DepositionService) SortFiles(ctx context.Context, id int, fileIDs []string) ([]File, error) {
	order := make([]map[string]string, 0, len(fileIDs))
	for _, fid := range fileIDs {
		order = append(order, map[string]string{"id": fid})
	}
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	u := s.http.BuildURL(endpoint, strconv.Itoa(id), "files", nil)
	b, _, err := s.http.Do(ctx, "PUT", u, body)
	if err != nil {
		return nil, err
	}
	var files []File
	if err := json.Unmarshal(b, &files); err != nil {
		return nil, fmt.Errorf("json parsing failed: %w", err)
	}
	return files, nil
}

// DownloadFile fetches the file content into destDir, named after the
// remote filename.
func (s *DepositionService) DownloadFile(ctx context.Context, f File, destDir string) error {
	link := f.Links["download"]
	if link == "" {
		link = f.Links["self"]
	}
	if link == "" {
		return fmt.Errorf("file %v carries no download link", f.Filename)
	}

	b, status, err := s.http.Do(ctx, "GET", link, nil)
	if err != nil {
		return fmt.Errorf("download of %v failed (status %d): %w", f.Filename, status, err)
	}
	dest := filepath.Join(destDir, f.Filename)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, b, 0o644)
}
