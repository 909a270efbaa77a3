// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/utils"
)

// LocalFile is one registry entry: a source URL (plain path, http(s) or
// s3), the filename it will take in the deposition, and whatever metadata
// has been established so far. A missing checksum means "not computed yet".
type LocalFile struct {
	URL        string
	Filename   string
	Checksum   string
	Filesize   int64
	Filedate   string
	Properties map[string]string
}

func newLocalFile(url string, props map[string]string) *LocalFile {
	if props == nil {
		props = map[string]string{}
	}
	return &LocalFile{
		URL:        url,
		Filename:   filenameOf(url),
		Properties: props,
	}
}

// filenameOf is the basename of the URL path; slash-separated also for
// plain local paths, which the registry stores slash-normalized.
func filenameOf(url string) string {
	s := strings.TrimSuffix(url, "/")
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "/"); j >= 0 {
			s = s[j:]
		}
	}
	return path.Base(strings.ReplaceAll(s, "\\", "/"))
}

func (f *LocalFile) IsRemote() bool {
	switch {
	case strings.HasPrefix(f.URL, "http://"),
		strings.HasPrefix(f.URL, "https://"),
		strings.HasPrefix(f.URL, "s3://"):
		return true
	}
	return false
}

func (f *LocalFile) IsLocal() bool {
	if f.IsRemote() {
		return false
	}
	_, err := os.Stat(f.URL)
	return err == nil
}

// refreshStat re-reads size and mtime of a local file. A change in either
// invalidates the stored checksum.
func (f *LocalFile) refreshStat() error {
	if f.IsRemote() {
		return nil
	}
	info, err := os.Stat(f.URL)
	if err != nil {
		return fmt.Errorf("failed to stat %v: %w", f.URL, err)
	}
	date := info.ModTime().UTC().Format(time.RFC3339)
	if f.Filesize != info.Size() || (f.Filedate != "" && f.Filedate != date) {
		f.Checksum = ""
	}
	f.Filesize = info.Size()
	f.Filedate = date
	return nil
}

// ensureChecksum computes the md5 of localPath (the materialized copy for
// remote sources) unless one is already stored.
func (f *LocalFile) ensureChecksum(localPath string) error {
	if f.Checksum != "" {
		return nil
	}
	sum, err := utils.FileChecksum(localPath, utils.DefaultChecksumAlgorithm)
	if err != nil {
		return fmt.Errorf("failed to checksum %v: %w", localPath, err)
	}
	f.Checksum = sum
	return nil
}
