// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

func newHasher(algorithm string) (hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "", DefaultChecksumAlgorithm:
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm '%v'", algorithm)
	}
}

// FileChecksum streams the file through the given hash and returns the
// lowercase hex digest. Zenodo reports plain md5 for deposition files.
func FileChecksum(path, algorithm string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ReaderChecksum(f, algorithm)
}

func ReaderChecksum(r io.Reader, algorithm string) (string, error) {
	h, err := newHasher(algorithm)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// NormalizeChecksum strips an "alg:" prefix as returned by some API
// responses (e.g. "md5:abc..." -> "abc...").
func NormalizeChecksum(checksum string) string {
	if i := strings.Index(checksum, ":"); i >= 0 {
		return checksum[i+1:]
	}
	return checksum
}
