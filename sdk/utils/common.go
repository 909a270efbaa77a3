// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
)

func getIniPath() string {
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

// ConfigFromViper assembles the SDK config from the currently loaded
// environment (call RegisterIniCfgWithViper first).
func ConfigFromViper() config.Config {
	return config.Config{
		Core: config.CoreConfig{
			BaseURL:     viper.GetString(ZenodoEndpoint),
			AccessToken: viper.GetString(ZenodoToken),
		},
		S3: config.S3Config{
			AccessKey:   viper.GetString(AwsAccessKeyID),
			SecretKey:   viper.GetString(AwsSecretAccessKey),
			AccessToken: viper.GetString(AwsSessionToken),
			Region:      viper.GetString(AwsRegion),
			EndpointURL: viper.GetString(AwsEndpointURL),
		},
	}
}

// ScratchDirFromViper resolves the scratch directory for materializing
// remote dataset sources, falling back to the default.
func ScratchDirFromViper() string {
	if v := viper.GetString(ZenodoScratchDir); v != "" {
		return v
	}
	return ScratchDirName
}

// ParsedPath is a decomposed dataset source URL.
type ParsedPath struct {
	Scheme string
	Host   string
	Path   string
}

// ParsePath splits a source URL into scheme/host/path. Plain local paths
// come back with an empty scheme.
func ParsePath(source string) (*ParsedPath, error) {
	if !strings.Contains(source, "://") {
		return &ParsedPath{Path: source}, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source url %q: %w", source, err)
	}
	return &ParsedPath{
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Host,
		Path:   u.Path,
	}, nil
}

func TranslateEndpoint(resource string) (string, error) {
	for key, val := range Resources {
		if key == resource || slices.Contains(val, resource) {
			return key, nil
		}
	}
	return "", fmt.Errorf("resource '%v' is not supported", resource)
}

func GetStringValue(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b) // fallback, not indented
	}
	return out.String()
}
