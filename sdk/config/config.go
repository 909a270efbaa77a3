// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config passed to the SDK services (no viper/INI at this level)
type Config struct {
	Core CoreConfig
	S3   S3Config
}

type CoreConfig struct {
	// BaseURL of the Zenodo instance, e.g. https://zenodo.org or
	// https://sandbox.zenodo.org
	BaseURL     string
	AccessToken string
}

// S3Config holds credentials for s3:// dataset sources.
type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}
