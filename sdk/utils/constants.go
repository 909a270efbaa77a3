// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".zenodo.ini"
	IniSource          = "ini_source"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	ZenodoEndpoint   = "zenodo_endpoint"
	ZenodoToken      = "zenodo_access_token"
	ZenodoScratchDir = "zenodo_scratch_dir"

	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"

	// Public Zenodo instances
	ProductionURL = "https://zenodo.org"
	SandboxURL    = "https://sandbox.zenodo.org"

	// Default scratch area for materializing remote-sourced dataset files
	ScratchDirName = ".zen"

	// Limits enforced by Zenodo per deposition
	MaxStorageSize     = int64(5e10)
	MaxDepositionFiles = 100

	DefaultChecksumAlgorithm = "md5"
)

var Resources = map[string][]string{
	"deposit/depositions": {"deposition", "depositions"},
	"records":             {"record"},
	"licenses":            {"license"},
	"communities":         {"community"},
}
