// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
)

const endpoint = "records"

// RecordsService queries published records. Read-only: drafts and file
// management go through the deposition service.
type RecordsService struct {
	http config.CoreHTTP
}

func NewRecordsService(_ context.Context, conf config.Config) (*RecordsService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &RecordsService{
		http: config.NewHTTPCore(nil, conf.Core),
	}, nil
}
