// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package deposition

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
)

// endpoint of the legacy deposit API, still the only one allowing file upload
const endpoint = "deposit/depositions"

type DepositionService struct {
	http config.CoreHTTP
}

func NewDepositionService(_ context.Context, conf config.Config) (*DepositionService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &DepositionService{
		http: config.NewHTTPCore(nil, conf.Core),
	}, nil
}
