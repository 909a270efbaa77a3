// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package vocabulary looks up controlled vocabularies (currently licenses)
// used to fill deposition metadata.
package vocabulary

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/zenodo-cli-sdk/sdk/config"
)

type VocabularyService struct {
	http config.CoreHTTP
}

func NewVocabularyService(_ context.Context, conf config.Config) (*VocabularyService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &VocabularyService{
		http: config.NewHTTPCore(nil, conf.Core),
	}, nil
}
