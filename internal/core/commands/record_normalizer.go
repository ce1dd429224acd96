// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands provides the concrete implementations of the Chain of
// Responsibility (COR) pattern's Command interface. This file defines the
// record normalization step of the catalog ingestion pipeline.
//
// Logic Flow:
// This command follows the CSVReader in the chain. It converts each raw
// header-keyed row into a typed model.Video. The conversion is total: every
// per-row parse problem is absorbed by the permissive field rules (numbers
// default to 0, tags to an empty list), so a malformed record never aborts
// processing of the remaining records.
package commands

import (
	"github.com/jaycherian/go-media-insights/internal/core/cor"
	"github.com/jaycherian/go-media-insights/internal/core/model"
)

// RecordNormalizer is a command that turns raw CSV rows into typed Video
// records.
type RecordNormalizer struct {
	cor.BaseCommand
}

// NewRecordNormalizer is the constructor for the RecordNormalizer command.
func NewRecordNormalizer(name string) *RecordNormalizer {
	return &RecordNormalizer{BaseCommand: *cor.NewBaseCommand(name)}
}

// Execute normalizes the row list from the context into []*model.Video,
// preserving source order.
func (r *RecordNormalizer) Execute(context cor.Context) {
	rows := context.Get(r.GetInputParam()).([]map[string]string)

	records := make([]*model.Video, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.NewVideoFromRow(row))
	}

	r.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(r.GetOutputParam(), records)
	context.Add(cor.CtxOut, records)
}
