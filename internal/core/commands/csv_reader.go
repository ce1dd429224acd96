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
// first step of the catalog ingestion pipeline: reading the raw CSV export
// and turning it into a list of column-name -> value rows.
//
// Logic Flow:
//  1. It receives the CSV file path from the context (the workflow's input).
//  2. It opens and parses the file with a relaxed reader: quoting is lax and
//     rows may have a variable column count, since the export is produced by
//     an external tool the service does not control.
//  3. The first row is treated as the header; every following row becomes a
//     map keyed by header name. Short rows simply omit the trailing columns.
//  4. The row list is placed in the context for the record normalizer.
package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jaycherian/go-media-insights/internal/core/cor"
)

// CSVReader is a command that parses a CSV file into raw header-keyed rows.
type CSVReader struct {
	cor.BaseCommand
}

// NewCSVReader is the constructor for the CSVReader command.
func NewCSVReader(name string) *CSVReader {
	return &CSVReader{BaseCommand: *cor.NewBaseCommand(name)}
}

// Execute reads and parses the CSV file named by the command's input
// parameter, emitting []map[string]string rows.
func (c *CSVReader) Execute(context cor.Context) {
	path := context.Get(c.GetInputParam()).(string)

	file, err := os.Open(path)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("failed to open dataset file %s: %w", path, err))
		return
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	// The export tool occasionally emits unescaped quotes and short rows;
	// accept both rather than failing the whole load.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	raw, err := reader.ReadAll()
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("failed to parse dataset file %s: %w", path, err))
		return
	}
	if len(raw) == 0 {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("dataset file %s has no header row", path))
		return
	}

	header := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, record := range raw[1:] {
		if len(record) == 0 {
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), rows)
	context.Add(cor.CtxOut, rows)
}
