// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table wraps a tablewriter table with string rows.
type Table struct {
	*tablewriter.Table
}

// NewTable creates a left aligned table with the given headers.
func NewTable(w io.Writer, headers ...string) *Table {
	t := tablewriter.NewTable(w)
	t.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	t.Header(anyHeaders...)
	return &Table{Table: t}
}

// AddRow adds a row of cells.
func (t *Table) AddRow(cells ...string) {
	_ = t.Table.Append(cells)
}

// KeyValueTable renders pairs as a two column table.
func KeyValueTable(w io.Writer, pairs [][2]string) error {
	t := NewTable(w, "Field", "Value")
	for _, p := range pairs {
		t.AddRow(p[0], p[1])
	}
	return t.Render()
}
