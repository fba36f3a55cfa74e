// Package table formats fixed-column text tables with incrementally computed
// column widths.
package table

import (
	"strings"
	"unicode/utf8"
)

// Cell is one table cell. Rich cells carry ANSI styling, so their display
// width is tracked separately from their byte content.
type Cell struct {
	content string
	width   int
}

// Plain builds an unstyled cell.
func Plain(content string) Cell {
	return Cell{content: content, width: utf8.RuneCountInString(content)}
}

// Rich builds a styled cell whose display width is the rune count of the
// unstyled text it was rendered from.
func Rich(content, unstyled string) Cell {
	return Cell{content: content, width: utf8.RuneCountInString(unstyled)}
}

// Table holds column headers and rows. Column widths are the running maximum
// of the header and every cell added so far.
type Table struct {
	widths  []int
	columns []Cell
	rows    [][]Cell
}

// New constructs a table with the given column headers.
func New(columns ...Cell) *Table {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = c.width
	}
	return &Table{widths: widths, columns: columns}
}

// Add appends a row, widening any column whose cell exceeds its current width.
func (t *Table) Add(row ...Cell) {
	for i, c := range row {
		if i < len(t.widths) && c.width > t.widths[i] {
			t.widths[i] = c.width
		}
	}
	t.rows = append(t.rows, row)
}

// String renders the table: header line first, then one line per row, every
// cell padded to its column width and followed by a single space.
func (t *Table) String() string {
	var b strings.Builder
	t.writeLine(&b, t.columns)
	for _, row := range t.rows {
		b.WriteByte('\n')
		t.writeLine(&b, row)
	}
	return b.String()
}

func (t *Table) writeLine(b *strings.Builder, cells []Cell) {
	for i, c := range cells {
		b.WriteString(c.content)
		pad := 0
		if i < len(t.widths) {
			pad = t.widths[i] - c.width
		}
		for ; pad >= 0; pad-- {
			b.WriteByte(' ')
		}
	}
}
