package graph

import "strings"

// Blank is the cell value of an empty buffer position.
const Blank = ' '

// Buffer is a height x width grid of character cells, row 0 at the top.
// It is produced fresh by every Render call and is transient: serialize
// it with String and discard it.
type Buffer struct {
	width  int
	height int
	cells  [][]rune
}

func newBuffer(width, height int) *Buffer {
	cells := make([][]rune, height)
	for i := range cells {
		row := make([]rune, width)
		for j := range row {
			row[j] = Blank
		}
		cells[i] = row
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// At returns the cell at the given row and column.
func (b *Buffer) At(row, col int) rune {
	return b.cells[row][col]
}

// Row returns one row as a string.
func (b *Buffer) Row(row int) string {
	return string(b.cells[row])
}

// Rows returns all rows top to bottom.
func (b *Buffer) Rows() []string {
	rows := make([]string, b.height)
	for i := range b.cells {
		rows[i] = string(b.cells[i])
	}
	return rows
}

// String serializes the buffer row-major, each row terminated by a
// newline, as one printable text block.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for i := range b.cells {
		sb.WriteString(string(b.cells[i]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Buffer) set(row, col int, r rune) {
	b.cells[row][col] = r
}
