package board

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// GTP column letters; 'I' is skipped by convention.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// Render writes an ASCII picture of the board, rows numbered from the
// bottom, columns lettered GTP-style.
func Render(out io.Writer, b *Board) {
	w := tabwriter.NewWriter(out, 2, 4, 1, ' ', 0)
	for row := b.size - 1; row >= 0; row-- {
		fmt.Fprintf(w, "%d\t", row+1)
		for col := 0; col < b.size; col++ {
			fmt.Fprintf(w, "%s\t", b.At(Point{Row: row, Col: col}))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(w, "%c\t", columnLetters[col])
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}
