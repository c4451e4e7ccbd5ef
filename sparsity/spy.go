// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// spySide is the rendered image side length.
const spySide = 4 * vg.Inch

// Spy renders the pattern as a scatter "spy" image and writes it to path.
// Rows grow downward (row 0 at the top), matching the usual matrix layout.
// The output format follows the file extension (.png, .pdf, .svg, ...).
//
// Errors:
//   - ErrNilPattern for a nil receiver argument.
//   - I/O and encoder errors from the plot backend, wrapped with context.
//
// Complexity: O(nnz) point construction plus rendering cost.
func Spy(p *Pattern, path string) error {
	if p == nil {
		return fmt.Errorf("Spy: %w", ErrNilPattern)
	}

	pts := make(plotter.XYs, len(p.coords))
	for i, c := range p.coords {
		pts[i].X = float64(c.Col)
		pts[i].Y = float64(p.rows - 1 - c.Row) // flip so row 0 renders on top
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("Spy: scatter: %w", err)
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("%dx%d, nnz=%d", p.rows, p.cols, len(p.coords))
	plt.X.Label.Text = "col"
	plt.Y.Label.Text = "row"
	// Pad half a cell on every side so border markers stay visible.
	plt.X.Min, plt.X.Max = -0.5, float64(p.cols)-0.5
	plt.Y.Min, plt.Y.Max = -0.5, float64(p.rows)-0.5
	plt.Add(sc)

	if err = plt.Save(spySide, spySide, path); err != nil {
		return fmt.Errorf("Spy: save %q: %w", path, err)
	}

	return nil
}
