package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/evo"
)

// savePlot draws best and mean fitness per generation for every run. The
// output format follows the file extension.
func savePlot(path string, histories [][]evo.Stats) error {
	p := plot.New()
	p.Title.Text = "Fitness per generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	for i, h := range histories {
		best := make(plotter.XYs, len(h))
		mean := make(plotter.XYs, len(h))
		for j, s := range h {
			best[j].X, best[j].Y = float64(s.Generation), s.Best
			mean[j].X, mean[j].Y = float64(s.Generation), s.Mean
		}

		bestLine, err := plotter.NewLine(best)
		if err != nil {
			return fmt.Errorf("plot run %d: %w", i, err)
		}
		meanLine, err := plotter.NewLine(mean)
		if err != nil {
			return fmt.Errorf("plot run %d: %w", i, err)
		}
		bestLine.Color = plotutil.Color(i)
		meanLine.Color = plotutil.Color(i)
		meanLine.Dashes = plotutil.Dashes(1)

		p.Add(bestLine, meanLine)
		p.Legend.Add(fmt.Sprintf("run %d best", i), bestLine)
		p.Legend.Add(fmt.Sprintf("run %d mean", i), meanLine)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
