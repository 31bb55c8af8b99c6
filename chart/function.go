// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/numlab/expr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sample evaluates f at n evenly spaced points of [lo, hi]. Points where f
// fails are skipped and split the curve, so each returned segment is a
// connected run of successful samples.
func Sample(f expr.Func1, lo, hi float64, n int) []plotter.XYs {
	var (
		segs []plotter.XYs
		cur  plotter.XYs
	)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		y, err := f(x)
		if err != nil {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x, Y: y})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}

	return segs
}

// FullRange widens [a,b] by margin·(b−a) on both sides.
func FullRange(a, b, margin float64) (lo, hi float64) {
	if a > b {
		a, b = b, a
	}
	w := (b - a) * margin

	return a - w, b + w
}

// FunctionExpr compiles equation as a function of x and draws it.
func FunctionExpr(w io.Writer, equation string, a, b float64, opts ...Option) error {
	f, err := expr.Unary(equation)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	opts = append([]Option{WithTitle(expr.Display(equation))}, opts...)

	return Function(w, f, a, b, opts...)
}

// Function draws f over the full range with [a,b] highlighted: the curve
// inside the interval is drawn thicker, the interval ends are marked by
// vertical lines and the x axis is dashed.
//
// Errors: ErrBadRange, ErrNoData, or the encoder's error for the format.
func Function(w io.Writer, f expr.Func1, a, b float64, opts ...Option) error {
	o := gatherOptions(opts...)
	if a > b {
		a, b = b, a
	}
	lo, hi := FullRange(a, b, DefaultMargin)
	if o.hasRange {
		lo, hi = o.lo, o.hi
	}
	if !finite(lo) || !finite(hi) || !finite(a) || !finite(b) || lo >= hi {
		return fmt.Errorf("chart: [%g, %g]: %w", lo, hi, ErrBadRange)
	}

	full := Sample(f, lo, hi, o.points)
	if len(full) == 0 {
		return ErrNoData
	}
	ymin, ymax := bounds(full)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	axis, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	axis.Color = plotutil.Color(6)
	axis.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(axis)

	for i, seg := range full {
		l, lerr := plotter.NewLine(seg)
		if lerr != nil {
			return fmt.Errorf("chart: %w", lerr)
		}
		l.Color = plotutil.Color(0)
		p.Add(l)
		if i == 0 {
			p.Legend.Add("f(x)", l)
		}
	}

	// interval part, thicker and in a second colour
	span := Sample(f, a, b, max(2, o.points/4))
	for i, seg := range span {
		l, lerr := plotter.NewLine(seg)
		if lerr != nil {
			return fmt.Errorf("chart: %w", lerr)
		}
		l.Color = plotutil.Color(1)
		l.Width = vg.Points(2.5)
		p.Add(l)
		if i == 0 {
			p.Legend.Add(fmt.Sprintf("[%g, %g]", a, b), l)
		}
	}
	for _, x := range []float64{a, b} {
		edge, lerr := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
		if lerr != nil {
			return fmt.Errorf("chart: %w", lerr)
		}
		edge.Color = plotutil.Color(1)
		edge.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(edge)
	}

	if len(o.marks) > 0 {
		pts := make(plotter.XYs, len(o.marks))
		labels := make([]string, len(o.marks))
		for i, m := range o.marks {
			pts[i] = plotter.XY{X: m.x, Y: m.y}
			labels[i] = m.label
		}
		sc, serr := plotter.NewScatter(pts)
		if serr != nil {
			return fmt.Errorf("chart: %w", serr)
		}
		sc.Color = plotutil.Color(2)
		sc.Radius = vg.Points(4)
		p.Add(sc)
		lb, lerr := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if lerr != nil {
			return fmt.Errorf("chart: %w", lerr)
		}
		p.Add(lb)
	}

	wt, err := p.WriterTo(o.width, o.height, o.format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}

func bounds(segs []plotter.XYs) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range s {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	return lo, hi
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
