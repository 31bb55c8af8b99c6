// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Convergence renders an HTML page with the per-iteration error history
// (log-scaled line) and, when given, the solution components (bar).
func Convergence(w io.Writer, title string, errs, solution []float64) error {
	if len(errs) == 0 {
		return ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d iterations, last error %g", len(errs), errs[len(errs)-1]),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "max |Δx|", Type: "log", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	xs := make([]string, len(errs))
	data := make([]opts.LineData, len(errs))
	for i, e := range errs {
		xs[i] = strconv.Itoa(i + 1)
		data[i] = opts.LineData{Value: e}
	}
	line.SetXAxis(xs).AddSeries("error", data)

	page := components.NewPage()
	page.AddCharts(line)

	if len(solution) > 0 {
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
			charts.WithTitleOpts(opts.Title{Title: "solution"}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		names := make([]string, len(solution))
		vals := make([]opts.BarData, len(solution))
		for i, v := range solution {
			names[i] = "x" + strconv.Itoa(i+1)
			vals[i] = opts.BarData{Value: v}
		}
		bar.SetXAxis(names).AddSeries("x", vals)
		page.AddCharts(bar)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}
