// Package charts renders bucket distributions as standalone HTML pages.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"nba-roster-service/internal/domain"
)

// Position charts read better as a doughnut; everything else is a bar chart.
const doughnutProperty = domain.PropertyPosition

var palette = []string{
	"rgba(255, 99, 132, 0.6)",
	"rgba(54, 162, 235, 0.6)",
	"rgba(255, 206, 86, 0.6)",
	"rgba(75, 192, 192, 0.6)",
	"rgba(153, 102, 255, 0.6)",
	"rgba(255, 159, 64, 0.6)",
}

// Render writes an HTML chart of the series to w.
func Render(w io.Writer, series domain.Series) error {
	if series.Property == doughnutProperty {
		return renderDoughnut(w, series)
	}
	return renderBar(w, series)
}

func renderBar(w io.Writer, series domain.Series) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title(series)}),
		charts.WithColorsOpts(opts.Colors(colors(len(series.Labels)))),
	)

	data := make([]opts.BarData, 0, len(series.Data))
	for _, n := range series.Data {
		data = append(data, opts.BarData{Value: n})
	}
	bar.SetXAxis(series.Labels).AddSeries("players", data)

	return bar.Render(w)
}

func renderDoughnut(w io.Writer, series domain.Series) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title(series)}),
		charts.WithColorsOpts(opts.Colors(colors(len(series.Labels)))),
	)

	data := make([]opts.PieData, 0, len(series.Labels))
	for i, label := range series.Labels {
		data = append(data, opts.PieData{Name: label, Value: series.Data[i]})
	}
	pie.AddSeries("players", data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
	)

	return pie.Render(w)
}

func title(series domain.Series) string {
	return fmt.Sprintf("Players by %s", series.Property)
}

func colors(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, palette[i%len(palette)])
	}
	return out
}
