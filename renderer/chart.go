package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	report "github.com/jcferrara/investment-report"
)

// ReturnsChart renders the daily return series as a PNG time-series chart.
func ReturnsChart(r *report.DailyReturnReport, w io.Writer) error {
	xs := make([]time.Time, 0, len(r.Entries))
	ys := make([]float64, 0, len(r.Entries))
	for _, e := range r.Entries {
		xs = append(xs, e.Date.Time())
		ys = append(ys, float64(e.Return))
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Portfolio Return, %s to %s", r.Range.From, r.Range.To),
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Return (%)",
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Return", XValues: xs, YValues: ys},
		},
	}
	return graph.Render(chart.PNG, w)
}

// TrendChart renders a symbol's close and moving averages as a PNG chart.
// Averages are plotted only once their window is full.
func TrendChart(r *report.TrendReport, w io.Writer) error {
	var (
		xs              []time.Time
		closes          []float64
		shortXs, longXs []time.Time
		shortYs, longYs []float64
	)
	for _, e := range r.Entries {
		xs = append(xs, e.Date.Time())
		closes = append(closes, e.Close)
		if e.ShortAvg != 0 {
			shortXs = append(shortXs, e.Date.Time())
			shortYs = append(shortYs, e.ShortAvg)
		}
		if e.LongAvg != 0 {
			longXs = append(longXs, e.Date.Time())
			longYs = append(longYs, e.LongAvg)
		}
	}

	series := []chart.Series{
		chart.TimeSeries{Name: r.Symbol, XValues: xs, YValues: closes},
	}
	if len(shortXs) > 0 {
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("%d-day avg", r.ShortWindow),
			XValues: shortXs,
			YValues: shortYs,
		})
	}
	if len(longXs) > 0 {
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("%d-day avg", r.LongWindow),
			XValues: longXs,
			YValues: longYs,
		})
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s Trend", r.Symbol),
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
