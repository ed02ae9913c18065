package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
	gochart "github.com/wcharczuk/go-chart/v2"
)

var _ port.ChartRenderer = (*Renderer)(nil)

// Renderer draws the daily-sales line chart, one point per calendar
// day with sales.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) RenderDailySales(ds []domain.DailySales) ([]byte, error) {
	const op = "Renderer.RenderDailySales"

	if len(ds) == 0 {
		return nil, fmt.Errorf("%s: no data points", op)
	}

	xs := make([]time.Time, len(ds))
	ys := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = d.Day
		ys[i] = d.Total.InexactFloat64()
	}

	graph := gochart.Chart{
		Title:  "Daily Sales",
		Width:  1000,
		Height: 600,
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{Name: "Total"},
		Series: []gochart.Series{
			gochart.TimeSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: gochart.ColorBlue,
					DotColor:    gochart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}

	// a single point collapses both axis ranges, pad them by hand
	if len(ds) == 1 {
		day := ds[0].Day
		graph.XAxis.Range = &gochart.ContinuousRange{
			Min: gochart.TimeToFloat64(day.AddDate(0, 0, -1)),
			Max: gochart.TimeToFloat64(day.AddDate(0, 0, 1)),
		}
		graph.YAxis.Range = &gochart.ContinuousRange{
			Min: 0,
			Max: ys[0] * 2,
		}
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
