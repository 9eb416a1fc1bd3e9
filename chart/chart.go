// Package chart renders PNG charts of historical price series for the
// technical-indicator plots: the daily close price and the MACD study
// (EMA 12/26 fast line, EMA 9 signal line, histogram).
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/marketcl/marketcl"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// MACD EMA spans.
const (
	fastSpan   = 12
	slowSpan   = 26
	signalSpan = 9
)

// ema computes an exponential moving average over values with the given span,
// seeded with the first value.
func ema(values []float64, span int) []float64 {
	if len(values) == 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// macd returns the fast line (EMA12 - EMA26), the signal line (EMA9 of the
// fast line) and the histogram (fast - signal).
func macd(closes []float64) (fast, signal, hist []float64) {
	fast = make([]float64, len(closes))
	ema12 := ema(closes, fastSpan)
	ema26 := ema(closes, slowSpan)
	for i := range closes {
		fast[i] = ema12[i] - ema26[i]
	}
	signal = ema(fast, signalSpan)
	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = fast[i] - signal[i]
	}
	return fast, signal, hist
}

func split(bars []marketcl.Bar) (dates []time.Time, closes []float64) {
	dates = make([]time.Time, len(bars))
	closes = make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		closes[i] = b.Close
	}
	return dates, closes
}

func render(graph chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Price renders the daily close price of a symbol as a PNG line chart.
func Price(symbol string, bars []marketcl.Bar) ([]byte, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("need at least 2 bars, got %d", len(bars))
	}
	dates, closes := split(bars)

	graph := chart.Chart{
		Title:  symbol + " Price",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Close",
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					StrokeWidth: 1.5,
				},
				XValues: dates,
				YValues: closes,
			},
		},
	}
	return render(graph)
}

// MACD renders the MACD study of a symbol as a PNG chart: fast line, dashed
// signal line, and the histogram as a filled series around zero.
func MACD(symbol string, bars []marketcl.Bar) ([]byte, error) {
	if len(bars) < slowSpan {
		return nil, fmt.Errorf("need at least %d bars for MACD, got %d", slowSpan, len(bars))
	}
	dates, closes := split(bars)
	fast, signal, hist := macd(closes)

	fastSeries := chart.TimeSeries{
		Name: "Fast Line",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("000080"), // navy
			StrokeWidth: 1.5,
		},
		XValues: dates,
		YValues: fast,
	}
	signalSeries := chart.TimeSeries{
		Name: "Signal Line",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("87ceeb"), // sky blue
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: dates,
		YValues: signal,
	}
	histSeries := chart.TimeSeries{
		Name: "Histogram",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("9ca3af"),
			StrokeWidth: 1.0,
			FillColor:   drawing.ColorFromHex("9ca3af").WithAlpha(64),
		},
		XValues: dates,
		YValues: hist,
	}

	graph := chart.Chart{
		Title:  symbol + " MACD",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{histSeries, fastSeries, signalSeries},
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}
	return render(graph)
}
