package chart

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/marketcl/marketcl"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEMA(t *testing.T) {
	if got := ema(nil, fastSpan); got != nil {
		t.Errorf("ema(nil) = %v, want nil", got)
	}

	// span 3 gives alpha = 0.5, which keeps the expected values exact.
	got := ema([]float64{10, 20, 20}, 3)
	want := []float64{10, 15, 17.5}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("ema[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// A constant series has itself as its moving average.
	for i, v := range ema([]float64{42, 42, 42, 42}, fastSpan) {
		if !almostEqual(v, 42) {
			t.Errorf("ema[%d] = %v, want 42", i, v)
		}
	}
}

func TestMACD(t *testing.T) {
	// Flat prices: every line is identically zero.
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 100
	}
	fast, signal, hist := macd(flat)
	for i := range flat {
		if !almostEqual(fast[i], 0) || !almostEqual(signal[i], 0) || !almostEqual(hist[i], 0) {
			t.Fatalf("macd of a flat series is nonzero at %d: %v %v %v", i, fast[i], signal[i], hist[i])
		}
	}

	// A steady uptrend keeps the fast EMA above the slow one.
	up := make([]float64, 40)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	fast, signal, hist = macd(up)
	last := len(up) - 1
	if fast[last] <= 0 {
		t.Errorf("fast line in an uptrend = %v, want > 0", fast[last])
	}
	if !almostEqual(hist[last], fast[last]-signal[last]) {
		t.Errorf("hist = %v, want fast-signal = %v", hist[last], fast[last]-signal[last])
	}
}

func testBars(n int) []marketcl.Bar {
	bars := make([]marketcl.Bar, n)
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = marketcl.Bar{
			Date:  day.AddDate(0, 0, i),
			Close: 100 + 5*math.Sin(float64(i)/4),
		}
	}
	return bars
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestPrice(t *testing.T) {
	png, err := Price("ABC", testBars(60))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("Price output is not a PNG")
	}

	if _, err := Price("ABC", testBars(1)); err == nil {
		t.Error("Price with a single bar succeeded, want error")
	}
}

func TestMACDChart(t *testing.T) {
	png, err := MACD("ABC", testBars(60))
	if err != nil {
		t.Fatalf("MACD failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("MACD output is not a PNG")
	}

	if _, err := MACD("ABC", testBars(10)); err == nil {
		t.Error("MACD with too few bars succeeded, want error")
	}
}
