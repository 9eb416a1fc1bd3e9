package renderer

// MACDHelp returns the MACD trading-rules primer shown alongside the charts.
func MACDHelp() string {
	return `# MACD Trading Rules

1. When the fast MACD line crosses **above** the slow signal line, it gives a
   buy signal. Go long, and place a protective stop below the latest minor low.
2. When the fast line crosses **below** the signal line, it gives a sell
   signal. Go short, and place a protective stop above the latest minor high.

## MACD Histogram

The slope of the histogram gives a signal at every bar: when the current bar
is higher than the preceding bar, bulls are in control and it is time to buy;
when it is lower, bears are in control. When prices go one way but the
histogram moves the other way, the dominant crowd is losing its enthusiasm and
the trend is weaker than it appears.

The rare but strongest signals come from divergences: the histogram ticking
down from a second, lower top while prices are at a new high (sell short), or
ticking up from a second, shallower bottom while prices are at a new low (buy).
`
}
