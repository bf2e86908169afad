package gemini

import (
	"fmt"
	"strings"

	"StockSense/internal/domain/models"
)

// BuildPrompt renders the structured analysis into the instruction text
// sent to the model. Unavailable indicator values are written as "n/a" so
// the model never invents numbers for them.
func BuildPrompt(report *models.TechnicalReport, sentiment *models.CombinedSentiment, alignment *models.AlignmentVerdict) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an equity analyst. Write a concise analysis of %s (%s market).\n\n",
		report.StockCode, report.MarketType)
	fmt.Fprintf(&b, "Price: %.2f (change %.2f, %.2f%%)\n",
		report.CurrentPrice, report.PriceChange, report.PriceChangePct)
	fmt.Fprintf(&b, "Trend: %s\n", report.Trend)
	fmt.Fprintf(&b, "RSI(14): %s\n", optStr(report.Indicators.RSI))
	fmt.Fprintf(&b, "MACD: %s, signal %s, histogram %s\n",
		optStr(report.Indicators.MACD), optStr(report.Indicators.MACDSignal), optStr(report.Indicators.MACDHistogram))
	fmt.Fprintf(&b, "SMA5/10/20/60: %s / %s / %s / %s\n",
		optStr(report.Indicators.SMA5), optStr(report.Indicators.SMA10),
		optStr(report.Indicators.SMA20), optStr(report.Indicators.SMA60))
	fmt.Fprintf(&b, "Support %.2f, resistance %.2f\n",
		report.SupportResistance.Support, report.SupportResistance.Resistance)
	fmt.Fprintf(&b, "Volume ratio vs recent average: %s\n", optStr(report.VolumeAnalysis.VolumeRatio))

	if sentiment != nil {
		b.WriteString("\nMarket sentiment:\n")
		if sentiment.Score != nil {
			fmt.Fprintf(&b, "Combined score %.2f (%s, confidence %s)\n",
				*sentiment.Score, sentiment.Label, sentiment.Confidence)
		} else {
			b.WriteString("No sentiment data available\n")
		}
		for _, s := range sentiment.Sources {
			fmt.Fprintf(&b, "- %s: score %.2f over %d items\n", s.Source, s.Score, s.ItemCount)
		}
	}
	if alignment != nil {
		fmt.Fprintf(&b, "\nSentiment vs trend: %s. %s\n", alignment.Outcome, alignment.Rationale)
	}

	b.WriteString("\nCover the technical picture, the sentiment backdrop and key levels to watch. Keep it under 250 words and do not give financial advice.")
	return b.String()
}

func optStr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4g", *v)
}
