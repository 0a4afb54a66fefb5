// Package report renders forecast and marketplace results as CSV
// tables. Builders return header-plus-rows slices; WriteCSV handles
// escaping and file output.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/guarzo/merchforecast/internal/forecast"
	"github.com/guarzo/merchforecast/internal/marketplace"
)

// ProductionPlan lists one row per projected event: what to make,
// how many, at what price, and when production has to run.
func ProductionPlan(projections []forecast.Projection) [][]string {
	out := [][]string{
		{"Event", "Artist", "City", "Date", "Units", "Price", "Investment", "Revenue", "Profit", "Priority", "ProductionStart", "ProductionDeadline"},
	}
	for _, p := range projections {
		out = append(out, []string{
			p.EventTitle,
			p.Artist,
			p.City,
			p.EventDate.Format("2006-01-02"),
			fmt.Sprintf("%d", p.ProjectedUnits),
			money(p.SuggestedPrice),
			money(p.Investment),
			money(p.ProjectedRevenue),
			money(p.ProjectedProfit),
			string(p.Priority),
			formatDay(p.ProductionStart),
			formatDay(p.ProductionDeadline),
		})
	}
	return out
}

// WeeklyPlan lays out production load per ISO week.
func WeeklyPlan(weeks []forecast.WeekBucket) [][]string {
	out := [][]string{
		{"WeekStart", "Events", "Units", "Revenue", "Profit"},
	}
	for _, w := range weeks {
		out = append(out, []string{
			w.WeekStart.Format("2006-01-02"),
			fmt.Sprintf("%d", w.Events),
			fmt.Sprintf("%d", w.Units),
			money(w.Revenue),
			money(w.Profit),
		})
	}
	return out
}

// ArtistProjections summarizes marketplace demand per artist.
func ArtistProjections(aggs []marketplace.ArtistAggregate) [][]string {
	out := [][]string{
		{"Artist", "Products", "TotalSold", "AvgPrice", "SuggestedPrice", "MarginPct", "EstMonthlyUnits", "MarketSharePct", "GrowthTier"},
	}
	for _, a := range aggs {
		out = append(out, []string{
			a.Artist,
			fmt.Sprintf("%d", a.ProductCount),
			fmt.Sprintf("%d", a.TotalSold),
			money(a.AvgPrice),
			money(a.SuggestedPrice),
			pct(a.ProfitMarginPct),
			fmt.Sprintf("%d", a.EstMonthlyUnits),
			pct(a.MarketSharePct),
			string(a.GrowthPotential),
		})
	}
	return out
}

// CategoryBreakdown summarizes marketplace volume per category.
func CategoryBreakdown(cats []marketplace.CategoryAggregate) [][]string {
	out := [][]string{
		{"Category", "Products", "TotalSold", "AvgPrice", "SharePct", "RevenueEstimate"},
	}
	for _, c := range cats {
		out = append(out, []string{
			string(c.Category),
			fmt.Sprintf("%d", c.ProductCount),
			fmt.Sprintf("%d", c.TotalSold),
			money(c.AvgPrice),
			pct(c.MarketSharePct),
			money(c.RevenueEstimate),
		})
	}
	return out
}

// WriteCSV writes rows to path, escaping each cell against formula
// injection.
func WriteCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, row := range rows {
		if err := writer.Write(EscapeRow(row)); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
