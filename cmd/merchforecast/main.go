// Command merchforecast reads event and marketplace listing fixtures,
// scores each event, projects t-shirt production quantities and
// prices, and writes the plan as CSV reports plus a JSON summary.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/guarzo/merchforecast/internal/concurrent"
	"github.com/guarzo/merchforecast/internal/config"
	"github.com/guarzo/merchforecast/internal/forecast"
	"github.com/guarzo/merchforecast/internal/marketplace"
	"github.com/guarzo/merchforecast/internal/model"
	"github.com/guarzo/merchforecast/internal/query"
	"github.com/guarzo/merchforecast/internal/report"
	"github.com/guarzo/merchforecast/internal/scoring"
)

func main() {
	eventsPath := flag.String("events", "events.json", "path to the events JSON file")
	productsPath := flag.String("products", "products.json", "path to the marketplace listings JSON file")
	outDir := flag.String("out", "", "output directory (overrides config)")
	watch := flag.Bool("watch", false, "keep running and regenerate on the configured schedule")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		// Not an error: system env vars still apply.
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	run := func() {
		if err := generate(cfg, *eventsPath, *productsPath, time.Now()); err != nil {
			slog.Error("generating forecast", "error", err)
			if !*watch {
				os.Exit(1)
			}
		}
	}
	run()

	if !*watch {
		return
	}
	if cfg.Schedule == "" {
		slog.Error("watch mode requires a schedule in config")
		os.Exit(1)
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Schedule, run); err != nil {
		slog.Error("invalid schedule", "schedule", cfg.Schedule, "error", err)
		os.Exit(1)
	}
	c.Start()
	slog.Info("watching", "schedule", cfg.Schedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	<-c.Stop().Done()
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func generate(cfg *config.Config, eventsPath, productsPath string, now time.Time) error {
	events, err := loadEvents(eventsPath)
	if err != nil {
		return err
	}
	products, err := loadProducts(productsPath)
	if err != nil {
		return err
	}
	slog.Info("loaded inputs", "events", len(events), "products", len(products))

	pool := concurrent.Pool{Progress: func(done, total int) {
		if done == total || done%500 == 0 {
			slog.Debug("scoring events", "done", done, "total", total)
		}
	}}
	if err := pool.Each(context.Background(), len(events), func(i int) error {
		scoreEvent(&events[i], now)
		return nil
	}); err != nil {
		return fmt.Errorf("scoring events: %w", err)
	}

	result := cfg.Builder().Build(events, products, now)
	market := cfg.Aggregator().ProjectSales(products)
	dashboard := query.Dashboard(events, now)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	reports := map[string][][]string{
		"production_plan.csv":    report.ProductionPlan(result.Projections),
		"weekly_plan.csv":        report.WeeklyPlan(result.Weekly),
		"artist_projections.csv": report.ArtistProjections(market.Artists),
		"category_breakdown.csv": report.CategoryBreakdown(market.Categories),
	}
	for name, rows := range reports {
		path := filepath.Join(cfg.OutputDir, name)
		if err := report.WriteCSV(path, rows); err != nil {
			return err
		}
		slog.Info("wrote report", "path", path, "rows", len(rows)-1)
	}

	summary := struct {
		GeneratedAt time.Time                    `json:"generated_at"`
		Totals      forecast.Totals              `json:"totals"`
		Dashboard   query.DashboardStats         `json:"dashboard"`
		Market      marketplace.MarketProjection `json:"market"`
		Listings    marketplace.Stats            `json:"listings"`
	}{now, result.Totals, dashboard, market, marketplace.Summary(products)}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	summaryPath := filepath.Join(cfg.OutputDir, "summary.json")
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	slog.Info("wrote summary", "path", summaryPath,
		"projected_units", result.Totals.Units, "projected_profit", result.Totals.Profit)
	return nil
}

// scoreEvent fills derived fields the upstream feed leaves blank.
func scoreEvent(ev *model.Event, now time.Time) {
	if ev.Artist != nil && ev.Artist.Genre == "" {
		ev.Artist.Genre = scoring.ClassifyGenre(ev.Title, ev.Artist.Name)
	}
	if ev.HypeScore == 0 {
		ev.HypeScore = scoring.HypeScore(*ev, nil, now)
	}
	if ev.SalesPotentialScore == 0 {
		ev.SalesPotentialScore = scoring.SalesPotential(*ev, ev.HypeScore)
	}
	if ev.ProductionStart.IsZero() {
		ev.ProductionStart, ev.ProductionDeadline = scoring.ProductionWindow(*ev, ev.SalesPotentialScore, now)
	}
}

func loadEvents(path string) ([]model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	return events, nil
}

func loadProducts(path string) ([]model.MarketplaceProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading products: %w", err)
	}
	var products []model.MarketplaceProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing products: %w", err)
	}
	return products, nil
}
