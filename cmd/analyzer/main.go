package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"

	"shopcli/internal/analytics"
	"shopcli/internal/config"
	"shopcli/internal/exporter"
	"shopcli/internal/infrastructure"
	"shopcli/internal/loader"
	"shopcli/pkg/contracts"
	"shopcli/pkg/contracts/domain"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the source CSV datasets (defaults to ecommerce_data)")
	year := flag.Int("year", time.Now().Year(), "year to analyze")
	prevYear := flag.Int("prev-year", 0, "comparison year (defaults to year-1)")
	exportXLSX := flag.String("export", "", "write the analysis workbook to this xlsx file (relative to reports dir)")
	exportCSV := flag.Bool("csv", false, "write category/state performance CSV reports")
	topN := flag.Int("top", 10, "number of categories/states to display")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	if *prevYear == 0 {
		*prevYear = *year - 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Paths:   config.PathsConfig{},
			Logging: config.LoggingConfig{Level: "info", Output: "console"},
		}
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if cfg.Paths.DataDir == "" {
		cfg.Paths.DataDir = "ecommerce_data"
	}
	if cfg.Paths.ReportsDir == "" {
		cfg.Paths.ReportsDir = "reports"
	}
	if cfg.Paths.LogsDir == "" {
		cfg.Paths.LogsDir = "logs"
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		slog.Warn("Failed to create output directories", "error", err)
	}
	if cfg.Logging.Output != "console" {
		cfg.Logging.FilePath = cfg.Paths.LogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	otelCfg := infrastructure.DefaultOTelConfig()
	otelCfg.EnableTracing = cfg.Analysis.EnableTracing
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "starting analysis run",
		slog.Int("year", *year),
		slog.Int("previous_year", *prevYear),
		slog.String("data_dir", cfg.Paths.DataDir))

	if err := run(ctx, cfg, logger, *year, *prevYear, *exportXLSX, *exportCSV, *topN); err != nil {
		logger.ErrorContext(ctx, "analysis run failed", slog.String("error", err.Error()))
		providers.Shutdown(context.Background())
		os.Exit(1)
	}

	if err := providers.Shutdown(context.Background()); err != nil {
		logger.Warn("trace shutdown failed", slog.String("error", err.Error()))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, year, prevYear int, exportXLSX string, exportCSV bool, topN int) error {
	session := loader.New(cfg, logger)
	if _, err := session.LoadRawData(ctx); err != nil {
		return err
	}

	printQuality(session.ValidateQuality())

	sales, err := session.PrepareSalesData(ctx, nil)
	if err != nil {
		return err
	}

	revenue := analytics.RevenueMetrics(sales, year, prevYear)
	aov := analytics.AverageOrderValue(sales, year, prevYear)
	volume := analytics.OrderVolumeMetrics(sales, year, prevYear)
	monthly := analytics.MonthlyGrowth(sales, year)

	cx := domain.CustomerExperienceMetrics{}
	if reviews, ok := session.Raw(domain.TableReviews); ok {
		cx, err = analytics.CustomerExperience(sales, reviews)
		if err != nil {
			return err
		}
	} else {
		logger.WarnContext(ctx, "reviews dataset not loaded, skipping customer experience metrics")
	}

	var categories []domain.RegionPerformance
	if products, ok := session.Raw(domain.TableProducts); ok {
		categories, err = analytics.CategoryPerformance(sales, products)
		if err != nil {
			return err
		}
	}

	var states []domain.RegionPerformance
	orders, haveOrders := session.Raw(domain.TableOrders)
	customers, haveCustomers := session.Raw(domain.TableCustomers)
	if haveOrders && haveCustomers {
		states, err = analytics.GeographicPerformance(sales, orders, customers)
		if err != nil {
			return err
		}
	}

	summary := analytics.BusinessSummary(revenue, aov, volume, cx)
	printSummary(year, prevYear, summary, monthly, categories, states, topN)

	if haveOrders {
		distribution, err := analytics.OrderStatusDistribution(orders, year)
		if err != nil {
			return err
		}
		printDistribution(year, distribution)
	}

	if exportCSV {
		writer := exporter.NewCSVWriter(cfg.Paths, logger)
		if len(categories) > 0 {
			if err := writer.WritePerformance("category_performance.csv", "category", categories); err != nil {
				return err
			}
		}
		if len(states) > 0 {
			if err := writer.WritePerformance("state_performance.csv", "state", states); err != nil {
				return err
			}
		}
	}

	if exportXLSX != "" {
		writer := exporter.NewExcelWriter(cfg.Paths, logger)
		err := writer.WriteWorkbook(exportXLSX, exporter.WorkbookData{
			Summary:    summary,
			Categories: categories,
			States:     states,
			Monthly:    monthly,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func printQuality(issues map[string][]string) {
	yellow := color.New(color.FgYellow, color.Bold)
	clean := true
	for _, datasetIssues := range issues {
		if len(datasetIssues) > 0 {
			clean = false
		}
	}
	if clean {
		return
	}
	yellow.Println("Data quality issues:")
	names := make([]string, 0, len(issues))
	for name := range issues {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, issue := range issues[name] {
			fmt.Printf("   - %s: %s\n", name, issue)
		}
	}
	fmt.Println()
}

func printSummary(year, prevYear int, s domain.BusinessSummary, monthly []domain.MonthlyRevenue, categories, states []domain.RegionPerformance, topN int) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	cyan.Printf("Business summary %d vs %d\n", year, prevYear)
	fmt.Printf("   Revenue:        $%.2f (growth %s)\n", s.Revenue.CurrentRevenue, s.Revenue.RevenueGrowth)
	fmt.Printf("   Orders:         %d (growth %s)\n", s.Orders.CurrentOrders, s.Orders.OrderGrowth)
	fmt.Printf("   Avg order:      %s\n", s.Orders.CurrentAOV)
	fmt.Printf("   Delivery speed: %s\n", s.Experience.AvgDeliveryDays)
	fmt.Printf("   Satisfaction:   %s\n", s.Experience.AvgSatisfaction)

	if len(monthly) > 0 {
		cyan.Printf("\nMonthly revenue %d\n", year)
		for _, point := range monthly {
			if point.GrowthPercent != nil {
				fmt.Printf("   %2d: $%.2f (%+.2f%%)\n", point.Month, point.Revenue, *point.GrowthPercent)
			} else {
				fmt.Printf("   %2d: $%.2f\n", point.Month, point.Revenue)
			}
		}
	}

	printRanking(green, "Top categories", categories, topN)
	printRanking(green, "Top states", states, topN)
}

func printRanking(header *color.Color, title string, rows []domain.RegionPerformance, topN int) {
	if len(rows) == 0 {
		return
	}
	header.Printf("\n%s\n", title)
	for i, row := range rows {
		if i >= topN {
			break
		}
		fmt.Printf("   %-30s $%12.2f  %6d orders  avg $%.2f\n",
			row.Key, row.TotalRevenue, row.TotalOrders, row.AvgOrderValue)
	}
}

func printDistribution(year int, distribution map[string]float64) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\nOrder status distribution %d\n", year)
	statuses := make([]string, 0, len(distribution))
	for status := range distribution {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return distribution[statuses[i]] > distribution[statuses[j]]
	})
	for _, status := range statuses {
		fmt.Printf("   %-12s %6.2f%%\n", status, distribution[status]*100)
	}
}
