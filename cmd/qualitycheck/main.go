package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"

	"shopcli/internal/config"
	apperrors "shopcli/internal/errors"
	"shopcli/internal/infrastructure"
	"shopcli/internal/loader"
	"shopcli/pkg/contracts"
	"shopcli/pkg/contracts/domain"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the source CSV datasets (defaults to ecommerce_data)")
	describe := flag.Bool("describe", false, "annotate columns with data-dictionary descriptions")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "warn", Output: "console"},
		}
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if cfg.Paths.DataDir == "" {
		cfg.Paths.DataDir = "ecommerce_data"
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	session := loader.New(cfg, logger)
	if _, err := session.LoadRawData(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to load datasets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printDatasets(session.DataSummary(), *describe)
	if total := printIssues(session.ValidateQuality()); total > 0 {
		err := apperrors.NewAppError(apperrors.ErrTypeQuality,
			fmt.Sprintf("%d data quality issue(s) found", total), nil)
		logger.ErrorContext(ctx, "quality validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printDatasets(summaries map[string]domain.TableSummary, describe bool) {
	cyan := color.New(color.FgCyan, color.Bold)
	dictionary := domain.DataDictionary()

	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := summaries[name]
		cyan.Printf("%s (%d rows, %d columns)\n", name, s.Rows, s.Columns)
		for _, col := range s.ColumnNames {
			line := fmt.Sprintf("   %-32s %-10s nulls=%d", col, s.ColumnTypes[col], s.MissingValues[col])
			if describe {
				if desc, ok := dictionary[name][col]; ok {
					line += "  " + desc
				}
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
}

func printIssues(issues map[string][]string) int {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	names := make([]string, 0, len(issues))
	total := 0
	for name, datasetIssues := range issues {
		names = append(names, name)
		total += len(datasetIssues)
	}
	sort.Strings(names)

	if total == 0 {
		green.Println("No data quality issues found")
		return 0
	}
	red.Printf("%d data quality issue(s) found\n", total)
	for _, name := range names {
		for _, issue := range issues[name] {
			fmt.Printf("   - %s: %s\n", name, issue)
		}
	}
	return total
}
