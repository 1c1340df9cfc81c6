package loader

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"shopcli/internal/config"
	"shopcli/internal/dataset"
	"shopcli/internal/errors"
	"shopcli/internal/infrastructure"
	"shopcli/pkg/contracts/domain"
)

// Session owns the raw tables for one analysis run. All loaded tables live
// on the session as explicit instance state; derived tables are recomputed
// from them on demand and never cached. A Session is single-threaded.
type Session struct {
	paths        config.PathsConfig
	statusFilter []string
	logger       *slog.Logger
	tracer       trace.Tracer
	raw          map[string]*dataset.Table
}

// New creates a session over the configured data directory.
func New(cfg *config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	statusFilter := cfg.Analysis.StatusFilter
	if len(statusFilter) == 0 {
		statusFilter = []string{domain.OrderStatusDelivered}
	}
	return &Session{
		paths:        cfg.Paths,
		statusFilter: statusFilter,
		logger:       logger,
		tracer:       infrastructure.Tracer(),
		raw:          make(map[string]*dataset.Table),
	}
}

// Reset drops every loaded table, returning the session to its initial state.
func (s *Session) Reset() {
	s.raw = make(map[string]*dataset.Table)
}

// Raw returns a loaded table by dataset name.
func (s *Session) Raw(name string) (*dataset.Table, bool) {
	t, ok := s.raw[name]
	return t, ok
}

// SetRaw installs a table under a dataset name, replacing any loaded one.
// Used by callers that build tables in memory instead of reading CSVs.
func (s *Session) SetRaw(name string, t *dataset.Table) {
	s.raw[name] = t
}

// LoadRawData reads the five source CSVs from the data directory. A missing
// file is logged as a warning and its dataset is simply left unloaded; any
// other read failure is fatal. Returns the dataset map, which is also
// retained on the session.
func (s *Session) LoadRawData(ctx context.Context) (map[string]*dataset.Table, error) {
	ctx, span := s.tracer.Start(ctx, "loader.LoadRawData")
	defer span.End()

	for name := range domain.DatasetFiles() {
		path, err := s.paths.DatasetPath(name)
		if err != nil {
			return nil, errors.NewConfigError("resolve dataset path", err)
		}
		table, err := dataset.ReadCSV(path)
		if err != nil {
			if os.IsNotExist(err) {
				missing := errors.NewMissingFileError(path, err)
				s.logger.WarnContext(ctx, "dataset file not found, skipping",
					slog.String("dataset", name),
					slog.String("error", missing.Error()))
				continue
			}
			return nil, errors.NewParsingError("read dataset "+name, err)
		}
		s.raw[name] = table
		s.logger.InfoContext(ctx, "loaded dataset",
			slog.String("dataset", name),
			slog.Int("rows", table.NumRows()),
			slog.Int("columns", table.NumCols()))
	}

	span.SetAttributes(attribute.Int("datasets_loaded", len(s.raw)))
	return s.raw, nil
}

// DataSummary reports shape, columns, null counts and inferred column types
// for every loaded dataset. Diagnostic only.
func (s *Session) DataSummary() map[string]domain.TableSummary {
	summary := make(map[string]domain.TableSummary, len(s.raw))
	for name, table := range s.raw {
		summary[name] = table.Summary()
	}
	return summary
}

// ValidateQuality runs the fixed data-quality rule set over the loaded
// tables: null order IDs and duplicate order IDs in orders, null and
// negative prices in order items. Issues are reported, never thrown; every
// loaded dataset gets an entry even when it is clean.
func (s *Session) ValidateQuality() map[string][]string {
	issues := make(map[string][]string, len(s.raw))
	for name, table := range s.raw {
		datasetIssues := []string{}

		if name == domain.TableOrders && table.HasColumn(domain.ColOrderID) {
			nulls := 0
			seen := make(map[string]bool, table.NumRows())
			duplicates := 0
			for i := 0; i < table.NumRows(); i++ {
				row := table.Row(i)
				if row.IsNull(domain.ColOrderID) {
					nulls++
					continue
				}
				if id, ok := row.String(domain.ColOrderID); ok {
					if seen[id] {
						duplicates++
					}
					seen[id] = true
				}
			}
			if nulls > 0 {
				datasetIssues = append(datasetIssues, "Missing order_id values")
			}
			if duplicates > 0 {
				datasetIssues = append(datasetIssues, "Duplicate order IDs found")
			}
		}

		if name == domain.TableOrderItems && table.HasColumn(domain.ColPrice) {
			nulls := 0
			negatives := 0
			for i := 0; i < table.NumRows(); i++ {
				row := table.Row(i)
				if row.IsNull(domain.ColPrice) {
					nulls++
					continue
				}
				if price, ok := row.Float(domain.ColPrice); ok && price < 0 {
					negatives++
				}
			}
			if nulls > 0 {
				datasetIssues = append(datasetIssues, "Missing price values")
			}
			if negatives > 0 {
				datasetIssues = append(datasetIssues, "Negative price values found")
			}
		}

		issues[name] = datasetIssues
	}
	return issues
}
