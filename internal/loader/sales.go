package loader

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"shopcli/internal/dataset"
	"shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

// PrepareSalesData builds the central sales table: order items inner-joined
// to orders on order_id, restricted to the given order statuses (the
// session's configured filter when statusFilter is nil), with cleaned
// timestamps, time features from the purchase timestamp and delivery_days.
// Requires the order_items and orders datasets to be loaded.
func (s *Session) PrepareSalesData(ctx context.Context, statusFilter []string) (*dataset.Table, error) {
	ctx, span := s.tracer.Start(ctx, "loader.PrepareSalesData")
	defer span.End()

	if len(statusFilter) == 0 {
		statusFilter = s.statusFilter
	}

	items, ok := s.raw[domain.TableOrderItems]
	if !ok {
		return nil, errors.NewMissingDataError(domain.TableOrderItems)
	}
	orders, ok := s.raw[domain.TableOrders]
	if !ok {
		return nil, errors.NewMissingDataError(domain.TableOrders)
	}

	itemCols, err := items.Select(
		domain.ColOrderID,
		domain.ColOrderItemID,
		domain.ColProductID,
		domain.ColPrice,
		domain.ColFreightValue,
	)
	if err != nil {
		return nil, errors.NewValidationError("order_items dataset: " + err.Error())
	}

	sales, err := itemCols.InnerJoin(orders, domain.ColOrderID,
		domain.ColCustomerID,
		domain.ColOrderStatus,
		domain.ColPurchaseTimestamp,
		domain.ColDeliveredCustomerDate,
		domain.ColEstimatedDeliveryDate,
	)
	if err != nil {
		return nil, errors.NewValidationError("join order_items with orders: " + err.Error())
	}

	wanted := make(map[string]bool, len(statusFilter))
	for _, status := range statusFilter {
		wanted[status] = true
	}
	sales = sales.Filter(func(r dataset.Row) bool {
		status, ok := r.String(domain.ColOrderStatus)
		return ok && wanted[status]
	})

	sales = s.CleanDatetimeColumns(sales, domain.DatetimeColumns())
	sales = s.ExtractTimeFeatures(sales, domain.ColPurchaseTimestamp)

	// Whole-day delivery duration, truncated toward zero: a sub-24h
	// delivery counts as 0 days.
	sales = sales.WithColumn(domain.ColDeliveryDays, func(r dataset.Row) dataset.Value {
		delivered, ok := r.Time(domain.ColDeliveredCustomerDate)
		if !ok {
			return nil
		}
		purchased, ok := r.Time(domain.ColPurchaseTimestamp)
		if !ok {
			return nil
		}
		return int(delivered.Sub(purchased).Hours() / 24)
	})

	s.logger.InfoContext(ctx, "prepared sales data",
		slog.Int("rows", sales.NumRows()),
		slog.Any("status_filter", statusFilter))
	span.SetAttributes(attribute.Int("sales_rows", sales.NumRows()))
	return sales, nil
}

// AnalysisOptions controls CreateAnalysisDataset. The three Include flags
// default to true via DefaultAnalysisOptions; a Month without a Year is
// ignored, matching FilterByDateRange.
type AnalysisOptions struct {
	Year               int
	Month              int
	IncludeGeographic  bool
	IncludeProductInfo bool
	IncludeReviews     bool
}

// DefaultAnalysisOptions enables every optional join with no date filter.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		IncludeGeographic:  true,
		IncludeProductInfo: true,
		IncludeReviews:     true,
	}
}

// CreateAnalysisDataset builds the widest analysis table: sales data,
// optionally date-filtered, left-joined with product categories, customer
// geography and review scores. Each join is independent and only applies
// when enabled and its dataset is loaded; unmatched sales rows are kept with
// nulls in the joined columns.
func (s *Session) CreateAnalysisDataset(ctx context.Context, opts AnalysisOptions) (*dataset.Table, error) {
	ctx, span := s.tracer.Start(ctx, "loader.CreateAnalysisDataset")
	defer span.End()

	analysis, err := s.PrepareSalesData(ctx, nil)
	if err != nil {
		return nil, err
	}

	if opts.Year != 0 || opts.Month != 0 {
		analysis, err = s.FilterByDateRange(analysis, DateRange{Year: opts.Year, Month: opts.Month})
		if err != nil {
			return nil, err
		}
	}

	if opts.IncludeProductInfo {
		if products, ok := s.raw[domain.TableProducts]; ok {
			analysis, err = analysis.LeftJoin(products, domain.ColProductID, domain.ColProductCategoryName)
			if err != nil {
				return nil, errors.NewValidationError("join products: " + err.Error())
			}
		}
	}

	if opts.IncludeGeographic {
		if customers, ok := s.raw[domain.TableCustomers]; ok {
			analysis, err = analysis.LeftJoin(customers, domain.ColCustomerID,
				domain.ColCustomerState, domain.ColCustomerCity)
			if err != nil {
				return nil, errors.NewValidationError("join customers: " + err.Error())
			}
		}
	}

	if opts.IncludeReviews {
		if reviews, ok := s.raw[domain.TableReviews]; ok {
			analysis, err = analysis.LeftJoin(reviews, domain.ColOrderID, domain.ColReviewScore)
			if err != nil {
				return nil, errors.NewValidationError("join reviews: " + err.Error())
			}
		}
	}

	s.logger.InfoContext(ctx, "created analysis dataset",
		slog.Int("rows", analysis.NumRows()),
		slog.Int("columns", analysis.NumCols()))
	span.SetAttributes(
		attribute.Int("analysis_rows", analysis.NumRows()),
		attribute.Int("analysis_columns", analysis.NumCols()),
	)
	return analysis, nil
}
