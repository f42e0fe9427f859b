package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDailySummaryQueryHandler aggregates today's orders into a single report
// row. All counting and averaging happens in SQL so the handler reads one row
// regardless of the day's volume.
type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySummaryQueryHandler creates a handler for daily summary queries.
// Requires a GORM database connection for query execution.
func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

// Handle executes the aggregation over today's orders. A day with no orders
// returns a zero response, not an error.
func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (GetDailySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	dayStart, dayEnd := localDayWindow(time.Now())

	var summary GetDailySummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(o.id),
			COUNT(o.id) FILTER (WHERE o.status = @delivered),
			COUNT(o.id) FILTER (WHERE o.status = @cancelled),
			COALESCE(SUM(m.price * o.quantity) FILTER (WHERE o.status = @delivered), 0),
			COALESCE(AVG(
				EXTRACT(EPOCH FROM (o.actual_ready_time - o.order_time)) / 60.0
			) FILTER (WHERE o.actual_ready_time IS NOT NULL), 0)
		FROM orders o
		JOIN menu_items m ON m.id = o.item_id
		WHERE o.order_time >= @day_start AND o.order_time < @day_end
	`,
		map[string]interface{}{
			"delivered": order.Delivered.String(),
			"cancelled": order.Cancelled.String(),
			"day_start": dayStart,
			"day_end":   dayEnd,
		},
	).Row()

	err := row.Scan(
		&summary.TotalOrders,
		&summary.DeliveredOrders,
		&summary.CancelledOrders,
		&summary.Revenue,
		&summary.AvgFulfillmentMinutes,
	)
	if err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	return summary, nil
}
