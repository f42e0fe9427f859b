package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetQueueStatusQueryHandler computes the pending backlog for the current
// local calendar day. The backlog is the sum of avg_prep_time * quantity over
// every pending order placed today; the projected wait is that backlog
// divided by the number of pending orders. Orders already being prepared are
// excluded: they are off the queue and their remaining time is unknowable
// without per-order progress tracking.
//
// Example:
//
//	handler := NewGetQueueStatusQueryHandler(db)
//	status, err := handler.Handle(ctx, NewGetQueueStatusQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pending, ~%.2f min\n", status.PendingCount, status.AvgWaitMinutes)
type GetQueueStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetQueueStatusQueryHandler creates a handler for queue status queries.
// Requires a GORM database connection for query execution.
func NewGetQueueStatusQueryHandler(db *gorm.DB) GetQueueStatusQueryHandler {
	return GetQueueStatusQueryHandler{db: db}
}

// Handle executes the backlog aggregation for today's pending orders.
// An empty queue returns a zero response, not an error.
func (h GetQueueStatusQueryHandler) Handle(
	ctx context.Context,
	query GetQueueStatusQuery,
) (GetQueueStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueStatusQueryResponse{}, err
	}

	dayStart, dayEnd := localDayWindow(time.Now())

	var pendingCount int
	var backlogMinutes float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(o.id),
			COALESCE(SUM(m.avg_prep_time_minutes * o.quantity), 0)
		FROM orders o
		JOIN menu_items m ON m.id = o.item_id
		WHERE o.status = ?
		  AND o.order_time >= ? AND o.order_time < ?
	`, order.Pending.String(), dayStart, dayEnd).Row()

	if err := row.Scan(&pendingCount, &backlogMinutes); err != nil {
		return GetQueueStatusQueryResponse{}, err
	}

	response := GetQueueStatusQueryResponse{PendingCount: pendingCount}
	if pendingCount > 0 {
		response.AvgWaitMinutes = backlogMinutes / float64(pendingCount)
	}

	return response, nil
}
