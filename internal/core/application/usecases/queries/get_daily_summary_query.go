package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var (
	ErrGetDailySummaryQueryIsNotConstructed = errors.New(
		"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
	)
)

// GetDailySummaryQuery asks for today's operational totals: order counts by
// outcome, revenue from delivered orders and the average time from placement
// to the food being ready.
type GetDailySummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery creates a daily summary query. "Today" is resolved
// by the handler at execution time.
func NewGetDailySummaryQuery() GetDailySummaryQuery {
	return GetDailySummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

// GetDailySummaryQueryResponse aggregates today's orders.
// Revenue counts delivered orders only: cancelled food is not sold and
// everything else is still in flight. AvgFulfillmentMinutes averages
// order-to-ready time over orders that reached the ready stamp.
type GetDailySummaryQueryResponse struct {
	TotalOrders           int
	DeliveredOrders       int
	CancelledOrders       int
	Revenue               float64
	AvgFulfillmentMinutes float64
}
