// Package queries contains read-only operations over the canteen store.
// Query handlers bypass the aggregates and read projections directly from
// the database connection, following the CQRS split: no query ever mutates
// state, takes a lock, or caches a result — every call recomputes from live
// data, and snapshot-read consistency is sufficient because the views poll.
package queries

import (
	"errors"
	"time"

	"canteen/internal/pkg/guard"
)

var (
	ErrGetQueueStatusQueryIsNotConstructed = errors.New(
		"GetQueueStatusQuery must be created via NewGetQueueStatusQuery constructor",
	)
)

// GetQueueStatusQuery asks how busy the kitchen is right now: the number of
// pending orders placed today and the projected wait a new order would face.
//
// Example:
//
//	query := NewGetQueueStatusQuery()
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders ahead of you, about %.0f minutes\n",
//	    status.PendingCount, status.AvgWaitMinutes)
type GetQueueStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueueStatusQuery creates a queue status query. The query is
// parameterless; "today" is resolved by the handler at execution time.
func NewGetQueueStatusQuery() GetQueueStatusQuery {
	return GetQueueStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQueueStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueStatusQueryIsNotConstructed)
}

// GetQueueStatusQueryResponse is the current backlog snapshot.
// AvgWaitMinutes is full precision; rounding for display happens at the
// presentation boundary.
type GetQueueStatusQueryResponse struct {
	PendingCount   int
	AvgWaitMinutes float64
}

// localDayWindow returns [midnight, next midnight) of t's calendar day in
// t's location. The queue and summary scopes are a local calendar day, not a
// rolling 24h window.
func localDayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
