package order

import "time"

// StatusChangedEvent is raised by ChangeStatus when an order moves to a
// different status. Events are collected on the aggregate until the unit of
// work that saved it has committed.
type StatusChangedEvent struct {
	OrderID     int64
	TableNumber int
	From        Status
	To          Status
	OccurredAt  time.Time
}
