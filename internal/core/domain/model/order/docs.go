// Package order provides the Order aggregate of the restaurant system: a table's
// request for dishes, its computed total and its lifecycle status.
//
// The package includes:
//   - Order: the aggregate root holding table number, items, total and status
//   - Item: a single dish with its price
//   - Status: waiting, ready or paid, plus the human-readable labels staff filter by
//   - StatusChangedEvent: raised whenever an order moves to a different status
//
// Key business rules:
//   - Table numbers are positive
//   - New orders have at least one item and always start in Waiting
//   - The total always equals the sum of item prices and is recomputed on every change
//   - Any status can be reached from any other status
package order
