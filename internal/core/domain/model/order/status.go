package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the kitchen and payment progress of an order.
//
// There is no enforced transition order: staff may move an order between
// any two valid statuses, for example back from Ready to Waiting.
//
//	Waiting <──> Ready <──> Paid
//	   ^                      ^
//	   └──────────────────────┘
type Status int

const (
	// Unknown catches uninitialized or unparsable statuses.
	Unknown Status = iota

	// Waiting is the initial status: the kitchen is preparing the order.
	Waiting

	// Ready means the dishes have been served or are ready to be.
	Ready

	// Paid means the table has settled the bill. Only paid orders count as revenue.
	Paid
)

// statusCodes are the persisted and URL representations of each status.
//
//nolint:exhaustive // Unknown has no code
var statusCodes = map[Status]string{
	Waiting: "waiting",
	Ready:   "ready",
	Paid:    "paid",
}

// statusLabels are the names staff see and filter by.
//
//nolint:exhaustive // Unknown has no label
var statusLabels = map[Status]string{
	Waiting: "Ожидание",
	Ready:   "Готово",
	Paid:    "Оплачено",
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Waiting, Ready, Paid}
}

// Labels returns the human-readable labels of all valid statuses in lifecycle order.
func Labels() []string {
	labels := make([]string, 0, len(statusLabels))
	for _, s := range Statuses() {
		labels = append(labels, statusLabels[s])
	}
	return labels
}

// ParseStatus converts a status code such as "ready" into a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of waiting, ready, paid", code),
	)
}

// StatusFromLabel maps a human-readable label such as "Готово" to its Status.
// The match is exact; ok is false for anything else.
func StatusFromLabel(label string) (Status, bool) {
	for s, l := range statusLabels {
		if l == label {
			return s, true
		}
	}
	return Unknown, false
}

// Validate checks that s is one of Waiting, Ready or Paid.
func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, or "unknown" for invalid values.
func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return "unknown"
}

// Label returns the human-readable label, or an empty string for invalid values.
func (s Status) Label() string {
	return statusLabels[s]
}

// ChangeTo validates a transition from s to target. Every valid target is
// reachable from every valid status, including itself.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}
