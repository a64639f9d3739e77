// Package notify delivers advisory toast events to connected browsers.
// Delivery is best effort: events published to channels with no subscribers
// are dropped, and a failed write never affects the request that caused it.
package notify

import "strconv"

const (
	EventNewIssue      = "new_issue"
	EventIssueAssigned = "issue_assigned"
)

// Event is the payload pushed over a channel. Title carries the issue
// category, which is what the toasts display.
type Event struct {
	Event string `json:"event"`
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// AdminChannel is the channel every admin session subscribes to.
func AdminChannel() string { return "admin" }

// EmployeeChannel scopes delivery to a single employee record.
func EmployeeChannel(employeeID uint) string {
	return "emp/" + strconv.FormatUint(uint64(employeeID), 10)
}
