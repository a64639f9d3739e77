package database

import (
	"time"

	"issue-tracker/internal/models"

	"gorm.io/gorm"
)

// EmployeeForUser returns the employee record linked to an account, or nil
// when the account has none.
func EmployeeForUser(db *gorm.DB, userID uint) *models.Employee {
	var emp models.Employee
	if err := db.Where("user_id = ?", userID).First(&emp).Error; err != nil {
		return nil
	}
	return &emp
}

// IssuesSince lists issues created at or after the cutoff, newest first.
// A zero cutoff means no filter.
func IssuesSince(db *gorm.DB, cutoff time.Time) ([]models.Issue, error) {
	q := db.Order("created_at desc")
	if !cutoff.IsZero() {
		q = q.Where("created_at >= ?", cutoff)
	}
	var issues []models.Issue
	err := q.Find(&issues).Error
	return issues, err
}

// RangeCutoff translates the view_issues range parameter into a creation-time
// cutoff: "today" is local midnight UTC, "week" the trailing seven days,
// anything else (including "all") is unfiltered.
func RangeCutoff(rng string, now time.Time) time.Time {
	switch rng {
	case "today":
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case "week":
		return now.UTC().Add(-7 * 24 * time.Hour)
	}
	return time.Time{}
}

// EmployeeNames builds the id -> display name map the templates use.
func EmployeeNames(db *gorm.DB) map[uint]string {
	var emps []models.Employee
	if err := db.Find(&emps).Error; err != nil {
		return map[uint]string{}
	}
	names := make(map[uint]string, len(emps))
	for _, e := range emps {
		names[e.ID] = e.Name
	}
	return names
}
