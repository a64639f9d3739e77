package handlers

import (
	"net/http"

	"issue-tracker/internal/database"
	"issue-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// IndexPage is the admin landing page.
func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

// EmployeeDashboard lists the issues assigned to the caller's employee
// record. An employee account without a record sees an empty list.
func EmployeeDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var issues []models.Issue
	if emp := database.EmployeeForUser(database.DB, user.ID); emp != nil {
		database.DB.
			Where("employee_id = ?", emp.ID).
			Order("created_at desc").
			Find(&issues)
	}

	render(c, http.StatusOK, "employee_dashboard.html", gin.H{
		"issues": issues,
	})
}

// UserDashboard lists only the issues the caller created.
func UserDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var issues []models.Issue
	database.DB.
		Where("created_by = ?", user.ID).
		Order("created_at desc").
		Find(&issues)

	render(c, http.StatusOK, "user_dashboard.html", gin.H{
		"issues":    issues,
		"employees": database.EmployeeNames(database.DB),
	})
}

// Profile shows the caller's account, plus the employee record for
// employee-role callers.
func Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var employee *models.Employee
	if user.Role == models.RoleEmployee {
		employee = database.EmployeeForUser(database.DB, user.ID)
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"user":     user,
		"role":     user.Role,
		"employee": employee,
	})
}
