package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"issue-tracker/internal/database"
	"issue-tracker/internal/models"
	"issue-tracker/internal/notify"

	"github.com/gin-gonic/gin"
)

//
// CREATE
//

func ShowAddIssue(c *gin.Context) {
	var issues []models.Issue
	database.DB.Order("created_at desc").Find(&issues)

	var employees []models.Employee
	database.DB.Find(&employees)

	user, _ := currentUser(c)

	render(c, http.StatusOK, "add_issue.html", gin.H{
		"issues":    issues,
		"employees": employees,
		"IsAdmin":   user.Role == models.RoleAdmin,
	})
}

func AddIssue(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	clientName := strings.TrimSpace(c.PostForm("client_name"))
	if clientName == "" {
		clientName = user.Username
	}
	status := c.PostForm("status")
	if status == "" {
		status = models.StatusOpen
	}

	issue := models.Issue{
		Category:      strings.TrimSpace(c.PostForm("category")),
		OtherSpecify:  strings.TrimSpace(c.PostForm("other_specify")),
		ClientName:    clientName,
		Status:        status,
		EmployeeID:    parseEmployeeID(c.PostForm("employee_id")),
		CreatedBy:     user.ID,
		Location:      strings.TrimSpace(c.PostForm("location")),
		LocationOther: strings.TrimSpace(c.PostForm("location_other")),
	}

	if err := database.DB.Create(&issue).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save issue")
		return
	}

	database.CreateAuditLog(user.ID, "issue", issue.ID, "create", "category="+issue.Category)

	// toast for every connected admin; the write above stands regardless
	// of delivery
	notify.Publish(notify.AdminChannel(), notify.Event{
		Event: notify.EventNewIssue,
		ID:    issue.ID,
		Title: issue.Category,
	})

	c.Redirect(http.StatusFound, "/add_issue")
}

//
// LIST (admin)
//

func ViewIssues(c *gin.Context) {
	rng := c.DefaultQuery("range", "all")

	issues, err := database.IssuesSince(database.DB, database.RangeCutoff(rng, time.Now()))
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load issues")
		return
	}

	var employees []models.Employee
	database.DB.Find(&employees)

	render(c, http.StatusOK, "view_issues.html", gin.H{
		"issues":      issues,
		"employees":   database.EmployeeNames(database.DB),
		"employeesDB": employees,
		"range":       rng,
	})
}

//
// ASSIGN
//

func AssignIssue(c *gin.Context) {
	issue, ok := findIssue(c)
	if !ok {
		return
	}

	empID := parseEmployeeID(c.PostForm("emp_id"))
	if empID == nil {
		// nothing selected: leave the issue untouched
		c.Redirect(http.StatusFound, "/view_issues")
		return
	}

	issue.EmployeeID = empID
	issue.Status = models.StatusAssigned
	if err := database.DB.Save(&issue).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save issue")
		return
	}

	if user, ok := currentUser(c); ok {
		database.CreateAuditLog(user.ID, "issue", issue.ID, "assign",
			"employee_id="+strconv.FormatUint(uint64(*empID), 10))
	}

	notify.Publish(notify.EmployeeChannel(*empID), notify.Event{
		Event: notify.EventIssueAssigned,
		ID:    issue.ID,
		Title: issue.Category,
	})

	c.Redirect(http.StatusFound, "/view_issues")
}

//
// EDIT (full-field overwrite)
//

func ShowEditIssue(c *gin.Context) {
	issue, ok := findIssue(c)
	if !ok {
		return
	}

	var employees []models.Employee
	database.DB.Find(&employees)

	render(c, http.StatusOK, "edit_issue.html", gin.H{
		"issue":     issue,
		"employees": employees,
		"statuses": []string{
			models.StatusOpen,
			models.StatusAssigned,
			models.StatusSolved,
			models.StatusNotSolved,
		},
	})
}

func EditIssue(c *gin.Context) {
	issue, ok := findIssue(c)
	if !ok {
		return
	}

	issue.Category = strings.TrimSpace(c.PostForm("category"))
	issue.OtherSpecify = strings.TrimSpace(c.PostForm("other_specify"))
	issue.Location = strings.TrimSpace(c.PostForm("location"))
	issue.LocationOther = strings.TrimSpace(c.PostForm("location_other"))
	issue.ClientName = strings.TrimSpace(c.PostForm("client_name"))
	if status := c.PostForm("status"); status != "" {
		issue.Status = status
	}
	// an empty employee_id clears the assignment
	issue.EmployeeID = parseEmployeeID(c.PostForm("employee_id"))

	if err := database.DB.Save(&issue).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save issue")
		return
	}

	if user, ok := currentUser(c); ok {
		database.CreateAuditLog(user.ID, "issue", issue.ID, "edit", "category="+issue.Category)
	}

	c.Redirect(http.StatusFound, "/view_issues")
}

//
// TOGGLE Solved / Not Solved
//

func ToggleStatus(c *gin.Context) {
	issue, ok := findIssue(c)
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var empID uint
	if user.Role == models.RoleEmployee {
		if emp := database.EmployeeForUser(database.DB, user.ID); emp != nil {
			empID = emp.ID
		}
	}

	// callers outside the issue's scope are bounced to their own
	// dashboard without touching the row
	if !issue.CanToggle(user.Role, user.ID, empID) {
		c.Redirect(http.StatusFound, user.Role.LandingPath())
		return
	}

	issue.Status = issue.ToggledStatus()
	if err := database.DB.Save(&issue).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save issue")
		return
	}

	database.CreateAuditLog(user.ID, "issue", issue.ID, "toggle_status", "status="+issue.Status)

	c.Redirect(http.StatusFound, user.Role.TogglePath())
}

//
// helpers
//

func findIssue(c *gin.Context) (models.Issue, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid issue id")
		return models.Issue{}, false
	}

	var issue models.Issue
	if err := database.DB.First(&issue, id).Error; err != nil {
		c.String(http.StatusNotFound, "issue not found")
		return models.Issue{}, false
	}
	return issue, true
}

func parseEmployeeID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}
