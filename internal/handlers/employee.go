package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"issue-tracker/internal/database"
	"issue-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

func ShowAddEmployee(c *gin.Context) {
	renderAddEmployee(c, http.StatusOK, "")
}

// AddEmployee links an employee-role account to a new employee record.
// Both fields are required and an account can be linked only once.
func AddEmployee(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	userIDStr := strings.TrimSpace(c.PostForm("user_id"))

	if name == "" || userIDStr == "" {
		renderAddEmployee(c, http.StatusBadRequest, "Both fields required.")
		return
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil || userID == 0 {
		renderAddEmployee(c, http.StatusBadRequest, "Both fields required.")
		return
	}

	var count int64
	database.DB.Model(&models.Employee{}).
		Where("user_id = ?", uint(userID)).
		Count(&count)
	if count > 0 {
		renderAddEmployee(c, http.StatusBadRequest, "User already linked.")
		return
	}

	emp := models.Employee{Name: name, UserID: uint(userID)}
	if err := database.DB.Create(&emp).Error; err != nil {
		renderAddEmployee(c, http.StatusInternalServerError, "Failed to save employee.")
		return
	}

	if admin, ok := currentUser(c); ok {
		database.CreateAuditLog(admin.ID, "employee", emp.ID, "create", "name="+emp.Name)
	}

	c.Redirect(http.StatusFound, "/add_employee")
}

func renderAddEmployee(c *gin.Context, status int, errMsg string) {
	var employees []models.Employee
	database.DB.Preload("User").Find(&employees)

	// only employee-role accounts can be linked
	var users []models.User
	database.DB.Where("role = ?", models.RoleEmployee).Find(&users)

	render(c, status, "add_employee.html", gin.H{
		"employees": employees,
		"users":     users,
		"error":     errMsg,
	})
}
