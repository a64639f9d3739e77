package handlers

import (
	"net/http"
	"strings"

	"issue-tracker/internal/database"
	"issue-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowAddUser(c *gin.Context) {
	renderAddUser(c, http.StatusOK, "")
}

// AddUser creates an account of any role. Usernames are unique.
func AddUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))
	role := models.UserRole(c.PostForm("role"))

	if username == "" || password == "" {
		renderAddUser(c, http.StatusBadRequest, "Username & password required.")
		return
	}
	if !role.Valid() {
		renderAddUser(c, http.StatusBadRequest, "Unknown role.")
		return
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count)
	if count > 0 {
		renderAddUser(c, http.StatusBadRequest, "Username exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		renderAddUser(c, http.StatusInternalServerError, "Failed to save user.")
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Email:        strings.TrimSpace(c.PostForm("email")),
		Phone:        strings.TrimSpace(c.PostForm("phone")),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		renderAddUser(c, http.StatusInternalServerError, "Failed to save user.")
		return
	}

	if admin, ok := currentUser(c); ok {
		database.CreateAuditLog(admin.ID, "user", user.ID, "create", "username="+user.Username)
	}

	c.Redirect(http.StatusFound, "/add_user")
}

func renderAddUser(c *gin.Context, status int, errMsg string) {
	var users []models.User
	database.DB.Order("id desc").Find(&users)

	render(c, status, "add_user.html", gin.H{
		"users": users,
		"error": errMsg,
	})
}
