package handlers

import (
	"issue-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and makes the authenticated user available to every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := currentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUsername"] = u.Username
		data["CurrentUserRole"] = u.Role
	}

	c.HTML(status, tmpl, data)
}

// currentUser returns the account middleware.InjectUser placed in the
// request context.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	switch u := uVal.(type) {
	case models.User:
		return u, true
	case *models.User:
		return *u, true
	}
	return models.User{}, false
}
