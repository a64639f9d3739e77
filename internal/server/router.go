package server

import (
	"html/template"
	"net/http"

	"issue-tracker/internal/config"
	"issue-tracker/internal/handlers"
	"issue-tracker/internal/middleware"
	"issue-tracker/internal/models"
	"issue-tracker/internal/notify"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// empName resolves a nullable assignee id against the id -> name map the
// dashboard templates receive.
func empName(names map[uint]string, id *uint) string {
	if id == nil {
		return "—"
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "—"
}

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)

	r.SetFuncMap(template.FuncMap{
		"empName": empName,
		"deref": func(id *uint) uint {
			if id == nil {
				return 0
			}
			return *id
		},
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("issue_session", store))

	r.Use(middleware.InjectUser())

	hub := notify.NewHub()
	go hub.Run()
	notify.SetNotifier(hub)

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARDS
	auth.GET("/",
		middleware.RequireRole(models.RoleAdmin),
		handlers.IndexPage,
	)
	auth.GET("/employee_dashboard",
		middleware.RequireRole(models.RoleEmployee),
		handlers.EmployeeDashboard,
	)
	auth.GET("/user_dashboard",
		middleware.RequireRole(models.RoleUser),
		handlers.UserDashboard,
	)
	auth.GET("/profile",
		middleware.RequireRole(models.RoleAdmin, models.RoleEmployee),
		handlers.Profile,
	)

	// DIRECTORY (admin)
	auth.GET("/add_employee",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddEmployee,
	)
	auth.POST("/add_employee",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AddEmployee,
	)
	auth.GET("/add_user",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowAddUser,
	)
	auth.POST("/add_user",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AddUser,
	)

	// ISSUES
	auth.GET("/add_issue",
		middleware.RequireRole(models.RoleAdmin, models.RoleUser),
		handlers.ShowAddIssue,
	)
	auth.POST("/add_issue",
		middleware.RequireRole(models.RoleAdmin, models.RoleUser),
		handlers.AddIssue,
	)
	auth.GET("/view_issues",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ViewIssues,
	)
	auth.POST("/assign_issue/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AssignIssue,
	)
	auth.GET("/edit_issue/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowEditIssue,
	)
	auth.POST("/edit_issue/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.EditIssue,
	)
	auth.GET("/toggle_status/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleEmployee, models.RoleUser),
		handlers.ToggleStatus,
	)

	// AUDIT TRAIL
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListAuditLogs,
	)

	// TOAST CHANNELS
	auth.GET("/ws/admin",
		middleware.RequireRole(models.RoleAdmin),
		handlers.AdminSocket(hub),
	)
	auth.GET("/ws/employee",
		middleware.RequireRole(models.RoleEmployee),
		handlers.EmployeeSocket(hub),
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
