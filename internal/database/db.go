package database

import (
	"log"
	"os"
	"strings"
	"time"

	"issue-tracker/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// open picks the driver from the DSN shape: postgres URLs and key=value
// connection strings go to the postgres driver, anything else is treated as
// a sqlite file path.
func open(dsn string) (*gorm.DB, error) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = open(dsn)
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	Seed(DB)
}

// Migrate creates or updates the three relations the tracker persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Issue{},
		&models.AuditLog{},
	)
}

// Seed creates the default accounts (admin / employee1 / user1) and makes
// sure every employee-role account has a matching employee record. Existing
// rows are left alone, so it is safe to run on every start.
func Seed(db *gorm.DB) {
	type seedUser struct {
		Username string
		Password string
		Role     models.UserRole
	}

	adminName := os.Getenv("ADMIN_USERNAME")
	if adminName == "" {
		adminName = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "admin123"
	}

	users := []seedUser{
		{Username: adminName, Password: adminPass, Role: models.RoleAdmin},
		{Username: "employee1", Password: "emp123", Role: models.RoleEmployee},
		{Username: "user1", Password: "user123", Role: models.RoleUser},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}

	// employee accounts get an employee record automatically
	var emps []models.User
	if err := db.Where("role = ?", models.RoleEmployee).Find(&emps).Error; err != nil {
		log.Printf("failed to list employee accounts: %v", err)
		return
	}
	for _, u := range emps {
		var count int64
		if err := db.Model(&models.Employee{}).
			Where("user_id = ?", u.ID).
			Count(&count).Error; err != nil {
			log.Printf("failed to check employee record for %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			continue
		}
		emp := models.Employee{Name: capitalize(u.Username), UserID: u.ID}
		if err := db.Create(&emp).Error; err != nil {
			log.Printf("failed to create employee record for %s: %v", u.Username, err)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
