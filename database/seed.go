package database

import (
	"log"

	"lms/config"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the default admin, instructor and student accounts plus one
// sample course the first time the application boots. It is a no-op when the
// admin account already exists.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return nil
	}

	log.Println("Seeding default users and sample course...")

	seedUsers := []struct {
		username string
		password string
		role     models.Role
		name     string
	}{
		{"admin", "admin123", models.RoleAdmin, "System Admin"},
		{"instructor", "instructor123", models.RoleInstructor, "Prof. Smith"},
		{"student", "student123", models.RoleStudent, "John Doe"},
	}

	var instructor models.User
	for _, su := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), cfg.SaltRound)
		if err != nil {
			return err
		}
		user := models.User{
			Username: su.username,
			Password: string(hashed),
			Role:     su.role,
			Name:     su.name,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		if su.role == models.RoleInstructor {
			instructor = user
		}
	}

	course := models.Course{
		Title:        "Introduction to Web Development",
		Description:  "Learn the basics of HTML, CSS, and JavaScript.",
		InstructorID: instructor.ID,
	}
	if err := db.Create(&course).Error; err != nil {
		return err
	}

	lesson := models.Lesson{
		CourseID: course.ID,
		Title:    "HTML Basics",
		Content:  "HTML stands for HyperText Markup Language.",
		Order:    1,
	}
	return db.Create(&lesson).Error
}
