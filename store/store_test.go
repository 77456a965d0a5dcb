package store

import (
	"fmt"
	"testing"
	"time"

	"lms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a throwaway in-memory database, one per test
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Lesson{},
		&models.Assignment{},
		&models.Submission{},
	))

	return New(db)
}

func seedUser(t *testing.T, s *Store, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "hashed",
		Role:     role,
		Name:     "Test " + username,
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func seedCourse(t *testing.T, s *Store, instructorID uint, title string) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:        title,
		Description:  "description of " + title,
		InstructorID: instructorID,
	}
	require.NoError(t, s.CreateCourse(course))
	return course
}

func seedAssignment(t *testing.T, s *Store, courseID uint, title string, dueDate *time.Time) *models.Assignment {
	t.Helper()
	assignment := &models.Assignment{
		CourseID:    courseID,
		Title:       title,
		Description: "do " + title,
		DueDate:     dueDate,
	}
	require.NoError(t, s.CreateAssignment(assignment))
	return assignment
}

func seedSubmission(t *testing.T, s *Store, assignmentID, studentID uint) *models.Submission {
	t.Helper()
	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      "my answer",
	}
	require.NoError(t, s.CreateSubmission(submission))
	return submission
}

func TestGetUserAbsentIsNilNotError(t *testing.T) {
	s := newTestStore(t)

	user, err := s.GetUser(12345)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGetCoursesEmbedsInstructor(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	seedCourse(t, s, instructor.ID, "Algebra")

	courses, err := s.GetCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Algebra", courses[0].Title)
	require.Equal(t, "prof", courses[0].Instructor.Username)
}

func TestEnrollStudentRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	enrollment, err := s.EnrollStudent(student.ID, course.ID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.EnrolledAt)

	_, err = s.EnrollStudent(student.ID, course.ID)
	require.ErrorIs(t, err, ErrDuplicateEnrollment)
}

func TestGetLessonsOrdered(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	require.NoError(t, s.CreateLesson(&models.Lesson{CourseID: course.ID, Title: "second", Order: 2}))
	require.NoError(t, s.CreateLesson(&models.Lesson{CourseID: course.ID, Title: "first", Order: 1}))

	lessons, err := s.GetLessons(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	require.Equal(t, "first", lessons[0].Title)
	require.Equal(t, "second", lessons[1].Title)
}

func TestUpdateLessonFiles(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	lesson := &models.Lesson{CourseID: course.ID, Title: "intro", Order: 1}
	require.NoError(t, s.CreateLesson(lesson))

	updated, err := s.UpdateLessonFiles(lesson.ID, "/uploads/lessons/video.mp4", "")
	require.NoError(t, err)
	require.Equal(t, "/uploads/lessons/video.mp4", updated.VideoURL)

	fetched, err := s.GetLesson(lesson.ID)
	require.NoError(t, err)
	require.Equal(t, "/uploads/lessons/video.mp4", fetched.VideoURL)
	require.Empty(t, fetched.PdfURL)

	_, err = s.UpdateLessonFiles(99999, "x", "")
	require.ErrorIs(t, err, ErrNotFound)
}
