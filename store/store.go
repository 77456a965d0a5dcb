package store

import (
	"errors"
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// Store is the single persistence gateway for the application. It is
// constructed once at startup and injected into every controller, so tests
// can substitute a throwaway database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and seeding
func (s *Store) DB() *gorm.DB {
	return s.db
}

// --- Users ---

func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// GetUser returns nil without error when the user does not exist
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// --- Courses ---

// CourseWithInstructor embeds the owning instructor for course listings
type CourseWithInstructor struct {
	models.Course
	Instructor models.User `json:"instructor"`
}

func (s *Store) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *Store) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *Store) GetCourses() ([]CourseWithInstructor, error) {
	var courses []models.Course
	if err := s.db.Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}

	result := make([]CourseWithInstructor, len(courses))
	for i, course := range courses {
		var instructor models.User
		s.db.Where("id = ?", course.InstructorID).First(&instructor)
		result[i] = CourseWithInstructor{Course: course, Instructor: instructor}
	}
	return result, nil
}

func (s *Store) GetInstructorCourses(instructorID uint) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Where("instructor_id = ?", instructorID).Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// --- Lessons ---

func (s *Store) CreateLesson(lesson *models.Lesson) error {
	return s.db.Create(lesson).Error
}

func (s *Store) GetLesson(id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.Where("id = ?", id).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lesson, nil
}

func (s *Store) GetLessons(courseID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := s.db.Where("course_id = ?", courseID).Order("\"order\" asc, id asc").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// UpdateLessonFiles attaches uploaded media URLs to a lesson
func (s *Store) UpdateLessonFiles(id uint, videoURL, pdfURL string) (*models.Lesson, error) {
	lesson, err := s.GetLesson(id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if videoURL != "" {
		updates["video_url"] = videoURL
	}
	if pdfURL != "" {
		updates["pdf_url"] = pdfURL
	}
	if len(updates) == 0 {
		return lesson, nil
	}
	if err := s.db.Model(lesson).Updates(updates).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *Store) DeleteLesson(id uint) error {
	return s.db.Where("id = ?", id).Delete(&models.Lesson{}).Error
}

// --- Assignments ---

func (s *Store) CreateAssignment(assignment *models.Assignment) error {
	return s.db.Create(assignment).Error
}

func (s *Store) GetAssignment(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *Store) GetAssignments(courseID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.Where("course_id = ?", courseID).Order("id asc").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// --- Enrollments ---

// EnrollmentWithCourse embeds the course for a student's enrollment list
type EnrollmentWithCourse struct {
	models.Enrollment
	Course models.Course `json:"course"`
}

// EnrollmentWithStudent embeds the student for an instructor's roster view
type EnrollmentWithStudent struct {
	models.Enrollment
	Student models.User `json:"student"`
}

// EnrollStudent rejects duplicate (student, course) pairs
func (s *Store) EnrollStudent(studentID, courseID uint) (*models.Enrollment, error) {
	var existing models.Enrollment
	err := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEnrollment
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	enrollment := models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: &now,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Store) GetStudentEnrollments(studentID uint) ([]EnrollmentWithCourse, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("student_id = ?", studentID).Order("id asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course models.Course
		s.db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{Enrollment: e, Course: course}
	}
	return result, nil
}

func (s *Store) GetCourseEnrollments(courseID uint) ([]EnrollmentWithStudent, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ?", courseID).Order("id asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	result := make([]EnrollmentWithStudent, len(enrollments))
	for i, e := range enrollments {
		var student models.User
		s.db.Where("id = ?", e.StudentID).First(&student)
		result[i] = EnrollmentWithStudent{Enrollment: e, Student: student}
	}
	return result, nil
}
