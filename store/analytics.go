package store

import (
	"math"
	"time"

	"lms/models"
)

// EnrolledStudent is one row of the per-course enrollment detail
type EnrolledStudent struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	EnrolledAt *time.Time `json:"enrolledAt"`
}

// CourseAnalytics is the enrollment view an instructor sees for one course
type CourseAnalytics struct {
	EnrolledStudents []EnrolledStudent `json:"enrolledStudents"`
	TotalEnrolled    int               `json:"totalEnrolled"`
}

// AssignmentStats summarizes submissions for a single assignment.
// AverageGrade is nil (not 0) when nothing has been graded, unlike the
// student-facing zero default.
type AssignmentStats struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	DueDate           *time.Time `json:"dueDate"`
	TotalSubmissions  int        `json:"totalSubmissions"`
	GradedSubmissions int        `json:"gradedSubmissions"`
	AverageGrade      *int       `json:"averageGrade"`
}

// CourseAssignmentStats wraps the per-assignment rows for one course
type CourseAssignmentStats struct {
	Assignments []AssignmentStats `json:"assignments"`
}

// DashboardCourse is one course row on the instructor dashboard
type DashboardCourse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	EnrolledCount   int    `json:"enrolledCount"`
	AssignmentCount int    `json:"assignmentCount"`
	CompletionRate  int    `json:"completionRate"`
}

// InstructorDashboard aggregates every course the instructor owns
type InstructorDashboard struct {
	Courses       []DashboardCourse `json:"courses"`
	TotalStudents int               `json:"totalStudents"`
	TotalCourses  int               `json:"totalCourses"`
}

// GetCourseAnalytics joins enrollments with their students for one course
func (s *Store) GetCourseAnalytics(courseID uint) (*CourseAnalytics, error) {
	enrollments, err := s.GetCourseEnrollments(courseID)
	if err != nil {
		return nil, err
	}

	students := make([]EnrolledStudent, len(enrollments))
	for i, e := range enrollments {
		students[i] = EnrolledStudent{
			ID:         e.Student.ID,
			Name:       e.Student.Name,
			Username:   e.Student.Username,
			EnrolledAt: e.EnrolledAt,
		}
	}

	return &CourseAnalytics{EnrolledStudents: students, TotalEnrolled: len(students)}, nil
}

// GetCourseAssignmentStats computes submission counts and rounded grade
// averages for every assignment in the course
func (s *Store) GetCourseAssignmentStats(courseID uint) (*CourseAssignmentStats, error) {
	assignments, err := s.GetAssignments(courseID)
	if err != nil {
		return nil, err
	}

	stats := make([]AssignmentStats, len(assignments))
	for i, assignment := range assignments {
		var submissions []models.Submission
		if err := s.db.Where("assignment_id = ?", assignment.ID).Find(&submissions).Error; err != nil {
			return nil, err
		}

		sum, graded := 0, 0
		for _, sub := range submissions {
			if sub.Grade != nil {
				sum += *sub.Grade
				graded++
			}
		}

		var averageGrade *int
		if graded > 0 {
			avg := int(math.Round(float64(sum) / float64(graded)))
			averageGrade = &avg
		}

		stats[i] = AssignmentStats{
			ID:                assignment.ID,
			Title:             assignment.Title,
			DueDate:           assignment.DueDate,
			TotalSubmissions:  len(submissions),
			GradedSubmissions: graded,
			AverageGrade:      averageGrade,
		}
	}

	return &CourseAssignmentStats{Assignments: stats}, nil
}

// GetInstructorDashboard computes enrollment, assignment and completion
// figures for every course the instructor owns.
//
// Completion rate counts, per assignment, the distinct students who submitted,
// capped at the enrolled count so duplicate submissions or stale enrollments
// cannot overstate completion; the capped counts are summed across assignments
// and divided by enrolled x assignments.
func (s *Store) GetInstructorDashboard(instructorID uint) (*InstructorDashboard, error) {
	courses, err := s.GetInstructorCourses(instructorID)
	if err != nil {
		return nil, err
	}

	dashboardCourses := make([]DashboardCourse, len(courses))
	for i, course := range courses {
		analytics, err := s.GetCourseAnalytics(course.ID)
		if err != nil {
			return nil, err
		}
		assignments, err := s.GetAssignments(course.ID)
		if err != nil {
			return nil, err
		}

		totalPossible := analytics.TotalEnrolled * len(assignments)
		achieved := 0
		for _, assignment := range assignments {
			var submissions []models.Submission
			if err := s.db.Where("assignment_id = ?", assignment.ID).Find(&submissions).Error; err != nil {
				return nil, err
			}
			uniqueStudents := make(map[uint]bool)
			for _, sub := range submissions {
				uniqueStudents[sub.StudentID] = true
			}
			distinct := len(uniqueStudents)
			if distinct > analytics.TotalEnrolled {
				distinct = analytics.TotalEnrolled
			}
			achieved += distinct
		}

		completionRate := 0
		if totalPossible > 0 {
			completionRate = int(math.Round(float64(achieved) / float64(totalPossible) * 100))
			if completionRate > 100 {
				completionRate = 100
			}
			if completionRate < 0 {
				completionRate = 0
			}
		}

		dashboardCourses[i] = DashboardCourse{
			ID:              course.ID,
			Title:           course.Title,
			EnrolledCount:   analytics.TotalEnrolled,
			AssignmentCount: len(assignments),
			CompletionRate:  completionRate,
		}
	}

	totalStudents, err := s.GetInstructorTotalStudents(instructorID)
	if err != nil {
		return nil, err
	}

	return &InstructorDashboard{
		Courses:       dashboardCourses,
		TotalStudents: totalStudents,
		TotalCourses:  len(courses),
	}, nil
}
