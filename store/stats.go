package store

import (
	"math"
	"time"

	"lms/models"
)

// StudentStats is the per-student summary shown on the student dashboard
type StudentStats struct {
	AverageGrade        int `json:"averageGrade"`
	UpcomingAssignments int `json:"upcomingAssignments"`
}

// GetStudentStats folds the student's submissions and enrolled-course
// assignments in memory. AverageGrade is 0 (not null) when nothing is graded.
func (s *Store) GetStudentStats(studentID uint) (*StudentStats, error) {
	var submissions []models.Submission
	if err := s.db.Where("student_id = ?", studentID).Find(&submissions).Error; err != nil {
		return nil, err
	}

	sum, graded := 0, 0
	submittedAssignments := make(map[uint]bool, len(submissions))
	for _, sub := range submissions {
		submittedAssignments[sub.AssignmentID] = true
		if sub.Grade != nil {
			sum += *sub.Grade
			graded++
		}
	}

	averageGrade := 0
	if graded > 0 {
		averageGrade = int(math.Round(float64(sum) / float64(graded)))
	}

	var enrollments []models.Enrollment
	if err := s.db.Where("student_id = ?", studentID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	// An assignment is upcoming when the student has not submitted and it is
	// either undated or not yet due
	now := time.Now()
	upcoming := 0
	for _, e := range enrollments {
		assignments, err := s.GetAssignments(e.CourseID)
		if err != nil {
			return nil, err
		}
		for _, a := range assignments {
			if submittedAssignments[a.ID] {
				continue
			}
			if a.DueDate == nil || !a.DueDate.Before(now) {
				upcoming++
			}
		}
	}

	return &StudentStats{AverageGrade: averageGrade, UpcomingAssignments: upcoming}, nil
}

// GetInstructorTotalStudents counts distinct students enrolled across all of
// the instructor's courses; a student in two courses counts once
func (s *Store) GetInstructorTotalStudents(instructorID uint) (int, error) {
	courses, err := s.GetInstructorCourses(instructorID)
	if err != nil {
		return 0, err
	}
	if len(courses) == 0 {
		return 0, nil
	}

	courseIDs := make([]uint, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	var enrollments []models.Enrollment
	if err := s.db.Where("course_id IN ?", courseIDs).Find(&enrollments).Error; err != nil {
		return 0, err
	}

	uniqueStudents := make(map[uint]bool)
	for _, e := range enrollments {
		uniqueStudents[e.StudentID] = true
	}
	return len(uniqueStudents), nil
}
