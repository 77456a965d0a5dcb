package store

import (
	"errors"
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// SubmissionWithStudent embeds the submitting student for instructor views
type SubmissionWithStudent struct {
	models.Submission
	Student models.User `json:"student"`
}

// SubmissionWithAssignment embeds the assignment for a student's own list
type SubmissionWithAssignment struct {
	models.Submission
	Assignment models.Assignment `json:"assignment"`
}

// HasSubmission reports whether the student already submitted the assignment.
// This is the fast-path duplicate check; the unique index on
// (assignment_id, student_id) remains the authoritative guard under races.
func (s *Store) HasSubmission(assignmentID, studentID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Submission{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateSubmission inserts a submission, rejecting duplicates from the same
// student. A concurrent duplicate that slips past the check is caught by the
// unique index and reported the same way.
func (s *Store) CreateSubmission(submission *models.Submission) error {
	exists, err := s.HasSubmission(submission.AssignmentID, submission.StudentID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateSubmission
	}

	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	if err := s.db.Create(submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSubmission
		}
		return err
	}
	return nil
}

func (s *Store) GetSubmission(id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.Where("id = ?", id).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (s *Store) GetSubmissions(assignmentID uint) ([]SubmissionWithStudent, error) {
	var submissions []models.Submission
	if err := s.db.Where("assignment_id = ?", assignmentID).Order("id asc").Find(&submissions).Error; err != nil {
		return nil, err
	}

	result := make([]SubmissionWithStudent, len(submissions))
	for i, sub := range submissions {
		var student models.User
		s.db.Where("id = ?", sub.StudentID).First(&student)
		result[i] = SubmissionWithStudent{Submission: sub, Student: student}
	}
	return result, nil
}

func (s *Store) GetStudentSubmissions(studentID uint) ([]SubmissionWithAssignment, error) {
	var submissions []models.Submission
	if err := s.db.Where("student_id = ?", studentID).Order("id asc").Find(&submissions).Error; err != nil {
		return nil, err
	}

	result := make([]SubmissionWithAssignment, len(submissions))
	for i, sub := range submissions {
		var assignment models.Assignment
		s.db.Where("id = ?", sub.AssignmentID).First(&assignment)
		result[i] = SubmissionWithAssignment{Submission: sub, Assignment: assignment}
	}
	return result, nil
}

// GradeSubmission overwrites grade and feedback; SubmittedAt is untouched and
// no grading history is kept
func (s *Store) GradeSubmission(id uint, grade int, feedback *string) (*models.Submission, error) {
	if grade < 0 || grade > 100 {
		return nil, ValidationError{Field: "grade", Message: "grade must be between 0 and 100"}
	}

	submission, err := s.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrNotFound
	}

	submission.Grade = &grade
	submission.Feedback = feedback
	if err := s.db.Model(submission).Select("grade", "feedback").Updates(map[string]interface{}{
		"grade":    grade,
		"feedback": feedback,
	}).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// AttachSubmissionFile stores the uploaded file URL on the student's
// submission, creating the submission first when none exists yet
func (s *Store) AttachSubmissionFile(assignmentID, studentID uint, fileURL string) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		submission = models.Submission{
			AssignmentID: assignmentID,
			StudentID:    studentID,
			FileURL:      fileURL,
		}
		if err := s.CreateSubmission(&submission); err != nil {
			return nil, err
		}
		return &submission, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&submission).Update("file_url", fileURL).Error; err != nil {
		return nil, err
	}
	submission.FileURL = fileURL
	return &submission, nil
}
