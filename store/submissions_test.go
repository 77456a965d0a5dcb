package store

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/require"
)

func TestSubmissionGateRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)

	seedSubmission(t, s, assignment.ID, student.ID)

	second := &models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "trying again",
	}
	err := s.CreateSubmission(second)
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	// The table must not have gained a row
	submissions, err := s.GetSubmissions(assignment.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
}

func TestHasSubmission(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)

	exists, err := s.HasSubmission(assignment.ID, student.ID)
	require.NoError(t, err)
	require.False(t, exists)

	seedSubmission(t, s, assignment.ID, student.ID)

	exists, err = s.HasSubmission(assignment.ID, student.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGradeSubmissionOverwritesWithoutHistory(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)
	submission := seedSubmission(t, s, assignment.ID, student.ID)

	good := "good"
	_, err := s.GradeSubmission(submission.ID, 90, &good)
	require.NoError(t, err)

	better := "better"
	graded, err := s.GradeSubmission(submission.ID, 95, &better)
	require.NoError(t, err)
	require.Equal(t, 95, *graded.Grade)
	require.Equal(t, "better", *graded.Feedback)

	// Exactly one row, carrying only the latest grade
	submissions, err := s.GetSubmissions(assignment.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	require.Equal(t, 95, *submissions[0].Grade)
	require.Equal(t, "better", *submissions[0].Feedback)
	require.Equal(t, submission.SubmittedAt.Unix(), submissions[0].SubmittedAt.Unix())
}

func TestGradeSubmissionValidatesRange(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)
	submission := seedSubmission(t, s, assignment.ID, student.ID)

	_, err := s.GradeSubmission(submission.ID, 101, nil)
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "grade", validationErr.Field)

	_, err = s.GradeSubmission(submission.ID, -1, nil)
	require.ErrorAs(t, err, &validationErr)
}

func TestGradeSubmissionNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GradeSubmission(42, 80, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttachSubmissionFile(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	student := seedUser(t, s, "stu", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)

	// No submission yet: one is created carrying the file
	created, err := s.AttachSubmissionFile(assignment.ID, student.ID, "/uploads/assignments/a.pdf")
	require.NoError(t, err)
	require.Equal(t, "/uploads/assignments/a.pdf", created.FileURL)

	// Existing submission: the file URL is replaced, no second row appears
	updated, err := s.AttachSubmissionFile(assignment.ID, student.ID, "/uploads/assignments/b.pdf")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "/uploads/assignments/b.pdf", updated.FileURL)

	submissions, err := s.GetSubmissions(assignment.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
}
