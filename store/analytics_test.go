package store

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/require"
)

func TestCourseAnalytics(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	alice := seedUser(t, s, "alice", models.RoleStudent)
	bob := seedUser(t, s, "bob", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	_, err := s.EnrollStudent(alice.ID, course.ID)
	require.NoError(t, err)
	_, err = s.EnrollStudent(bob.ID, course.ID)
	require.NoError(t, err)

	analytics, err := s.GetCourseAnalytics(course.ID)
	require.NoError(t, err)
	require.Equal(t, 2, analytics.TotalEnrolled)
	require.Len(t, analytics.EnrolledStudents, 2)
	require.Equal(t, "alice", analytics.EnrolledStudents[0].Username)
	require.Equal(t, alice.Name, analytics.EnrolledStudents[0].Name)
	require.NotNil(t, analytics.EnrolledStudents[0].EnrolledAt)
}

func TestCourseAnalyticsEmptyCourse(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	analytics, err := s.GetCourseAnalytics(course.ID)
	require.NoError(t, err)
	require.Equal(t, 0, analytics.TotalEnrolled)
	require.Empty(t, analytics.EnrolledStudents)
}

func TestCourseAssignmentStatsNoSubmissions(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	seedAssignment(t, s, course.ID, "homework 1", nil)

	stats, err := s.GetCourseAssignmentStats(course.ID)
	require.NoError(t, err)
	require.Len(t, stats.Assignments, 1)
	require.Equal(t, 0, stats.Assignments[0].TotalSubmissions)
	require.Equal(t, 0, stats.Assignments[0].GradedSubmissions)
	// No graded submissions means nil, not zero
	require.Nil(t, stats.Assignments[0].AverageGrade)
}

func TestCourseAssignmentStatsAverages(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	alice := seedUser(t, s, "alice", models.RoleStudent)
	bob := seedUser(t, s, "bob", models.RoleStudent)
	carol := seedUser(t, s, "carol", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")
	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)

	subA := seedSubmission(t, s, assignment.ID, alice.ID)
	subB := seedSubmission(t, s, assignment.ID, bob.ID)
	seedSubmission(t, s, assignment.ID, carol.ID) // stays ungraded

	gradeIt(t, s, subA.ID, 70)
	gradeIt(t, s, subB.ID, 85)

	stats, err := s.GetCourseAssignmentStats(course.ID)
	require.NoError(t, err)
	require.Len(t, stats.Assignments, 1)
	row := stats.Assignments[0]
	require.Equal(t, 3, row.TotalSubmissions)
	require.Equal(t, 2, row.GradedSubmissions)
	require.NotNil(t, row.AverageGrade)
	require.Equal(t, 78, *row.AverageGrade)
}

func TestInstructorDashboardCompletionRate(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	alice := seedUser(t, s, "alice", models.RoleStudent)
	bob := seedUser(t, s, "bob", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	_, err := s.EnrollStudent(alice.ID, course.ID)
	require.NoError(t, err)
	_, err = s.EnrollStudent(bob.ID, course.ID)
	require.NoError(t, err)

	a1 := seedAssignment(t, s, course.ID, "homework 1", nil)
	a2 := seedAssignment(t, s, course.ID, "homework 2", nil)

	// Alice submits both, Bob submits only the first:
	// achieved 2+1=3 of 2x2=4 possible -> 75%
	seedSubmission(t, s, a1.ID, alice.ID)
	seedSubmission(t, s, a1.ID, bob.ID)
	seedSubmission(t, s, a2.ID, alice.ID)

	dashboard, err := s.GetInstructorDashboard(instructor.ID)
	require.NoError(t, err)
	require.Equal(t, 1, dashboard.TotalCourses)
	require.Equal(t, 2, dashboard.TotalStudents)
	require.Len(t, dashboard.Courses, 1)

	row := dashboard.Courses[0]
	require.Equal(t, course.ID, row.ID)
	require.Equal(t, 2, row.EnrolledCount)
	require.Equal(t, 2, row.AssignmentCount)
	require.Equal(t, 75, row.CompletionRate)
}

func TestInstructorDashboardZeroDenominator(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	alice := seedUser(t, s, "alice", models.RoleStudent)

	// Course with enrollments but no assignments
	courseA := seedCourse(t, s, instructor.ID, "Algebra")
	_, err := s.EnrollStudent(alice.ID, courseA.ID)
	require.NoError(t, err)

	// Course with assignments but no enrollments
	courseB := seedCourse(t, s, instructor.ID, "Biology")
	seedAssignment(t, s, courseB.ID, "homework 1", nil)

	dashboard, err := s.GetInstructorDashboard(instructor.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.Courses, 2)
	for _, row := range dashboard.Courses {
		require.Equal(t, 0, row.CompletionRate)
	}
}

func TestInstructorDashboardCapsDistinctSubmitters(t *testing.T) {
	s := newTestStore(t)
	instructor := seedUser(t, s, "prof", models.RoleInstructor)
	alice := seedUser(t, s, "alice", models.RoleStudent)
	outsider := seedUser(t, s, "drifter", models.RoleStudent)
	course := seedCourse(t, s, instructor.ID, "Algebra")

	_, err := s.EnrollStudent(alice.ID, course.ID)
	require.NoError(t, err)

	assignment := seedAssignment(t, s, course.ID, "homework 1", nil)

	// A submission from a never-enrolled student must not push the rate
	// past 100
	seedSubmission(t, s, assignment.ID, alice.ID)
	seedSubmission(t, s, assignment.ID, outsider.ID)

	dashboard, err := s.GetInstructorDashboard(instructor.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.Courses, 1)
	require.Equal(t, 100, dashboard.Courses[0].CompletionRate)
}
