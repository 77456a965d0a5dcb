package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	"lms/storage"
	"lms/store"
	"lms/utils"
	validators "lms/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up every course, lesson, assignment, submission,
// enrollment and analytics route
func SetupCourseRoutes(app *fiber.App, s *store.Store, mailer *utils.Mailer, files *storage.FileStore) {
	courseCtl := controllers.NewCourseController(s)
	submissionCtl := controllers.NewSubmissionController(s, mailer)
	enrollmentCtl := controllers.NewEnrollmentController(s, mailer)
	statsCtl := controllers.NewStatsController(s)
	analyticsCtl := controllers.NewAnalyticsController(s)
	uploadCtl := controllers.NewUploadController(s, files)

	api := app.Group("/api")

	// Course catalog (public)
	api.Get("/courses", courseCtl.GetAllCourses)
	api.Get("/courses/:id", validators.CourseID(), courseCtl.GetCourseDetails)

	// Course management
	api.Post("/courses", middleware.JWTMiddleware, middleware.RequireAction(models.ActionManageCourses),
		validators.CreateCourse(), courseCtl.CreateCourse)
	api.Delete("/courses/:id", middleware.JWTMiddleware, middleware.RequireAction(models.ActionManageCourses),
		validators.CourseID(), courseCtl.DeleteCourse)

	// Lessons
	api.Post("/courses/:courseId/lessons", middleware.JWTMiddleware, middleware.RequireAction(models.ActionManageCourses),
		validators.CourseIDInPath(), validators.CreateLesson(), courseCtl.CreateLesson)
	api.Delete("/lessons/:lessonId", middleware.JWTMiddleware, middleware.RequireAction(models.ActionManageCourses),
		validators.LessonID(), courseCtl.DeleteLesson)
	api.Post("/lessons/:lessonId/upload", middleware.JWTMiddleware, middleware.RequireAction(models.ActionUploadLesson),
		validators.LessonID(), uploadCtl.UploadLessonFile)

	// Assignments
	api.Post("/courses/:courseId/assignments", middleware.JWTMiddleware, middleware.RequireAction(models.ActionManageCourses),
		validators.CourseIDInPath(), validators.CreateAssignment(), courseCtl.CreateAssignment)

	// Submissions
	api.Post("/assignments/:assignmentId/submissions", middleware.JWTMiddleware,
		validators.AssignmentID(), validators.CreateSubmission(), submissionCtl.SubmitAssignment)
	api.Post("/assignments/:assignmentId/submit-file", middleware.JWTMiddleware,
		validators.AssignmentID(), uploadCtl.SubmitAssignmentFile)
	api.Get("/assignments/:assignmentId/submissions", middleware.JWTMiddleware, middleware.RequireAction(models.ActionViewSubmissions),
		validators.AssignmentID(), submissionCtl.ListSubmissions)
	api.Patch("/submissions/:id/grade", middleware.JWTMiddleware, middleware.RequireAction(models.ActionGradeSubmission),
		validators.SubmissionID(), validators.GradeSubmission(), submissionCtl.GradeSubmission)

	// Enrollments
	api.Post("/courses/:courseId/enroll", middleware.JWTMiddleware,
		validators.CourseIDInPath(), enrollmentCtl.Enroll)
	api.Get("/enrollments", middleware.JWTMiddleware, enrollmentCtl.ListEnrollments)

	// Stats
	api.Get("/student/stats", middleware.JWTMiddleware, statsCtl.StudentStats)
	api.Get("/student/submissions", middleware.JWTMiddleware, statsCtl.StudentSubmissions)
	api.Get("/instructor/stats", middleware.JWTMiddleware, statsCtl.InstructorStats)

	// Analytics
	api.Get("/courses/:courseId/analytics", middleware.JWTMiddleware, middleware.RequireAction(models.ActionViewAnalytics),
		validators.CourseIDInPath(), analyticsCtl.CourseAnalytics)
	api.Get("/courses/:courseId/assignment-stats", middleware.JWTMiddleware, middleware.RequireAction(models.ActionViewAnalytics),
		validators.CourseIDInPath(), analyticsCtl.AssignmentStats)
	api.Get("/instructor/dashboard", middleware.JWTMiddleware, middleware.RequireAction(models.ActionViewAnalytics),
		analyticsCtl.InstructorDashboard)
}
