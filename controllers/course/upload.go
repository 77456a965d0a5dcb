package controllers

import (
	"lms/middleware"
	"lms/storage"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

// UploadController handles lesson media uploads and assignment file submissions
type UploadController struct {
	Store *store.Store
	Files *storage.FileStore
}

func NewUploadController(s *store.Store, files *storage.FileStore) *UploadController {
	return &UploadController{Store: s, Files: files}
}

// UploadLessonFile saves lesson media and attaches its URL to the lesson;
// videos land on videoUrl, documents on pdfUrl
func (ctl *UploadController) UploadLessonFile(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	lesson, err := ctl.Store.GetLesson(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}
	if lesson == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	fileType, err := ctl.Files.Validate(storage.CategoryLessons, file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	diskPath, fileURL := ctl.Files.Plan(storage.CategoryLessons, file.Filename)
	if err := c.SaveFile(file, diskPath); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	videoURL, pdfURL := "", ""
	if fileType == "video" {
		videoURL = fileURL
	} else {
		pdfURL = fileURL
	}
	if _, err := ctl.Store.UpdateLessonFiles(lessonID, videoURL, pdfURL); err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"fileUrl":  fileURL,
		"fileType": fileType,
	})
}

// SubmitAssignmentFile saves the uploaded file and attaches it to the
// caller's submission, creating the submission if none exists yet
func (ctl *UploadController) SubmitAssignmentFile(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(uint)

	assignment, err := ctl.Store.GetAssignment(assignmentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}
	if assignment == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	if _, err := ctl.Files.Validate(storage.CategoryAssignments, file); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	diskPath, fileURL := ctl.Files.Plan(storage.CategoryAssignments, file.Filename)
	if err := c.SaveFile(file, diskPath); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	submission, err := ctl.Store.AttachSubmissionFile(assignmentID, userID, fileURL)
	if err != nil {
		return storeErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File submitted successfully!", fiber.Map{
		"fileUrl":      fileURL,
		"submissionId": submission.ID,
	})
}
