package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Category is the content directory an upload lands in
type Category string

const (
	CategoryLessons     Category = "lessons"
	CategoryAssignments Category = "assignments"
)

const (
	maxLessonSize     = 100 * 1024 * 1024 // videos allowed
	maxAssignmentSize = 50 * 1024 * 1024
)

// Per-category MIME allowlists; anything else is rejected with a
// descriptive error
var lessonMimes = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "document",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "document",
	"video/mp4":       "video",
	"video/webm":      "video",
	"video/quicktime": "video",
}

var assignmentMimes = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "document",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "document",
	"application/zip": "archive",
	"text/plain":      "text",
	"image/jpeg":      "image",
	"image/png":       "image",
}

// FileStore saves uploads under <baseDir>/<category>/ and hands back the
// public /uploads URL for each saved file
type FileStore struct {
	baseDir string
}

// NewFileStore creates the category directories under baseDir
func NewFileStore(baseDir string) (*FileStore, error) {
	for _, category := range []Category{CategoryLessons, CategoryAssignments} {
		if err := os.MkdirAll(filepath.Join(baseDir, string(category)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (fs *FileStore) BaseDir() string {
	return fs.baseDir
}

// Validate checks the upload's MIME type and size against the category's
// allowlist and limit, returning the coarse file type (pdf, video, ...)
func (fs *FileStore) Validate(category Category, file *multipart.FileHeader) (string, error) {
	mimes := assignmentMimes
	maxSize := int64(maxAssignmentSize)
	allowed := "PDF, DOC, DOCX, ZIP, TXT, JPEG, PNG"
	if category == CategoryLessons {
		mimes = lessonMimes
		maxSize = maxLessonSize
		allowed = "PDF, DOC, DOCX, MP4, WEBM, MOV"
	}

	contentType := file.Header.Get("Content-Type")
	fileType, ok := mimes[contentType]
	if !ok {
		return "", fmt.Errorf("invalid file type %q. Allowed: %s", contentType, allowed)
	}
	if file.Size > maxSize {
		return "", fmt.Errorf("file too large: limit is %d MB", maxSize/(1024*1024))
	}
	return fileType, nil
}

// Plan generates a unique filename and returns where to save the file on
// disk along with its public URL
func (fs *FileStore) Plan(category Category, originalName string) (diskPath, fileURL string) {
	prefix := "submission"
	if category == CategoryLessons {
		prefix = "lesson"
	}
	filename := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), filepath.Ext(originalName))
	diskPath = filepath.Join(fs.baseDir, string(category), filename)
	fileURL = fmt.Sprintf("/uploads/%s/%s", category, filename)
	return diskPath, fileURL
}
