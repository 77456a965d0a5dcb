package models

import "time"

// Submission is a student's response to an assignment. The composite unique
// index is the authoritative one-submission-per-student guard; the procedural
// check in the store is only a fast path.
type Submission struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	AssignmentID uint       `json:"assignmentId" gorm:"not null;uniqueIndex:idx_submission_once"`
	StudentID    uint       `json:"studentId" gorm:"not null;uniqueIndex:idx_submission_once"`
	Content      string     `json:"content"`
	FileURL      string     `json:"fileUrl"`
	Grade        *int       `json:"grade"` // 0-100 once graded
	Feedback     *string    `json:"feedback"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}
