package models

import "time"

// Assignment belongs to a course; a nil DueDate means "no deadline"
type Assignment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CourseID    uint       `json:"courseId" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	DueDate     *time.Time `json:"dueDate"`
}
