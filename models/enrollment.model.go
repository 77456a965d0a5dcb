package models

import "time"

// Enrollment grants a student access to a course
type Enrollment struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	StudentID  uint       `json:"studentId" gorm:"index;not null"`
	CourseID   uint       `json:"courseId" gorm:"index;not null"`
	EnrolledAt *time.Time `json:"enrolledAt"`
}
