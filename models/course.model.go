package models

// Course represents a learning course owned by an instructor
type Course struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	InstructorID uint   `json:"instructorId" gorm:"index;not null"`
}
