package models

// Lesson is a unit of course content, ordered within its course
type Lesson struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`
	PdfURL   string `json:"pdfUrl"`
	Order    int    `json:"order" gorm:"not null;default:0"`
}
