package store

import (
	"lms/models"

	"gorm.io/gorm"
)

// DeleteCourse removes the course and everything that exists only in relation
// to it: submissions of its assignments, then assignments, lessons,
// enrollments, and finally the course row. The whole cascade runs inside one
// transaction so a failure partway through rolls back cleanly.
func (s *Store) DeleteCourse(courseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var assignments []models.Assignment
		if err := tx.Where("course_id = ?", courseID).Find(&assignments).Error; err != nil {
			return err
		}

		for _, assignment := range assignments {
			if err := tx.Where("assignment_id = ?", assignment.ID).Delete(&models.Submission{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("course_id = ?", courseID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", courseID).Delete(&models.Course{}).Error
	})
}
