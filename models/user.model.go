package models

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleInstructor || r == RoleStudent
}

// Action names a guarded operation
type Action string

const (
	ActionManageCourses   Action = "courses:manage"   // create/delete courses, lessons, assignments
	ActionGradeSubmission Action = "submissions:grade"
	ActionViewSubmissions Action = "submissions:view"
	ActionViewAnalytics   Action = "analytics:view" // instructor dashboards and course analytics
	ActionUploadLesson    Action = "lessons:upload"
)

// CanPerform centralizes the role policy so handlers never compare role strings inline
func (r Role) CanPerform(a Action) bool {
	switch a {
	case ActionManageCourses, ActionGradeSubmission, ActionViewSubmissions:
		return r == RoleInstructor || r == RoleAdmin
	case ActionViewAnalytics, ActionUploadLesson:
		return r == RoleInstructor
	}
	return false
}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"type:text;not null;default:'student'"`
	Name     string `json:"name" gorm:"not null"`
}
