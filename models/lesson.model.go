package models

import "time"

// Lesson statuses
const (
	LessonPending   = "PENDING"
	LessonConfirmed = "CONFIRMED"
	LessonCompleted = "COMPLETED"
	LessonCancelled = "CANCELLED"
)

// ValidLessonStatus reports whether status is a known lesson status.
func ValidLessonStatus(status string) bool {
	switch status {
	case LessonPending, LessonConfirmed, LessonCompleted, LessonCancelled:
		return true
	}
	return false
}

// Lesson is a scheduled session between a student and a teacher. PurchaseID
// is set when the booking was funded by a lesson credit.
type Lesson struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	StudentID  uint      `json:"studentId" gorm:"index;not null"`
	TeacherID  uint      `json:"teacherId" gorm:"index;not null"`
	Slot       time.Time `json:"slot" gorm:"not null"`
	Status     string    `json:"status" gorm:"default:'PENDING'"`
	Notes      string    `json:"notes" gorm:"default:''"`
	PurchaseID *uint     `json:"purchaseId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Student    User      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Teacher    Teacher   `json:"-" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
}
