package models

import (
	"time"

	"gorm.io/datatypes"
)

type Teacher struct {
	ID             uint                           `json:"id" gorm:"primarykey"`
	UserID         uint                           `json:"userId" gorm:"index;not null"`
	Bio            string                         `json:"bio"`
	Experience     string                         `json:"experience"`
	Languages      datatypes.JSONSlice[string]    `json:"languages"`
	Price          float64                        `json:"price"`
	Rating         float64                        `json:"rating" gorm:"default:0"`
	TotalStudents  int                            `json:"totalStudents" gorm:"default:0"`
	Targets        datatypes.JSONSlice[string]    `json:"targets"`
	IsActive       bool                           `json:"isActive" gorm:"default:true"`
	AvailableSlots datatypes.JSONSlice[time.Time] `json:"availableSlots"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
	User           User                           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TeacherSummary is the compact teacher view embedded in lesson responses.
type TeacherSummary struct {
	ID         uint     `json:"id"`
	UserID     uint     `json:"userId"`
	Bio        string   `json:"bio"`
	Experience string   `json:"experience"`
	Languages  []string `json:"languages"`
	Price      float64  `json:"price"`
	Rating     float64  `json:"rating"`
	IsActive   bool     `json:"isActive"`
}

func (t *Teacher) Summary() TeacherSummary {
	return TeacherSummary{
		ID:         t.ID,
		UserID:     t.UserID,
		Bio:        t.Bio,
		Experience: t.Experience,
		Languages:  t.Languages,
		Price:      t.Price,
		Rating:     t.Rating,
		IsActive:   t.IsActive,
	}
}

// RemoveSlot drops every available slot matching the exact instant.
func (t *Teacher) RemoveSlot(slot time.Time) {
	kept := make([]time.Time, 0, len(t.AvailableSlots))
	for _, s := range t.AvailableSlots {
		if !s.Equal(slot) {
			kept = append(kept, s)
		}
	}
	t.AvailableSlots = kept
}
