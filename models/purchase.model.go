package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Purchase statuses
const (
	PurchaseActive    = "ACTIVE"
	PurchaseCompleted = "COMPLETED"
	PurchaseExpired   = "EXPIRED"
	PurchaseRefunded  = "REFUNDED"
)

// ValidPurchaseStatus reports whether status is a known purchase status.
func ValidPurchaseStatus(status string) bool {
	switch status {
	case PurchaseActive, PurchaseCompleted, PurchaseExpired, PurchaseRefunded:
		return true
	}
	return false
}

var (
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrPurchaseNotActive   = errors.New("purchase is not active")
	ErrInsufficientCredits = errors.New("no remaining lessons in this package")
)

// Purchase records a student acquiring a package and tracks the remaining
// lesson credits. RemainingLessons never goes below zero; the CHECK backs
// the conditional update in ConsumeLessonCredit.
type Purchase struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	StudentID        uint      `json:"studentId" gorm:"index;not null"`
	PackageID        uint      `json:"packageId" gorm:"index;not null"`
	RemainingLessons int       `json:"remainingLessons" gorm:"not null;check:remaining_lessons >= 0"`
	Status           string    `json:"status" gorm:"default:'ACTIVE'"`
	Reference        string    `json:"reference"`
	PurchaseDate     time.Time `json:"purchaseDate" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	Student          User      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Package          Package   `json:"-" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// ConsumeCredit applies the credit-consumption transition in memory: only an
// ACTIVE purchase with credits left can be consumed, and draining the last
// credit completes the purchase in the same step. ConsumeLessonCredit is the
// storage-side equivalent; the two must agree.
func (p *Purchase) ConsumeCredit() error {
	if p.RemainingLessons <= 0 {
		return ErrInsufficientCredits
	}
	if p.Status != PurchaseActive {
		return ErrPurchaseNotActive
	}
	p.RemainingLessons--
	if p.RemainingLessons == 0 {
		p.Status = PurchaseCompleted
	}
	return nil
}

// ConsumeLessonCredit decrements one lesson credit as a single conditional
// UPDATE, so two concurrent calls against a purchase with one credit left
// resolve to exactly one success. The status flip to COMPLETED happens in
// the same statement; there is no observable zero-balance ACTIVE state.
func ConsumeLessonCredit(db *gorm.DB, id uint) (*Purchase, error) {
	res := db.Model(&Purchase{}).
		Where("id = ? AND status = ? AND remaining_lessons > 0", id, PurchaseActive).
		Updates(map[string]interface{}{
			"remaining_lessons": gorm.Expr("remaining_lessons - 1"),
			"status":            gorm.Expr("CASE WHEN remaining_lessons - 1 = 0 THEN ? ELSE status END", PurchaseCompleted),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// The guard did not match: figure out which condition failed.
		var p Purchase
		if err := db.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPurchaseNotFound
			}
			return nil, err
		}
		if p.RemainingLessons <= 0 {
			return nil, ErrInsufficientCredits
		}
		return nil, ErrPurchaseNotActive
	}

	var p Purchase
	if err := db.Preload("Student").Preload("Package").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
