package models

import "time"

// Package is a purchasable bundle of lesson credits.
type Package struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Name         string    `json:"name" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	LessonsCount int       `json:"lessonsCount" gorm:"not null"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PackageSummary is the compact package view embedded in purchase responses.
type PackageSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	LessonsCount int     `json:"lessonsCount"`
	IsActive     bool    `json:"isActive"`
}

func (p *Package) Summary() PackageSummary {
	return PackageSummary{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		LessonsCount: p.LessonsCount,
		IsActive:     p.IsActive,
	}
}
