package models

import (
	"time"
)

type Invoice struct {
	ID       int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CompCode string     `json:"comp_code" gorm:"not null;index"`
	Amt      float64    `json:"amt" gorm:"not null"`
	Paid     bool       `json:"paid" gorm:"not null"`
	AddDate  time.Time  `json:"add_date" gorm:"autoCreateTime"`
	PaidDate *time.Time `json:"paid_date"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
}

// InvoiceSummary is the projection returned by the list endpoint.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}
