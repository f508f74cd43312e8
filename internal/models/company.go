package models

type Company struct {
	Code        string `json:"code" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

// CompanySummary is the projection returned by the list endpoint.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company plus its related invoice IDs and industry names.
type CompanyDetail struct {
	Company
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industries"`
}
