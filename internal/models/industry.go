package models

type Industry struct {
	Code     string `json:"code" gorm:"primaryKey"`
	Industry string `json:"industry" gorm:"not null"`
}

// CompanyIndustry is the many-to-many join row between companies and
// industries. It has no lifecycle of its own beyond the rows it references.
type CompanyIndustry struct {
	CompCode string `json:"comp_code" gorm:"primaryKey"`
	IndCode  string `json:"ind_code" gorm:"primaryKey"`

	Company  *Company  `json:"-" gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
	Industry *Industry `json:"-" gorm:"foreignKey:IndCode;references:Code;constraint:OnDelete:CASCADE"`
}
