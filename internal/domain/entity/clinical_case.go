package entity

import "time"

// ClinicalCase представляет разбор клинического обследования по разделам
type ClinicalCase struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	DoctorID          uint      `gorm:"not null;index" json:"doctor_id"`
	SubjectID         uint      `gorm:"not null;index" json:"subject"`
	CaseTitle         string    `gorm:"size:255;not null" json:"case_title"`
	GatherEquipments  string    `gorm:"type:text;not null" json:"gather_equipments"`
	Introduction      string    `gorm:"type:text;not null" json:"introduction"`
	GeneralInspection string    `gorm:"type:text;not null" json:"general_inspection"`
	CloserInspection  string    `gorm:"type:text;not null" json:"closer_inspection"`
	Palpation         string    `gorm:"type:text;not null" json:"palpation"`
	FinalExamination  string    `gorm:"type:text;not null" json:"final_examination"`
	References        *string   `gorm:"type:text" json:"references"`
	Doctor            *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (ClinicalCase) TableName() string {
	return "clinical_cases"
}
