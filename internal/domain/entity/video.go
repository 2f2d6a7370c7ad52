package entity

// Video представляет обучающее видео по предмету.
// DoctorID может быть nil: при удалении врача видео сохраняется без автора.
type Video struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	SubjectID         uint   `gorm:"not null;index" json:"subject"`
	Title             string `gorm:"size:200;not null" json:"title"`
	VideoURL          string `gorm:"column:video_url;size:200;not null" json:"video_url"`
	DurationInMinutes uint   `gorm:"not null" json:"duration_in_minutes"`
	IsFree            bool   `gorm:"not null;default:false" json:"is_free"`
	Logo              string `gorm:"size:255;not null;default:''" json:"logo"`
	DoctorID          *uint  `gorm:"index" json:"doctor"`
}

// TableName определяет имя таблицы для GORM
func (Video) TableName() string {
	return "videos"
}
