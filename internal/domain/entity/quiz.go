package entity

import "fmt"

// Quiz представляет набор тестовых вопросов (MCQ) по предмету
type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	SubjectID uint       `gorm:"not null;index" json:"subject"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	IsFree    bool       `gorm:"not null;default:false" json:"is_free"`
	Logo      string     `gorm:"size:255;not null;default:''" json:"logo"`
	Subject   *Subject   `gorm:"foreignKey:SubjectID" json:"-"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "mcqs"
}

func (q Quiz) String() string {
	if q.Subject != nil {
		return fmt.Sprintf("%s - %s", q.Subject.Name, q.Title)
	}
	return q.Title
}
