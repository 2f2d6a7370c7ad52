package entity

import "fmt"

// MaxOptionTextLength ограничение длины текста варианта ответа
const MaxOptionTextLength = 255

// Option представляет вариант ответа на вопрос.
// На один вопрос допускается не больше одного варианта с IsCorrect=true
// (partial unique index uniq_correct_option_per_question).
type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
}

// TableName определяет имя таблицы для GORM
func (Option) TableName() string {
	return "options"
}

func (o Option) String() string {
	return fmt.Sprintf("Option for question: %d | %s", o.QuestionID, o.Text)
}
