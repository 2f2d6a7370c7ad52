package entity

// Question представляет один вопрос внутри MCQ
type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	QuizID  uint     `gorm:"column:mcq_id;not null;index" json:"mcq"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Options []Option `gorm:"foreignKey:QuestionID" json:"options"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Preview возвращает первые 50 символов текста вопроса для списков
func (q *Question) Preview() string {
	runes := []rune(q.Text)
	if len(runes) > 50 {
		return string(runes[:50])
	}
	return q.Text
}

// CorrectOption возвращает правильный вариант ответа или nil, если он не отмечен
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// CountCorrect возвращает количество вариантов, отмеченных как правильные.
// Для сохраненного вопроса значение всегда 0 или 1.
func (q *Question) CountCorrect() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
