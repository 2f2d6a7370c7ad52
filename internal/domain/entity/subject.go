package entity

// Subject представляет учебный предмет (кардиология, анатомия и т.д.).
// Владеет викторинами, видео, клиническими случаями и карточками.
type Subject struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// TableName определяет имя таблицы для GORM
func (Subject) TableName() string {
	return "subjects"
}

func (s Subject) String() string {
	return s.Name
}
