package entity

// Doctor представляет преподавателя (автора видео и клинических случаев)
type Doctor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// TableName определяет имя таблицы для GORM
func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) String() string {
	return d.Name
}
