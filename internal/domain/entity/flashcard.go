package entity

import "time"

// Flashcard представляет карточку для запоминания по предмету
type Flashcard struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	SubjectID   uint             `gorm:"not null;index" json:"subject"`
	Description string           `gorm:"type:text;not null;default:''" json:"description"`
	Subject     *Subject         `gorm:"foreignKey:SubjectID" json:"-"`
	Images      []FlashcardImage `gorm:"foreignKey:FlashcardID" json:"images"`
	CreatedAt   time.Time        `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Flashcard) TableName() string {
	return "flashcards"
}

// FlashcardImage изображение, прикрепленное к карточке
type FlashcardImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FlashcardID uint   `gorm:"not null;index" json:"-"`
	Image       string `gorm:"size:255;not null" json:"image"`
	Caption     string `gorm:"size:255;not null;default:''" json:"caption"`
}

// TableName определяет имя таблицы для GORM
func (FlashcardImage) TableName() string {
	return "flashcard_images"
}
