package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// Каскадное удаление выполняется явно внутри транзакции вызывающего кода:
// сначала блокируются родительские строки, затем удаляются зависимые.

// deleteQuestionsTx удаляет вопросы и все их варианты
func deleteQuestionsTx(tx *gorm.DB, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&entity.Option{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&entity.Question{}).Error
}

// deleteQuizzesTx удаляет викторины вместе с вопросами и вариантами
func deleteQuizzesTx(tx *gorm.DB, quizIDs []uint) error {
	if len(quizIDs) == 0 {
		return nil
	}
	var questionIDs []uint
	if err := forUpdate(tx.Model(&entity.Question{})).
		Where("mcq_id IN ?", quizIDs).
		Order("id").
		Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if err := deleteQuestionsTx(tx, questionIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", quizIDs).Delete(&entity.Quiz{}).Error
}

// deleteFlashcardsTx удаляет карточки и их изображения
func deleteFlashcardsTx(tx *gorm.DB, flashcardIDs []uint) error {
	if len(flashcardIDs) == 0 {
		return nil
	}
	if err := tx.Where("flashcard_id IN ?", flashcardIDs).Delete(&entity.FlashcardImage{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", flashcardIDs).Delete(&entity.Flashcard{}).Error
}

// pluckIDs возвращает id строк модели, удовлетворяющих условию
func pluckIDs(tx *gorm.DB, model interface{}, query string, args ...interface{}) ([]uint, error) {
	var ids []uint
	err := tx.Model(model).Where(query, args...).Order("id").Pluck("id", &ids).Error
	return ids, err
}
