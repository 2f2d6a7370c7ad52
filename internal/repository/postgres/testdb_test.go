package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// newTestDB открывает SQLite в памяти со схемой, совпадающей с миграциями
// (включая partial unique index на правильный вариант).
// SQLite игнорирует FOR UPDATE, поэтому здесь проверяется только последовательное поведение.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Subject{},
		&entity.Doctor{},
		&entity.Video{},
		&entity.Quiz{},
		&entity.Question{},
		&entity.Option{},
		&entity.ClinicalCase{},
		&entity.Flashcard{},
		&entity.FlashcardImage{},
		&entity.User{},
	))
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX uniq_correct_option_per_question ON options(question_id) WHERE is_correct",
	).Error)
	return db
}

// fixture наполняет базу типовым набором: предмет, викторина, вопрос с вариантами
type fixture struct {
	subject  entity.Subject
	quiz     entity.Quiz
	question entity.Question
}

func seedQuiz(t *testing.T, db *gorm.DB, optionTexts ...string) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{subject: entity.Subject{Name: "Cardiology " + t.Name()}}
	require.NoError(t, NewSubjectRepo(db).Create(ctx, &f.subject))

	f.quiz = entity.Quiz{SubjectID: f.subject.ID, Title: "Heart anatomy"}
	require.NoError(t, NewQuizRepo(db).Create(ctx, &f.quiz))

	f.question = entity.Question{QuizID: f.quiz.ID, Text: "Q1"}
	for _, text := range optionTexts {
		f.question.Options = append(f.question.Options, entity.Option{Text: text})
	}
	require.NoError(t, NewQuestionRepo(db).Create(ctx, &f.question))
	return f
}

func countCorrect(t *testing.T, db *gorm.DB, questionID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.Option{}).
		Where("question_id = ? AND is_correct = ?", questionID, true).
		Count(&n).Error)
	return n
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
