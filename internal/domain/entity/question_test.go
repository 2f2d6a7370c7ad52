package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_CorrectOption_Found(t *testing.T) {
	// Arrange
	question := &Question{
		ID:     1,
		QuizID: 1,
		Text:   "Какой клапан расположен между левым предсердием и левым желудочком?",
		Options: []Option{
			{ID: 1, QuestionID: 1, Text: "Трикуспидальный"},
			{ID: 2, QuestionID: 1, Text: "Митральный", IsCorrect: true},
			{ID: 3, QuestionID: 1, Text: "Аортальный"},
			{ID: 4, QuestionID: 1, Text: "Легочный"},
		},
	}

	// Act
	correct := question.CorrectOption()

	// Assert
	require.NotNil(t, correct, "Правильный вариант должен быть найден")
	assert.Equal(t, uint(2), correct.ID)
	assert.Equal(t, 1, question.CountCorrect())
}

func TestQuestion_CorrectOption_NoneMarked(t *testing.T) {
	// Вопрос без правильного варианта допустим
	question := &Question{
		Options: []Option{{ID: 1, Text: "A"}, {ID: 2, Text: "B"}},
	}

	assert.Nil(t, question.CorrectOption())
	assert.Equal(t, 0, question.CountCorrect())
}

func TestQuestion_CorrectOption_ReturnsPointerIntoSlice(t *testing.T) {
	question := &Question{
		Options: []Option{{ID: 7, Text: "A", IsCorrect: true}},
	}

	correct := question.CorrectOption()
	require.NotNil(t, correct)
	correct.Text = "changed"

	assert.Equal(t, "changed", question.Options[0].Text, "CorrectOption должен указывать на элемент слайса")
}

func TestQuestion_Preview(t *testing.T) {
	short := &Question{Text: "Короткий вопрос"}
	assert.Equal(t, "Короткий вопрос", short.Preview())

	// Кириллица: обрезаем по рунам, а не по байтам
	long := &Question{Text: strings.Repeat("ж", 80)}
	assert.Equal(t, strings.Repeat("ж", 50), long.Preview())
}

func TestQuiz_String(t *testing.T) {
	quiz := Quiz{Title: "Анатомия сердца", Subject: &Subject{Name: "Кардиология"}}
	assert.Equal(t, "Кардиология - Анатомия сердца", quiz.String())

	withoutSubject := Quiz{Title: "Анатомия сердца"}
	assert.Equal(t, "Анатомия сердца", withoutSubject.String())
}

func TestOption_String(t *testing.T) {
	option := Option{QuestionID: 12, Text: "Митральный"}
	assert.Equal(t, "Option for question: 12 | Митральный", option.String())
}
