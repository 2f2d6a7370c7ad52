package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	"github.com/yourusername/devoyage-api/internal/handler/dto"
	"github.com/yourusername/devoyage-api/internal/handler/helper"
	"github.com/yourusername/devoyage-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами (MCQ)
type QuizHandler struct {
	quizService     *service.QuizService
	questionService *service.QuestionService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, questionService *service.QuestionService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
	}
}

// ListQuizzes возвращает список викторин
// GET /api/mcqs/?subject=ID&is_free=bool&search=
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	subjectID, err := helper.OptionalUintQuery(c, "subject")
	if err != nil {
		respondError(c, err)
		return
	}
	isFree, err := helper.OptionalBoolQuery(c, "is_free")
	if err != nil {
		respondError(c, err)
		return
	}

	quizzes, err := h.quizService.ListQuizzes(c.Request.Context(), repository.QuizFilters{
		SubjectID: subjectID,
		IsFree:    isFree,
		Search:    strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizListResponse(quizzes))
}

// CreateQuiz обрабатывает запрос на создание викторины
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if !bindJSON(c, &req) {
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuizResponse(quiz))
}

// GetQuiz возвращает информацию о викторине
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuizByID(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// UpdateQuiz обрабатывает PUT и PATCH
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if !bindJSON(c, &req) {
		return
	}

	quiz, err := h.quizService.UpdateQuiz(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// DeleteQuiz удаляет викторину вместе с вопросами и вариантами
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.quizService.DeleteQuiz(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListQuizQuestions возвращает вопросы викторины с вариантами в порядке добавления
// GET /api/mcqs/:id/questions/
func (h *QuizHandler) ListQuizQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestionsForQuiz(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions))
}

// ExportQuiz экспортирует вопросы викторины в CSV или Excel
// GET /api/mcqs/:id/export/?format=csv|xlsx
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	quizID := pathID(c)
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx", "field": "format"})
		return
	}

	quiz, err := h.quizService.GetQuizWithQuestions(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("mcq_%d_questions_%s", quizID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, quiz, filename)
	default:
		h.exportCSV(c, quiz, filename)
	}
}

var exportHeaders = []string{"№", "Вопрос", "Варианты", "Правильный ответ"}

// exportRow формирует строку выгрузки для вопроса
func exportRow(n int, q *entity.Question) []string {
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = sanitizeForExcel(o.Text)
	}
	correct := ""
	if o := q.CorrectOption(); o != nil {
		correct = sanitizeForExcel(o.Text)
	}
	return []string{strconv.Itoa(n), sanitizeForExcel(q.Text), strings.Join(texts, "; "), correct}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, quiz *entity.Quiz, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range quiz.Questions {
		writer.Write(exportRow(i+1, &quiz.Questions[i]))
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, quiz *entity.Quiz, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range quiz.Questions {
		rowNum := i + 2
		values := exportRow(i+1, &quiz.Questions[i])
		row := []interface{}{i + 1, values[1], values[2], values[3]}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
