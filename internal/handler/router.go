package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/middleware"
)

// Router собирает обработчики и middleware и регистрирует маршруты /api
type Router struct {
	Quiz     *QuizHandler
	Question *QuestionHandler
	Option   *OptionHandler
	Catalog  *CatalogHandler
	Content  *ContentHandler
	Auth     *AuthHandler
	Health   *HealthHandler

	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter может быть nil, если Redis недоступен
	RateLimiter *middleware.RateLimiter
	LoginLimit  middleware.RateLimitConfig
	WriteLimit  middleware.RateLimitConfig
}

// crudHandlers набор обработчиков ресурса с маршрутами /<name>/ и /<name>/:id/
type crudHandlers struct {
	list, create, get, update, remove gin.HandlerFunc
}

// registerCRUD регистрирует маршруты ресурса со слешем на конце.
// guard применяется ко всем маршрутам и сам пропускает безопасные методы.
func registerCRUD(group *gin.RouterGroup, name string, guard gin.HandlerFunc, h crudHandlers) {
	res := group.Group("/"+name, guard)
	{
		res.GET("/", h.list)
		res.POST("/", h.create)

		withID := res.Group("/:id", middleware.ExtractUintParam("id", ctxPathID))
		{
			withID.GET("/", h.get)
			withID.PUT("/", h.update)
			withID.PATCH("/", h.update)
			withID.DELETE("/", h.remove)
		}
	}
}

// Register настраивает маршруты на роутере Gin
func (r *Router) Register(engine *gin.Engine) {
	if r.Health != nil {
		engine.GET("/healthz", r.Health.Health)
	}

	api := engine.Group("/api")
	if r.RateLimiter != nil {
		api.Use(r.RateLimiter.LimitWrites(r.WriteLimit))
	}

	// Аутентификация
	authGroup := api.Group("/auth")
	{
		login := []gin.HandlerFunc{r.Auth.Login}
		if r.RateLimiter != nil {
			login = append([]gin.HandlerFunc{r.RateLimiter.Limit(r.LoginLimit)}, login...)
		}
		authGroup.POST("/login", login...)
	}

	// Учебный контент: чтение открыто, запись для аутентифицированных
	authed := r.AuthMiddleware.AuthenticatedOrReadOnly()
	registerCRUD(api, "mcqs", authed, crudHandlers{
		list:   r.Quiz.ListQuizzes,
		create: r.Quiz.CreateQuiz,
		get:    r.Quiz.GetQuiz,
		update: r.Quiz.UpdateQuiz,
		remove: r.Quiz.DeleteQuiz,
	})
	quizExtra := api.Group("/mcqs/:id", middleware.ExtractUintParam("id", ctxPathID))
	{
		quizExtra.GET("/questions/", r.Quiz.ListQuizQuestions)
		// Выгрузка содержит ключ ответов: только для сотрудников
		quizExtra.GET("/export/", r.AuthMiddleware.RequireAuth(), r.AuthMiddleware.AdminOnly(), r.Quiz.ExportQuiz)
	}

	registerCRUD(api, "questions", authed, crudHandlers{
		list:   r.Question.ListQuestions,
		create: r.Question.CreateQuestion,
		get:    r.Question.GetQuestion,
		update: r.Question.UpdateQuestion,
		remove: r.Question.DeleteQuestion,
	})
	registerCRUD(api, "options", authed, crudHandlers{
		list:   r.Option.ListOptions,
		create: r.Option.CreateOption,
		get:    r.Option.GetOption,
		update: r.Option.UpdateOption,
		remove: r.Option.DeleteOption,
	})
	registerCRUD(api, "clinical-cases", authed, crudHandlers{
		list:   r.Content.ListClinicalCases,
		create: r.Content.CreateClinicalCase,
		get:    r.Content.GetClinicalCase,
		update: r.Content.UpdateClinicalCase,
		remove: r.Content.DeleteClinicalCase,
	})
	registerCRUD(api, "flashcards", authed, crudHandlers{
		list:   r.Content.ListFlashcards,
		create: r.Content.CreateFlashcard,
		get:    r.Content.GetFlashcard,
		update: r.Content.UpdateFlashcard,
		remove: r.Content.DeleteFlashcard,
	})

	// Справочники и видео: запись только для сотрудников
	staff := r.AuthMiddleware.StaffOrReadOnly()
	registerCRUD(api, "subjects", staff, crudHandlers{
		list:   r.Catalog.ListSubjects,
		create: r.Catalog.CreateSubject,
		get:    r.Catalog.GetSubject,
		update: r.Catalog.UpdateSubject,
		remove: r.Catalog.DeleteSubject,
	})
	registerCRUD(api, "doctors", staff, crudHandlers{
		list:   r.Catalog.ListDoctors,
		create: r.Catalog.CreateDoctor,
		get:    r.Catalog.GetDoctor,
		update: r.Catalog.UpdateDoctor,
		remove: r.Catalog.DeleteDoctor,
	})
	registerCRUD(api, "videos", staff, crudHandlers{
		list:   r.Content.ListVideos,
		create: r.Content.CreateVideo,
		get:    r.Content.GetVideo,
		update: r.Content.UpdateVideo,
		remove: r.Content.DeleteVideo,
	})
}
