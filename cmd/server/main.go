package main

import (
	"log"

	"github.com/n-tawaki/quiz-system/internal/config"
	"github.com/n-tawaki/quiz-system/internal/database"
	"github.com/n-tawaki/quiz-system/internal/handlers"
	"github.com/n-tawaki/quiz-system/internal/middleware"
	"github.com/n-tawaki/quiz-system/internal/services"
	"github.com/n-tawaki/quiz-system/internal/session"
	"github.com/n-tawaki/quiz-system/internal/ws"

	_ "github.com/n-tawaki/quiz-system/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Live Quiz Session API
// @version         1.0
// @description     Broadcasts quiz state over WebSocket, records answers with timing, serves scores and rankings
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	holder := session.NewHolder()

	stateService := services.NewStateService(db, holder)
	questionService := services.NewQuestionService(db)
	answerService := services.NewAnswerService(db)
	statsService := services.NewStatsService(db)

	stateHandler := handlers.NewStateHandler(stateService, hub)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	wsHandler := handlers.NewWSHandler(hub, holder)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", wsHandler.HandleWebSocket)

	r.GET("/state", stateHandler.GetState)
	if cfg.AuthEnabled() {
		authService := services.NewAuthService(cfg.JWTSecret, cfg.AdminPassword)
		authHandler := handlers.NewAuthHandler(authService)
		r.POST("/auth/login", authHandler.Login)
		r.POST("/state", middleware.JWTAuth(authService), stateHandler.SetState)
		log.Println("admin auth enabled for POST /state")
	} else {
		r.POST("/state", stateHandler.SetState)
	}

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/answers", answerHandler.SubmitAnswer)
	r.GET("/scores/:user_name", statsHandler.GetScore)
	r.GET("/answers/:user_name/:question_id", statsHandler.GetUserAnswer)
	r.GET("/answer_check/:question_id", statsHandler.GetChoiceDistribution)
	r.GET("/ranking", statsHandler.GetRanking)
	r.GET("/correct_answer/:question_id", questionHandler.GetCorrectAnswer)

	r.NoRoute(handlers.Static(cfg.StaticDir))

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
