package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mathgame-service/internal/configs"
	"mathgame-service/internal/db"
	"mathgame-service/internal/event"
	"mathgame-service/internal/game"
	"mathgame-service/internal/handlers"
	"mathgame-service/internal/middleware"
	"mathgame-service/internal/repository"
	"mathgame-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configs.LoadConfig()
	gin.SetMode(configs.AppConfig.GinMode)

	db.InitMongo(configs.AppConfig.MongoURI)
	db.InitRedis(configs.AppConfig.RedisAddr, configs.AppConfig.RedisPassword, configs.AppConfig.RedisDB)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if configs.AppConfig.RabbitMQURI != "" && configs.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(configs.AppConfig.RabbitMQURI, configs.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, game events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(configs.AppConfig.MongoDatabase)

	// Repositories
	userRepo := repository.NewUserRepository(database)
	schoolRepo := repository.NewSchoolRepository(database)
	itemRepo := repository.NewStoreItemRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	lockoutRepo := repository.NewLockoutRepository(db.RedisClient)

	// Services
	authService := service.NewAuthService(userRepo, lockoutRepo)
	gameService := service.NewGameService(userRepo, attemptRepo, game.NewGenerator())
	leaderboardService := service.NewLeaderboardService(userRepo)
	storeService := service.NewStoreService(userRepo, itemRepo)
	schoolService := service.NewSchoolService(schoolRepo, userRepo)

	if err := storeService.EnsureDefaultCatalog(context.Background()); err != nil {
		log.Printf("Warning: failed to seed store catalog: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	storeHandler := handlers.NewStoreHandler(storeService)
	userHandler := handlers.NewUserHandler()
	schoolHandler := handlers.NewSchoolHandler(schoolService)
	adminHandler := handlers.NewAdminHandler(schoolService)

	authRequired := middleware.AuthRequired(userRepo)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("user.registered", gin.H{"timestamp": time.Now()})
			}
		})
		auth.POST("/login", authHandler.Login)
	}

	schools := r.Group("/api/schools")
	{
		schools.GET("", schoolHandler.List)
		schools.GET("/:id/grades", schoolHandler.Grades)
		schools.POST("/assign-student", authRequired, schoolHandler.AssignStudent)
	}

	gameRoutes := r.Group("/api/game", authRequired)
	{
		gameRoutes.GET("/question", gameHandler.GetQuestion)
		gameRoutes.POST("/submit", func(c *gin.Context) {
			gameHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("game.answer.submitted", gin.H{
					"user_id":   middleware.CurrentUser(c).ID,
					"timestamp": time.Now(),
				})
			}
		})
		gameRoutes.POST("/skip", func(c *gin.Context) {
			gameHandler.Skip(c)
			if publisher != nil {
				publisher.Publish("game.question.skipped", gin.H{
					"user_id":   middleware.CurrentUser(c).ID,
					"timestamp": time.Now(),
				})
			}
		})
	}

	user := r.Group("/api/user", authRequired)
	{
		user.GET("/profile", userHandler.Profile)
	}

	leaderboard := r.Group("/api/leaderboard", authRequired)
	{
		leaderboard.GET("/global", leaderboardHandler.Global)
		leaderboard.GET("/school", leaderboardHandler.School)
	}

	store := r.Group("/api/store", authRequired)
	{
		store.GET("/items", storeHandler.ListItems)
		store.POST("/buy", func(c *gin.Context) {
			storeHandler.Buy(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("store.item.purchased", gin.H{
					"user_id":   middleware.CurrentUser(c).ID,
					"timestamp": time.Now(),
				})
			}
		})
		store.POST("/equip", storeHandler.Equip)
		store.GET("/avatar", storeHandler.Avatar)
	}

	admin := r.Group("/api/admin", authRequired, middleware.AdminRequired())
	{
		admin.GET("/schools", adminHandler.ListSchools)
		admin.POST("/schools", func(c *gin.Context) {
			adminHandler.CreateSchool(c)
			if publisher != nil && c.Writer.Status() == http.StatusCreated {
				publisher.Publish("school.created", gin.H{"timestamp": time.Now()})
			}
		})
		admin.PUT("/schools/:id/renew", func(c *gin.Context) {
			adminHandler.RenewLicense(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("school.license.renewed", gin.H{
					"school_id": c.Param("id"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": configs.AppConfig.ServiceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Run(":" + configs.AppConfig.Port)
}
