package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adithyasam-ganj/Fikar-Mat/config"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/api/handlers"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/api/middleware"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/api/routes"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/logger"
	sqliterepo "github.com/adithyasam-ganj/Fikar-Mat/internal/repositories/sqlite"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	db, err := config.InitSQLite()
	if err != nil {
		log.WithError(err).Fatal("SQLite init error")
	}
	log.Info("SQLite connected")

	userRepo := sqliterepo.NewUserRepo(db)
	scoreRepo := sqliterepo.NewScoreRepo(db)

	loginSvc := services.NewLoginService(userRepo)
	scoreSvc := services.NewScoreService(userRepo, scoreRepo)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.SetHTMLTemplate(handlers.Templates())

	routes.RegisterRoutes(r, routes.Deps{
		Logins: handlers.NewLoginHandler(loginSvc),
		Scores: handlers.NewScoreHandler(scoreSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
