package routes

import (
	"net/http"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Logins *handlers.LoginHandler
	Scores *handlers.ScoreHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/logins")
	})

	r.GET("/logins", d.Logins.Show)
	r.GET("/scores", d.Scores.Show)
	r.POST("/scores", d.Scores.Save)
}
