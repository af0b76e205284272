package handlers

import (
	"net/http"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/services"
	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	svc services.LoginService
}

func NewLoginHandler(svc services.LoginService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Show renders the weekly login status table.
func (h *LoginHandler) Show(c *gin.Context) {
	rows, weekStart, err := h.svc.WeeklyStatus(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "logins", gin.H{
		"Rows":      rows,
		"WeekStart": weekStart,
	})
}
