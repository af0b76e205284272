package handlers

import (
	"errors"
	"net/http"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
	"github.com/gin-gonic/gin"
)

// renderError maps an error onto the operator-facing error page.
func renderError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	msg := http.StatusText(status)

	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		msg = ae.Message
	}

	_ = c.Error(err)
	c.HTML(status, "error", gin.H{
		"Status":  status,
		"Message": msg,
	})
}
