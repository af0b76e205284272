package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sqliterepo "github.com/adithyasam-ganj/Fikar-Mat/internal/repositories/sqlite"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/services"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
	"github.com/gin-gonic/gin"
)

const monthKeyLayout = "2006-01-02"

type ScoreHandler struct {
	svc services.ScoreService
}

func NewScoreHandler(svc services.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

// Show renders the score editor: student picker plus six prefilled month
// inputs. Without a user_id query param the first student is selected.
func (h *ScoreHandler) Show(c *gin.Context) {
	const op = "ScoreHandler.Show"

	students, err := h.svc.Students(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if len(students) == 0 {
		c.HTML(http.StatusOK, "scores", gin.H{"Students": students})
		return
	}

	selectedID := students[0].UserID
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			renderError(c, utils.E(utils.CodeInvalidArgument, op, "invalid user_id", err))
			return
		}
		selectedID = id
	}

	sheet, err := h.svc.Sheet(c.Request.Context(), selectedID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "scores", gin.H{
		"Students":   students,
		"SelectedID": selectedID,
		"Sheet":      sheet,
		"Saved":      c.Query("saved") == "1",
	})
}

// Save persists the submitted sheet and redirects back with a success flash.
func (h *ScoreHandler) Save(c *gin.Context) {
	const op = "ScoreHandler.Save"

	userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64)
	if err != nil {
		renderError(c, utils.E(utils.CodeInvalidArgument, op, "invalid user_id", err))
		return
	}

	raw := c.PostFormMap("score")
	entries := make([]sqliterepo.ScoreEntry, 0, len(raw))
	for key, val := range raw {
		month, err := time.Parse(monthKeyLayout, key)
		if err != nil {
			renderError(c, utils.E(utils.CodeInvalidArgument, op, "invalid score month "+key, err))
			return
		}
		score, err := strconv.ParseFloat(val, 64)
		if err != nil {
			renderError(c, utils.E(utils.CodeInvalidArgument, op, "invalid score value for "+key, err))
			return
		}
		entries = append(entries, sqliterepo.ScoreEntry{Month: month, AvgScore: score})
	}

	if err := h.svc.SaveSheet(c.Request.Context(), userID, entries); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/scores?user_id=%d&saved=1", userID))
}
