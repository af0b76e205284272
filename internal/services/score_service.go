package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
	sqliterepo "github.com/adithyasam-ganj/Fikar-Mat/internal/repositories/sqlite"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
)

// ScoreWindowMonths is how many trailing months the score editor covers.
const ScoreWindowMonths = 6

const (
	minAvgScore = 0.0
	maxAvgScore = 100.0
)

// MonthScore is one editable cell of the score sheet.
type MonthScore struct {
	Month    time.Time
	Label    string // ex: "Mar 2025"
	Value    float64
	Existing bool
}

// ScoreSheet is the score editor state for one student.
type ScoreSheet struct {
	User   models.User
	Months []MonthScore
}

type ScoreService interface {
	Students(ctx context.Context) ([]models.User, error)
	Sheet(ctx context.Context, userID int64) (*ScoreSheet, error)
	SaveSheet(ctx context.Context, userID int64, entries []sqliterepo.ScoreEntry) error
}

type scoreService struct {
	users  sqliterepo.UserRepository
	scores sqliterepo.ScoreRepository
	now    func() time.Time
}

func NewScoreService(users sqliterepo.UserRepository, scores sqliterepo.ScoreRepository) ScoreService {
	return &scoreService{users: users, scores: scores, now: time.Now}
}

// MonthWindow returns n month-start dates ending at today's month, oldest
// first, rolling back across year boundaries.
func MonthWindow(today time.Time, n int) []time.Time {
	today = today.UTC()
	year, month := today.Year(), int(today.Month())

	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		m := month - (n - 1 - i)
		y := year
		for m <= 0 {
			m += 12
			y--
		}
		out = append(out, time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC))
	}
	return out
}

// MonthStart truncates t to the first day of its month, UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *scoreService) Students(ctx context.Context) ([]models.User, error) {
	const op = "ScoreService.Students"

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list students", err)
	}
	return users, nil
}

// Sheet builds the six-month editor for one student, prefilled from existing
// score rows. Months without a row default to 0.
func (s *scoreService) Sheet(ctx context.Context, userID int64) (*ScoreSheet, error) {
	const op = "ScoreService.Sheet"

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "student not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load student", err)
	}

	months := MonthWindow(s.now(), ScoreWindowMonths)

	existing, err := s.scores.ListByUserMonths(ctx, userID, months)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load scores", err)
	}
	byMonth := make(map[time.Time]models.Score, len(existing))
	for _, sc := range existing {
		byMonth[MonthStart(sc.Month)] = sc
	}

	sheet := &ScoreSheet{User: *user, Months: make([]MonthScore, 0, len(months))}
	for _, m := range months {
		cell := MonthScore{Month: m, Label: m.Format("Jan 2006")}
		if row, ok := byMonth[m]; ok {
			cell.Value = row.AvgScore
			cell.Existing = true
		}
		sheet.Months = append(sheet.Months, cell)
	}
	return sheet, nil
}

// SaveSheet re-validates every entry and persists the batch in one
// transaction. Months are normalized to month starts before they hit the
// repository.
func (s *scoreService) SaveSheet(ctx context.Context, userID int64, entries []sqliterepo.ScoreEntry) error {
	const op = "ScoreService.SaveSheet"

	if len(entries) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "no scores submitted", nil)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "student not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load student", err)
	}

	normalized := make([]sqliterepo.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		if e.AvgScore < minAvgScore || e.AvgScore > maxAvgScore {
			return utils.E(utils.CodeInvalidArgument, op,
				fmt.Sprintf("score %.1f for %s is outside 0-100", e.AvgScore, e.Month.Format("Jan 2006")), nil)
		}
		normalized = append(normalized, sqliterepo.ScoreEntry{
			Month:    MonthStart(e.Month),
			AvgScore: e.AvgScore,
		})
	}

	if err := s.scores.SaveBatch(ctx, userID, normalized); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save scores", err)
	}
	return nil
}
