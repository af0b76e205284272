package services

import (
	"context"
	"time"

	sqliterepo "github.com/adithyasam-ganj/Fikar-Mat/internal/repositories/sqlite"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
)

// LoginStatus is one row of the weekly login table.
type LoginStatus struct {
	UserID         int64
	Username       string
	LastLoginAt    *time.Time
	LoggedThisWeek bool
}

type LoginService interface {
	WeeklyStatus(ctx context.Context) ([]LoginStatus, time.Time, error)
}

type loginService struct {
	users sqliterepo.UserRepository
	now   func() time.Time
}

func NewLoginService(users sqliterepo.UserRepository) LoginService {
	return &loginService{users: users, now: time.Now}
}

// WeekStart returns Monday 00:00 UTC of the week containing now.
func WeekStart(now time.Time) time.Time {
	now = now.UTC()
	offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
	day := now.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// WeeklyStatus flags every student by whether their last login falls inside
// the current week. The week-start boundary itself counts as logged in.
func (s *loginService) WeeklyStatus(ctx context.Context) ([]LoginStatus, time.Time, error) {
	const op = "LoginService.WeeklyStatus"

	weekStart := WeekStart(s.now())

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, weekStart, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}

	rows := make([]LoginStatus, 0, len(users))
	for _, u := range users {
		name := ""
		if u.Username != nil {
			name = *u.Username
		}
		rows = append(rows, LoginStatus{
			UserID:         u.UserID,
			Username:       name,
			LastLoginAt:    u.LastLoginAt,
			LoggedThisWeek: u.LastLoginAt != nil && !u.LastLoginAt.Before(weekStart),
		})
	}
	return rows, weekStart, nil
}
