package services

import (
	"context"
	"testing"
	"time"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		// Wednesday mid-week
		{time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC), date(2025, time.March, 10)},
		// Monday itself
		{time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), date(2025, time.March, 10)},
		// Sunday belongs to the week started the previous Monday
		{time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC), date(2025, time.March, 10)},
		// week spanning a month boundary
		{time.Date(2025, time.April, 2, 8, 0, 0, 0, time.UTC), date(2025, time.March, 31)},
	}
	for _, tc := range cases {
		if got := WeekStart(tc.now); !got.Equal(tc.want) {
			t.Fatalf("WeekStart(%v): expected %v, got %v", tc.now, tc.want, got)
		}
	}
}

func TestWeeklyStatusBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC) // Wednesday
	weekStart := date(2025, time.March, 10)                       // Monday 00:00

	onBoundary := weekStart
	justBefore := weekStart.Add(-time.Second)

	users := &fakeUserRepo{users: []models.User{
		{UserID: 1, Username: strptr("on_boundary"), LastLoginAt: &onBoundary},
		{UserID: 2, Username: strptr("just_before"), LastLoginAt: &justBefore},
		{UserID: 3, Username: strptr("never")},
	}}

	svc := &loginService{users: users, now: func() time.Time { return now }}

	rows, gotWeekStart, err := svc.WeeklyStatus(context.Background())
	if err != nil {
		t.Fatalf("weekly status: %v", err)
	}
	if !gotWeekStart.Equal(weekStart) {
		t.Fatalf("expected week start %v, got %v", weekStart, gotWeekStart)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].LoggedThisWeek {
		t.Fatalf("login exactly at Monday 00:00 should count as this week")
	}
	if rows[1].LoggedThisWeek {
		t.Fatalf("login one second before the week start should not count")
	}
	if rows[2].LoggedThisWeek {
		t.Fatalf("user without a login should not count")
	}
}

func TestWeeklyStatusEmpty(t *testing.T) {
	svc := &loginService{users: &fakeUserRepo{}, now: time.Now}

	rows, _, err := svc.WeeklyStatus(context.Background())
	if err != nil {
		t.Fatalf("weekly status: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
