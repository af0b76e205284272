package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fikarmat_test.db")
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Chat{},
		&models.Message{},
		&models.Score{},
		&models.ConfigEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id int64, username string) {
	t.Helper()
	u := models.User{UserID: id, Username: &username, FirstSeen: time.Now().UTC()}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func monthStart(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func sixMonths() []ScoreEntry {
	months := []time.Time{
		monthStart(2024, time.October),
		monthStart(2024, time.November),
		monthStart(2024, time.December),
		monthStart(2025, time.January),
		monthStart(2025, time.February),
		monthStart(2025, time.March),
	}
	entries := make([]ScoreEntry, 0, len(months))
	for i, m := range months {
		entries = append(entries, ScoreEntry{Month: m, AvgScore: float64(50 + i)})
	}
	return entries
}

func TestSaveBatchInsertsNewRows(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 42, "asha")
	repo := NewScoreRepo(db)
	ctx := context.Background()

	entries := sixMonths()
	if err := repo.SaveBatch(ctx, 42, entries); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	var count int64
	if err := db.Model(&models.Score{}).Where("user_id = ?", 42).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 rows, got %d", count)
	}
}

func TestSaveBatchIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 42, "asha")
	repo := NewScoreRepo(db)
	ctx := context.Background()

	entries := sixMonths()
	if err := repo.SaveBatch(ctx, 42, entries); err != nil {
		t.Fatalf("first save: %v", err)
	}

	months := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		months = append(months, e.Month)
	}
	first, err := repo.ListByUserMonths(ctx, 42, months)
	if err != nil {
		t.Fatalf("list after first save: %v", err)
	}
	idByMonth := make(map[time.Time]uint, len(first))
	for _, row := range first {
		idByMonth[row.Month.UTC()] = row.ID
	}

	// Save the same window again with new values.
	for i := range entries {
		entries[i].AvgScore = float64(90 - i)
	}
	if err := repo.SaveBatch(ctx, 42, entries); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int64
	if err := db.Model(&models.Score{}).Where("user_id = ?", 42).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("second save must not duplicate rows: got %d", count)
	}

	second, err := repo.ListByUserMonths(ctx, 42, months)
	if err != nil {
		t.Fatalf("list after second save: %v", err)
	}
	for i, row := range second {
		if row.AvgScore != float64(90-i) {
			t.Fatalf("month %v: expected %v, got %v", row.Month, float64(90-i), row.AvgScore)
		}
		if want := idByMonth[row.Month.UTC()]; row.ID != want {
			t.Fatalf("month %v: update must keep row id %d, got %d", row.Month, want, row.ID)
		}
	}
}

func TestListByUserMonthsFilters(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 42, "asha")
	seedUser(t, db, 43, "bilal")
	repo := NewScoreRepo(db)
	ctx := context.Background()

	if err := repo.SaveBatch(ctx, 42, []ScoreEntry{
		{Month: monthStart(2025, time.February), AvgScore: 70},
		{Month: monthStart(2025, time.March), AvgScore: 80},
		{Month: monthStart(2024, time.June), AvgScore: 10}, // outside the window below
	}); err != nil {
		t.Fatalf("save user 42: %v", err)
	}
	if err := repo.SaveBatch(ctx, 43, []ScoreEntry{
		{Month: monthStart(2025, time.March), AvgScore: 99},
	}); err != nil {
		t.Fatalf("save user 43: %v", err)
	}

	rows, err := repo.ListByUserMonths(ctx, 42, []time.Time{
		monthStart(2025, time.February),
		monthStart(2025, time.March),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.UserID != 42 {
			t.Fatalf("got row for user %d", row.UserID)
		}
		if row.AvgScore == 99 || row.AvgScore == 10 {
			t.Fatalf("row outside filter leaked: %+v", row)
		}
	}
}
