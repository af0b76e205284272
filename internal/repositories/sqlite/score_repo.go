package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreEntry is one month's value in a save batch.
type ScoreEntry struct {
	Month    time.Time
	AvgScore float64
}

type ScoreRepository interface {
	ListByUserMonths(ctx context.Context, userID int64, months []time.Time) ([]models.Score, error)
	SaveBatch(ctx context.Context, userID int64, entries []ScoreEntry) error
}

type scoreRepo struct {
	db *gorm.DB
}

func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) ListByUserMonths(ctx context.Context, userID int64, months []time.Time) ([]models.Score, error) {
	var rows []models.Score
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month IN ?", userID, months).
		Order("month ASC").
		Find(&rows).Error
	return rows, err
}

// SaveBatch writes every entry in one transaction: update avg_score in place
// when a row for (user_id, month) already exists, insert otherwise.
func (r *scoreRepo) SaveBatch(ctx context.Context, userID int64, entries []ScoreEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			var existing models.Score
			err := tx.Where("user_id = ? AND month = ?", userID, e.Month).
				Take(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).
					Update("avg_score", e.AvgScore).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				row := models.Score{
					UserID:    userID,
					Month:     e.Month,
					AvgScore:  e.AvgScore,
					CreatedAt: time.Now().UTC(),
				}
				if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
