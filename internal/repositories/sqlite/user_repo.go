package sqlite

import (
	"context"
	"errors"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
	"gorm.io/gorm"
)

type UserRepository interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) ListAll(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *userRepo) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}
