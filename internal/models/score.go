package models

import "time"

// Score is one student's average exam score for one month. Month is always
// the first day of that month; (user_id, month) is unique so the save path's
// upsert has a structural backstop.
type Score struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;index;uniqueIndex:idx_scores_user_month,priority:1" json:"user_id"`
	Month     time.Time `gorm:"column:month;type:date;index;uniqueIndex:idx_scores_user_month,priority:2" json:"month"`
	AvgScore  float64   `gorm:"column:avg_score" json:"avg_score"` // 0-100
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Score) TableName() string { return "scores" }
