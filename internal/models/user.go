package models

import (
	"fmt"
	"time"
)

// User is a student account created and maintained by the Telegram bot
// process. The dashboard only reads these rows.
type User struct {
	UserID       int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"` // Telegram user id
	Username     *string   `gorm:"column:username;type:varchar(64)" json:"username"`
	FirstSeen    time.Time `gorm:"column:first_seen" json:"first_seen"`
	LanguageCode *string   `gorm:"column:language_code;type:varchar(8)" json:"language_code"`
	StartedBot   bool      `gorm:"column:started_bot;default:true" json:"started_bot"`

	// nudge related timestamps, written by the bot
	LastLoginAt      *time.Time `gorm:"column:last_login_at;index" json:"last_login_at"`
	LastScoreNudgeAt *time.Time `gorm:"column:last_score_nudge_at;index" json:"last_score_nudge_at"`
	ExamDate         *time.Time `gorm:"column:exam_date;index" json:"exam_date"`
}

func (User) TableName() string { return "users" }

// DisplayLabel is the student picker label: "<user_id> - <username or 'no username'>".
func (u User) DisplayLabel() string {
	name := "no username"
	if u.Username != nil && *u.Username != "" {
		name = *u.Username
	}
	return fmt.Sprintf("%d - %s", u.UserID, name)
}
