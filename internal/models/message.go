package models

import (
	"time"

	"gorm.io/datatypes"
)

// Message direction values.
const (
	DirectionIn  = "in"  // user -> bot
	DirectionOut = "out" // bot -> user
)

// Risk levels assigned by the bot's sentiment agent.
const (
	RiskGreen = "green"
	RiskAmber = "amber"
	RiskRed   = "red"
)

// Message is one bot exchange, written by the bot process. The dashboard
// never reads or writes messages; the table exists so migrations cover the
// full shared schema.
type Message struct {
	ID         uint           `gorm:"column:id;primaryKey" json:"id"`
	ChatID     int64          `gorm:"column:chat_id;index;index:ix_messages_chat_ts,priority:1" json:"chat_id"`
	UserID     *int64         `gorm:"column:user_id;index" json:"user_id"` // nullable for bot/system msgs
	Ts         time.Time      `gorm:"column:ts;index;index:ix_messages_chat_ts,priority:2" json:"ts"`
	Direction  string         `gorm:"column:direction;type:varchar(8)" json:"direction"`
	TextHash   *string        `gorm:"column:text_hash;type:varchar(64);index" json:"text_hash"` // HMAC/SHA-256 hex
	SummaryEnc []byte         `gorm:"column:summary_enc" json:"-"`
	RagUsed    bool           `gorm:"column:rag_used;default:false" json:"rag_used"`
	TokenUsage datatypes.JSON `gorm:"column:token_usage" json:"token_usage"`

	// sentiment agent fields
	BertLabel      *string  `gorm:"column:bert_label;type:varchar(16)" json:"bert_label"`
	BertConf       *float64 `gorm:"column:bert_conf" json:"bert_conf"`
	GptSentiment   *string  `gorm:"column:gpt_sentiment;type:varchar(16)" json:"gpt_sentiment"`
	FinalSentiment *string  `gorm:"column:final_sentiment;type:varchar(16)" json:"final_sentiment"`
	RiskLevel      *string  `gorm:"column:risk_level;type:varchar(8)" json:"risk_level"` // green/amber/red
	SuicideMention *bool    `gorm:"column:suicide_mention" json:"suicide_mention"`

	Chat Chat `gorm:"foreignKey:ChatID;references:ChatID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Message) TableName() string { return "messages" }
