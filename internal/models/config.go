package models

// ConfigEntry is the bot's key-value settings table. The dashboard migrates
// it but does not read it.
type ConfigEntry struct {
	Key   string `gorm:"column:key;type:varchar(64);primaryKey" json:"key"`
	Value string `gorm:"column:value;type:text" json:"value"`
}

func (ConfigEntry) TableName() string { return "config" }
