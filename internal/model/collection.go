package model

import "time"

// Collection is one persisted ledger collection, stored as a JSON blob keyed by name
type Collection struct {
	Name      string    `gorm:"type:varchar(50);primaryKey" json:"name"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Collection) TableName() string {
	return "collections"
}
