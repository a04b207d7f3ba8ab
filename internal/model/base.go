package model

import (
	"github.com/google/uuid"
)

// BaseModel handles the ID (UUID) shared by every ledger entity
type BaseModel struct {
	ID uuid.UUID `json:"id"`
}

// AssignID generates a fresh UUID, called by the ledger right before an append
func (base *BaseModel) AssignID() {
	base.ID = uuid.New()
}
