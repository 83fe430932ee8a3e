// centro/model.go
package centro

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CentroTreinamento represents a training center (box) athletes belong to.
type CentroTreinamento struct {
	PkID uint      `json:"-" gorm:"primaryKey;column:pk_id"`
	ID   uuid.UUID `json:"id" gorm:"type:uuid;uniqueIndex;not null"`

	Nome         string `json:"nome" gorm:"size:20;uniqueIndex;not null"`
	Endereco     string `json:"endereco" gorm:"size:60;not null"`
	Proprietario string `json:"proprietario" gorm:"size:30;not null"`
}

// TableName overrides GORM's default pluralization for the Portuguese name.
func (CentroTreinamento) TableName() string { return "centros_treinamento" }

// BeforeCreate assigns the public identifier. PkID stays internal to storage.
func (ct *CentroTreinamento) BeforeCreate(*gorm.DB) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	return nil
}
