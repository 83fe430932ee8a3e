// categoria/model.go
package categoria

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria represents a competition weight class.
type Categoria struct {
	PkID uint      `json:"-" gorm:"primaryKey;column:pk_id"`
	ID   uuid.UUID `json:"id" gorm:"type:uuid;uniqueIndex;not null"`
	Nome string    `json:"nome" gorm:"size:40;uniqueIndex;not null"`
}

// TableName overrides GORM's default pluralization for the Portuguese name.
func (Categoria) TableName() string { return "categorias" }

// BeforeCreate assigns the public identifier. PkID stays internal to storage.
func (c *Categoria) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
