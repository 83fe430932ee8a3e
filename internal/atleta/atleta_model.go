// atleta/model.go
package atleta

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruanmedina/workout-api/internal/categoria"
	"github.com/ruanmedina/workout-api/internal/centro"
)

// Atleta represents a competitor. Every athlete belongs to exactly one
// category and exactly one training center.
type Atleta struct {
	PkID uint      `json:"-" gorm:"primaryKey;column:pk_id"`
	ID   uuid.UUID `json:"id" gorm:"type:uuid;uniqueIndex;not null"`

	Nome   string  `json:"nome" gorm:"size:50;not null"`
	CPF    string  `json:"cpf" gorm:"column:cpf;size:11;not null;uniqueIndex:uq_atleta_cpf"`
	Idade  int     `json:"idade" gorm:"not null"`
	Peso   float64 `json:"peso" gorm:"not null"`
	Altura float64 `json:"altura" gorm:"not null"`
	Sexo   string  `json:"sexo" gorm:"size:1;not null"`

	CategoriaID         uint `json:"categoria_id" gorm:"not null"`
	CentroTreinamentoID uint `json:"centro_treinamento_id" gorm:"not null"`

	Categoria         categoria.Categoria      `json:"-" gorm:"foreignKey:CategoriaID;references:PkID"`
	CentroTreinamento centro.CentroTreinamento `json:"-" gorm:"foreignKey:CentroTreinamentoID;references:PkID"`
}

// TableName overrides GORM's default pluralization for the Portuguese name.
func (Atleta) TableName() string { return "atletas" }

// BeforeCreate assigns the public identifier. PkID stays internal to storage.
func (a *Atleta) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
