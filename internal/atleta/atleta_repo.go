package atleta

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AtletaRepository interface {
	CreateAtleta(atleta *Atleta) error
	GetAllAtletas(nome, cpf string) ([]Atleta, error)
	GetAtletaByID(id uuid.UUID) (*Atleta, error)
}

type atletaRepository struct {
	db *gorm.DB
}

// NewAtletaRepository creates a new instance of AtletaRepository.
func NewAtletaRepository(db *gorm.DB) AtletaRepository {
	return &atletaRepository{db: db}
}

// CreateAtleta inserts the athlete inside a transaction. Duplicate CPF and
// dangling category/center references are detected at commit by the storage
// constraints, never pre-checked, so a failed create leaves no partial row.
func (r *atletaRepository) CreateAtleta(atleta *Atleta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Categoria", "CentroTreinamento").Create(atleta).Error
	})
}

// GetAllAtletas returns athletes matching the optional filters. nome is a
// case-insensitive substring match, cpf an exact match; both combine with AND.
// Categoria and CentroTreinamento are preloaded in batched queries, so the
// query count stays constant regardless of how many rows match.
func (r *atletaRepository) GetAllAtletas(nome, cpf string) ([]Atleta, error) {
	var atletas []Atleta

	query := r.db.Preload("Categoria").Preload("CentroTreinamento")
	if nome != "" {
		query = query.Where("atletas.nome ILIKE ?", "%"+nome+"%")
	}
	if cpf != "" {
		query = query.Where("cpf = ?", cpf)
	}

	if err := query.Find(&atletas).Error; err != nil {
		return nil, err
	}
	return atletas, nil
}

func (r *atletaRepository) GetAtletaByID(id uuid.UUID) (*Atleta, error) {
	var atleta Atleta
	err := r.db.Preload("Categoria").Preload("CentroTreinamento").
		Where("id = ?", id).First(&atleta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &atleta, nil
}
