package centro

import (
	"gorm.io/gorm"
)

type CentroRepository interface {
	CreateCentro(centro *CentroTreinamento) error
	GetAllCentros() ([]CentroTreinamento, error)
}

type centroRepository struct {
	db *gorm.DB
}

// NewCentroRepository creates a new instance of CentroRepository.
func NewCentroRepository(db *gorm.DB) CentroRepository {
	return &centroRepository{db: db}
}

// CreateCentro inserts the training center. Uniqueness of nome is enforced by
// the index alone; a violation surfaces as gorm.ErrDuplicatedKey.
func (r *centroRepository) CreateCentro(centro *CentroTreinamento) error {
	return r.db.Create(centro).Error
}

func (r *centroRepository) GetAllCentros() ([]CentroTreinamento, error) {
	var centros []CentroTreinamento
	if err := r.db.Find(&centros).Error; err != nil {
		return nil, err
	}
	return centros, nil
}
