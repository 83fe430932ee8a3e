package categoria

import (
	"gorm.io/gorm"
)

type CategoriaRepository interface {
	CreateCategoria(categoria *Categoria) error
	GetAllCategorias() ([]Categoria, error)
}

type categoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository creates a new instance of CategoriaRepository.
func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

// CreateCategoria inserts the category. There is no existence pre-check: the
// unique index on nome is the single source of truth, and a violation comes
// back as gorm.ErrDuplicatedKey with nothing written.
func (r *categoriaRepository) CreateCategoria(categoria *Categoria) error {
	return r.db.Create(categoria).Error
}

func (r *categoriaRepository) GetAllCategorias() ([]Categoria, error) {
	var categorias []Categoria
	if err := r.db.Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}
