package categoria

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruanmedina/workout-api/pkg/responses"
	"github.com/ruanmedina/workout-api/pkg/validator"
)

// CategoriaController handles API requests related to weight categories.
type CategoriaController struct {
	repo CategoriaRepository
}

// NewCategoriaController creates a new CategoriaController.
func NewCategoriaController(repo CategoriaRepository) *CategoriaController {
	return &CategoriaController{repo: repo}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateCategoriaRequest struct {
	Nome string `json:"nome" binding:"required,max=40"`
}

type CategoriaOut struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

// --- Handlers ---

// CreateCategoria godoc
// @Summary Create a weight category
// @Tags Categorias
// @Accept json
// @Produce json
// @Param categoria body CreateCategoriaRequest true "Category creation request"
// @Success 201 {object} CategoriaOut
// @Failure 409 {object} responses.ErrorResponse "Category with this name already exists"
// @Failure 422 {object} responses.ValidationErrorResponse "Validation error"
// @Router /categorias/ [post]
func (cc *CategoriaController) CreateCategoria(c *gin.Context) {
	var req CreateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	nova := Categoria{Nome: req.Nome}
	if err := cc.repo.CreateCategoria(&nova); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, fmt.Sprintf("Já existe uma categoria com o nome: %s", req.Nome))
			return
		}
		responses.InternalServerError(c, "Falha ao criar categoria")
		return
	}

	c.JSON(http.StatusCreated, CategoriaOut{ID: nova.ID, Nome: nova.Nome})
}

// GetAllCategorias godoc
// @Summary List all weight categories
// @Tags Categorias
// @Produce json
// @Success 200 {array} CategoriaOut
// @Failure 500 {object} responses.ErrorResponse
// @Router /categorias/ [get]
func (cc *CategoriaController) GetAllCategorias(c *gin.Context) {
	categorias, err := cc.repo.GetAllCategorias()
	if err != nil {
		responses.InternalServerError(c, "Falha ao listar categorias")
		return
	}

	out := make([]CategoriaOut, 0, len(categorias))
	for _, cat := range categorias {
		out = append(out, CategoriaOut{ID: cat.ID, Nome: cat.Nome})
	}

	c.JSON(http.StatusOK, out)
}
