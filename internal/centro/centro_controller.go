package centro

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

// CentroController handles API requests related to training centers.
type CentroController struct {
	repo CentroRepository
}

// NewCentroController creates a new CentroController.
func NewCentroController(repo CentroRepository) *CentroController {
	return &CentroController{repo: repo}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateCentroRequest struct {
	Nome         string `json:"nome" binding:"required,max=20"`
	Endereco     string `json:"endereco" binding:"required,max=60"`
	Proprietario string `json:"proprietario" binding:"required,max=30"`
}

type CentroOut struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco"`
	Proprietario string    `json:"proprietario"`
}

// --- Handlers ---

// CreateCentro godoc
// @Summary Create a training center
// @Tags Centros de Treinamento
// @Accept json
// @Produce json
// @Param centro body CreateCentroRequest true "Training center creation request"
// @Success 201 {object} CentroOut
// @Failure 409 {object} responses.ErrorResponse "Training center with this name already exists"
// @Failure 422 {object} responses.ValidationErrorResponse "Validation error"
// @Router /centros-treinamento/ [post]
func (cc *CentroController) CreateCentro(c *gin.Context) {
	var req CreateCentroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	novo := CentroTreinamento{
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Proprietario: req.Proprietario,
	}
	if err := cc.repo.CreateCentro(&novo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, fmt.Sprintf("Já existe um centro de treinamento com o nome: %s", req.Nome))
			return
		}
		responses.InternalServerError(c, "Falha ao criar centro de treinamento")
		return
	}

	c.JSON(http.StatusCreated, toOut(novo))
}

// GetAllCentros godoc
// @Summary List all training centers
// @Tags Centros de Treinamento
// @Produce json
// @Success 200 {array} CentroOut
// @Failure 500 {object} responses.ErrorResponse
// @Router /centros-treinamento/ [get]
func (cc *CentroController) GetAllCentros(c *gin.Context) {
	centros, err := cc.repo.GetAllCentros()
	if err != nil {
		responses.InternalServerError(c, "Falha ao listar centros de treinamento")
		return
	}

	out := make([]CentroOut, 0, len(centros))
	for _, ct := range centros {
		out = append(out, toOut(ct))
	}

	c.JSON(http.StatusOK, out)
}

func toOut(ct CentroTreinamento) CentroOut {
	return CentroOut{
		ID:           ct.ID,
		Nome:         ct.Nome,
		Endereco:     ct.Endereco,
		Proprietario: ct.Proprietario,
	}
}
