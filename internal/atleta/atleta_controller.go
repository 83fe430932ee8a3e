package atleta

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruanmedina/workout-api/pkg/paginate"
	"github.com/ruanmedina/workout-api/pkg/responses"
	"github.com/ruanmedina/workout-api/pkg/validator"
)

// AtletaController handles API requests related to athletes.
type AtletaController struct {
	repo AtletaRepository
}

// NewAtletaController creates a new AtletaController.
func NewAtletaController(repo AtletaRepository) *AtletaController {
	return &AtletaController{repo: repo}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateAtletaRequest struct {
	Nome                string  `json:"nome" binding:"required,max=50"`
	CPF                 string  `json:"cpf" binding:"required,len=11"`
	Idade               int     `json:"idade" binding:"required,gt=0"`
	Peso                float64 `json:"peso" binding:"required,gt=0"`
	Altura              float64 `json:"altura" binding:"required,gt=0"`
	Sexo                string  `json:"sexo" binding:"required,len=1"`
	CategoriaID         uint    `json:"categoria_id" binding:"required"`
	CentroTreinamentoID uint    `json:"centro_treinamento_id" binding:"required"`
}

type AtletaOut struct {
	ID                  uuid.UUID `json:"id"`
	Nome                string    `json:"nome"`
	CPF                 string    `json:"cpf"`
	Idade               int       `json:"idade"`
	Peso                float64   `json:"peso"`
	Altura              float64   `json:"altura"`
	Sexo                string    `json:"sexo"`
	CategoriaID         uint      `json:"categoria_id"`
	CentroTreinamentoID uint      `json:"centro_treinamento_id"`
}

// AtletaListItem is the denormalized listing projection: resolved names only,
// no identifiers or raw foreign keys.
type AtletaListItem struct {
	Nome              string `json:"nome"`
	Categoria         string `json:"categoria"`
	CentroTreinamento string `json:"centro_treinamento"`
}

// --- Handlers ---

// CreateAtleta godoc
// @Summary Create an athlete
// @Tags Atletas
// @Accept json
// @Produce json
// @Param atleta body CreateAtletaRequest true "Athlete creation request"
// @Success 200 {object} AtletaOut
// @Failure 409 {object} responses.ErrorResponse "Athlete with this CPF already exists"
// @Failure 422 {object} responses.ValidationErrorResponse "Validation or referential error"
// @Router /atletas/ [post]
func (ac *AtletaController) CreateAtleta(c *gin.Context) {
	var req CreateAtletaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	novo := Atleta{
		Nome:                req.Nome,
		CPF:                 req.CPF,
		Idade:               req.Idade,
		Peso:                req.Peso,
		Altura:              req.Altura,
		Sexo:                req.Sexo,
		CategoriaID:         req.CategoriaID,
		CentroTreinamentoID: req.CentroTreinamentoID,
	}
	if err := ac.repo.CreateAtleta(&novo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s", req.CPF))
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			responses.SendError(c, http.StatusUnprocessableEntity,
				"Categoria ou centro de treinamento informado não existe")
			return
		}
		responses.InternalServerError(c, "Falha ao criar atleta")
		return
	}

	c.JSON(http.StatusOK, toOut(novo))
}

// GetAllAtletas godoc
// @Summary List athletes
// @Description Paginated, denormalized listing with optional name/cpf filters
// @Tags Atletas
// @Produce json
// @Param nome query string false "Case-insensitive substring match on name"
// @Param cpf query string false "Exact CPF match"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(50)
// @Success 200 {object} paginate.Page[AtletaListItem]
// @Failure 500 {object} responses.ErrorResponse
// @Router /atletas/ [get]
func (ac *AtletaController) GetAllAtletas(c *gin.Context) {
	nome := c.Query("nome")
	cpf := c.Query("cpf")
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(paginate.DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(paginate.DefaultSize)))

	atletas, err := ac.repo.GetAllAtletas(nome, cpf)
	if err != nil {
		responses.InternalServerError(c, "Falha ao listar atletas")
		return
	}

	items := make([]AtletaListItem, 0, len(atletas))
	for _, a := range atletas {
		items = append(items, AtletaListItem{
			Nome:              a.Nome,
			Categoria:         a.Categoria.Nome,
			CentroTreinamento: a.CentroTreinamento.Nome,
		})
	}

	c.JSON(http.StatusOK, paginate.Paginate(items, page, size))
}

// GetAtletaByID godoc
// @Summary Get an athlete by its public identifier
// @Tags Atletas
// @Produce json
// @Param id path string true "Athlete public identifier (UUID)"
// @Success 200 {object} AtletaOut
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Failure 422 {object} responses.ValidationErrorResponse "Malformed identifier"
// @Router /atletas/{id} [get]
func (ac *AtletaController) GetAtletaByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.SendValidationError(c, map[string]string{"id": "Identificador inválido"})
		return
	}

	atleta, err := ac.repo.GetAtletaByID(id)
	if err != nil {
		responses.InternalServerError(c, "Falha ao buscar atleta")
		return
	}
	if atleta == nil {
		responses.NotFound(c, fmt.Sprintf("Atleta não encontrado: %s", id))
		return
	}

	c.JSON(http.StatusOK, toOut(*atleta))
}

func toOut(a Atleta) AtletaOut {
	return AtletaOut{
		ID:                  a.ID,
		Nome:                a.Nome,
		CPF:                 a.CPF,
		Idade:               a.Idade,
		Peso:                a.Peso,
		Altura:              a.Altura,
		Sexo:                a.Sexo,
		CategoriaID:         a.CategoriaID,
		CentroTreinamentoID: a.CentroTreinamentoID,
	}
}
