package centro

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCentroRepo struct {
	centros   []CentroTreinamento
	createErr error

	createCalls int
}

func (f *fakeCentroRepo) CreateCentro(ct *CentroTreinamento) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	ct.PkID = uint(len(f.centros) + 1)
	ct.ID = uuid.New()
	f.centros = append(f.centros, *ct)
	return nil
}

func (f *fakeCentroRepo) GetAllCentros() ([]CentroTreinamento, error) {
	return f.centros, nil
}

// setupRouter wires a controller over the given repository, mirroring
// RegisterCentroRoutes without a live database.
func setupRouter(repo CentroRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewCentroController(repo)
	centros := r.Group("/centros-treinamento")
	{
		centros.POST("/", controller.CreateCentro)
		centros.GET("/", controller.GetAllCentros)
	}
	return r
}

func TestCreateCentro(t *testing.T) {
	repo := &fakeCentroRepo{}
	r := setupRouter(repo)

	body := `{"nome":"CT King","endereco":"Rua X, Q02","proprietario":"Marcos"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/centros-treinamento/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var out CentroOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "CT King", out.Nome)
	assert.Equal(t, "Rua X, Q02", out.Endereco)
	assert.Equal(t, "Marcos", out.Proprietario)
	assert.NotEqual(t, uuid.Nil, out.ID)
}

func TestCreateCentroDuplicateName(t *testing.T) {
	repo := &fakeCentroRepo{createErr: gorm.ErrDuplicatedKey}
	r := setupRouter(repo)

	body := `{"nome":"CT King","endereco":"Rua X, Q02","proprietario":"Marcos"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/centros-treinamento/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CT King")
	assert.Empty(t, repo.centros)
}

func TestCreateCentroValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing everything", `{}`},
		{"nome over 20 chars", `{"nome":"` + strings.Repeat("x", 21) + `","endereco":"Rua X","proprietario":"Marcos"}`},
		{"endereco over 60 chars", `{"nome":"CT King","endereco":"` + strings.Repeat("x", 61) + `","proprietario":"Marcos"}`},
		{"proprietario over 30 chars", `{"nome":"CT King","endereco":"Rua X","proprietario":"` + strings.Repeat("x", 31) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCentroRepo{}
			r := setupRouter(repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/centros-treinamento/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestGetAllCentros(t *testing.T) {
	repo := &fakeCentroRepo{centros: []CentroTreinamento{
		{PkID: 1, ID: uuid.New(), Nome: "CT King", Endereco: "Rua X", Proprietario: "Marcos"},
	}}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/centros-treinamento/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out []CentroOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "CT King", out[0].Nome)
}
