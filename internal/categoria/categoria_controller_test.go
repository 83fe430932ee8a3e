package categoria

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

type fakeCategoriaRepo struct {
	categorias []Categoria
	createErr  error
	getAllErr  error

	createCalls int
	getAllCalls int
}

func (f *fakeCategoriaRepo) CreateCategoria(c *Categoria) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	c.PkID = uint(len(f.categorias) + 1)
	c.ID = uuid.New()
	f.categorias = append(f.categorias, *c)
	return nil
}

func (f *fakeCategoriaRepo) GetAllCategorias() ([]Categoria, error) {
	f.getAllCalls++
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.categorias, nil
}

// setupRouter wires a controller over the given repository, mirroring
// RegisterCategoriaRoutes without a live database.
func setupRouter(repo CategoriaRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewCategoriaController(repo)
	categorias := r.Group("/categorias")
	{
		categorias.POST("/", controller.CreateCategoria)
		categorias.GET("/", controller.GetAllCategorias)
	}
	return r
}

func TestCreateCategoria(t *testing.T) {
	repo := &fakeCategoriaRepo{}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categorias/", strings.NewReader(`{"nome":"Scale"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var out CategoriaOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Scale", out.Nome)
	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreateCategoriaDuplicateName(t *testing.T) {
	repo := &fakeCategoriaRepo{createErr: gorm.ErrDuplicatedKey}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categorias/", strings.NewReader(`{"nome":"Rx"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Rx")
	// The fake was asked once and refused; nothing was stored.
	assert.Empty(t, repo.categorias)
}

func TestCreateCategoriaValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing nome", `{}`},
		{"nome over 40 chars", `{"nome":"` + strings.Repeat("a", 41) + `"}`},
		{"wrong type", `{"nome": 7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCategoriaRepo{}
			r := setupRouter(repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/categorias/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			// Rejected before any storage interaction.
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestGetAllCategorias(t *testing.T) {
	repo := &fakeCategoriaRepo{categorias: []Categoria{
		{PkID: 1, ID: uuid.New(), Nome: "Scale"},
		{PkID: 2, ID: uuid.New(), Nome: "Rx"},
	}}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categorias/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out []CategoriaOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}

func TestGetAllCategoriasStorageFailure(t *testing.T) {
	repo := &fakeCategoriaRepo{getAllErr: gorm.ErrInvalidDB}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categorias/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCategoriaRoundTrip(t *testing.T) {
	repo := &fakeCategoriaRepo{}
	r := setupRouter(repo)

	for _, nome := range []string{"Scale", "Rx", "Master"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/categorias/", strings.NewReader(`{"nome":"`+nome+`"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categorias/", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out []CategoriaOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 3)

	seen := make(map[uuid.UUID]bool)
	names := make([]string, 0, len(out))
	for _, cat := range out {
		assert.False(t, seen[cat.ID], "identifiers must be distinct")
		seen[cat.ID] = true
		names = append(names, cat.Nome)
	}
	assert.ElementsMatch(t, []string{"Scale", "Rx", "Master"}, names)
}
