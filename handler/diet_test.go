package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/service"
)

// stubDietService serves a single diet id.
type stubDietService struct {
	diet     *entity.Diet
	doc      []byte
	filename string
}

func (s *stubDietService) CreateDiet(context.Context, string, *entity.DietRequest) (*entity.Diet, error) {
	panic("not used")
}

func (s *stubDietService) GetDiet(_ context.Context, id, _ string) (*entity.Diet, error) {
	if s.diet != nil && id == s.diet.ID {
		return s.diet, nil
	}
	return nil, service.ErrNotFound
}

func (s *stubDietService) ListDiets(context.Context, string, string) ([]entity.Diet, error) {
	panic("not used")
}

func (s *stubDietService) UpdateDiet(context.Context, string, string, *entity.DietRequest) (*entity.Diet, error) {
	panic("not used")
}

func (s *stubDietService) DeleteDiet(context.Context, string, string) error {
	panic("not used")
}

func (s *stubDietService) ExportDiet(_ context.Context, id, _ string) ([]byte, string, error) {
	if s.diet != nil && id == s.diet.ID {
		return s.doc, s.filename, nil
	}
	return nil, "", service.ErrNotFound
}

func newDietRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	diets := &stubDietService{
		diet:     &entity.Diet{ID: "d1", Name: "Volumen", ClientID: "c1"},
		doc:      []byte("%PDF-1.4 fake"),
		filename: "dieta_Juan_Perez.pdf",
	}
	h := NewDietHandler(diets)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.TrainerIDKey, "trainer-1")
	})
	r.GET("/diets/:id", h.Get)
	r.GET("/diets/:id/export", h.Export)
	return r
}

func TestDietExportHeaders(t *testing.T) {
	r := newDietRouter()

	req := httptest.NewRequest(http.MethodGet, "/diets/d1/export", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=dieta_Juan_Perez.pdf", rr.Header().Get("Content-Disposition"))
	require.Equal(t, "%PDF-1.4 fake", rr.Body.String())
}

func TestDietExportUnknownIDReturns404(t *testing.T) {
	r := newDietRouter()

	req := httptest.NewRequest(http.MethodGet, "/diets/missing/export", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDietGetUnknownIDReturns404(t *testing.T) {
	r := newDietRouter()

	req := httptest.NewRequest(http.MethodGet, "/diets/missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
