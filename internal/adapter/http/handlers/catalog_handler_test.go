package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_mecanico/internal/adapter/http/handlers/mocks"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)
		r.PUT("/v1/vehicles/:id", h.UpdateVehicle)
		r.DELETE("/v1/vehicles/:id", h.DeleteVehicle)
		r.GET("/v1/clients/:id", h.GetClient)
		r.POST("/v1/parts", h.CreatePart)
		return r, uc
	}

	t.Run("create vehicle validation", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreateVehicle(gomock.Any(), usecase.VehicleInput{Model: "Uno"}).Return(entities.Vehicle{}, usecase.ErrInvalidPlate)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"model":"Uno"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update unknown vehicle", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().UpdateVehicle(gomock.Any(), "veh-x", gomock.Any()).Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/veh-x", bytes.NewBufferString(`{"plate":"AA111AA","model":"Gol"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete vehicle", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().DeleteVehicle(gomock.Any(), "veh-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/vehicles/veh-1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetClient(gomock.Any(), "c-x").Return(entities.Client{}, usecase.ErrClientNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clients/c-x", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create part", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreatePart(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.PartInput) (entities.SparePart, error) {
			return entities.SparePart{ID: "p1", Name: in.Name, Price: in.Price}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/parts", bytes.NewBufferString(`{"name":"Bujia","price":"1200"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated || !bytes.Contains(w.Body.Bytes(), []byte(`"price":"1200.00"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
