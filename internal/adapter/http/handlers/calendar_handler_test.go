package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_mecanico/internal/adapter/http/handlers/mocks"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalendarHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockICalendarUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICalendarUseCase(ctrl)
		h := NewCalendarHandler(uc)
		r := gin.New()
		r.GET("/v1/events", h.ListMonth)
		r.POST("/v1/events", h.Upsert)
		return r, uc
	}

	t.Run("bad month", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListMonth(gomock.Any(), 2024, 0).Return(nil, usecase.ErrInvalidEventMonth)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/events?year=2024", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stored and removed", func(t *testing.T) {
		r, uc := setup(t)
		gomock.InOrder(
			uc.EXPECT().Upsert(gomock.Any(), "10/05/2024", "Turno").Return(entities.CalendarEvent{Date: "2024-05-10", Text: "Turno"}, true, nil),
			uc.EXPECT().Upsert(gomock.Any(), "2024-05-10", "").Return(entities.CalendarEvent{Date: "2024-05-10"}, false, nil),
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(`{"date":"10/05/2024","text":"Turno"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"date":"2024-05-10"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(`{"date":"2024-05-10","text":""}`))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
