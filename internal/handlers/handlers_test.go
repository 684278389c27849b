package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/avoronin/eventpool/docs"
	"github.com/avoronin/eventpool/internal/handlers/auth"
	"github.com/avoronin/eventpool/internal/handlers/events"
	"github.com/avoronin/eventpool/internal/handlers/monitoring"
	"github.com/avoronin/eventpool/internal/handlers/payments"
	"github.com/avoronin/eventpool/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockService(ctrl),
		EventService:      events.NewMockService(ctrl),
		PaymentService:    payments.NewMockService(ctrl),
		MonitoringService: monitoring.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockEventHandler := NewMockEventHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockMonitoringHandler := NewMockMonitoringHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Simulate(gomock.Any(), gomock.Any()).AnyTimes()
	mockMonitoringHandler.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		EventHandler:      mockEventHandler,
		PaymentHandler:    mockPaymentHandler,
		MonitoringHandler: mockMonitoringHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/events", http.StatusOK},
		{"GET", "/api/events/some-id", http.StatusOK},
		{"GET", "/api/events/some-id/monitoring", http.StatusOK},
		{"POST", "/api/events", http.StatusUnauthorized},
		{"PATCH", "/api/events/some-id/publish", http.StatusUnauthorized},
		{"PATCH", "/api/events/some-id/cancel", http.StatusUnauthorized},
		{"POST", "/api/payments/simulate", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
