package service

import (
	"testing"

	"github.com/avoronin/eventpool/internal/pg"
	"github.com/avoronin/eventpool/internal/repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.EventService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.MonitoringService)
}
