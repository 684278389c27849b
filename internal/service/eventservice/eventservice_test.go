package eventservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/timeline"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

// Schedule fixtures live far in the future so that the creation timestamp
// assigned by the service always precedes them.
func ts(day int) *time.Time {
	t := time.Date(2035, 11, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		event         *domain.Event
		prepareMock   func()
		check         func(t *testing.T, created *domain.Event)
		expectedError error
	}{
		{
			name: "Successful creation with defaults",
			event: &domain.Event{
				Title:               "Concert",
				Author:              "Band",
				Location:            "Hall",
				PriceTotal:          10000,
				SeatLimit:           3,
				StartApplicationsAt: ts(1),
				EndApplicationsAt:   ts(5),
				StartContractsAt:    ts(6),
				StartAt:             ts(10),
				EndAt:               ts(11),
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, event *domain.Event) (*domain.Event, error) {
					return event, nil
				})
			},
			check: func(t *testing.T, created *domain.Event) {
				assert.NotEmpty(t, created.ID)
				assert.False(t, created.CreatedAt.IsZero())
				assert.Equal(t, domain.DraftEventStatus, created.Status)
				assert.Equal(t, timeline.T0, created.CurrentControlPoint)
				assert.Equal(t, int64(3333), created.PricePerSeat)
			},
		},
		{
			name: "Configured price per seat is kept",
			event: &domain.Event{
				Title:        "Concert",
				Author:       "Band",
				Location:     "Hall",
				PriceTotal:   10000,
				SeatLimit:    3,
				PricePerSeat: 4000,
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, event *domain.Event) (*domain.Event, error) {
					return event, nil
				})
			},
			check: func(t *testing.T, created *domain.Event) {
				assert.Equal(t, int64(4000), created.PricePerSeat)
			},
		},
		{
			name: "Schedule out of order",
			event: &domain.Event{
				Title:               "Concert",
				Author:              "Band",
				Location:            "Hall",
				PriceTotal:          10000,
				StartApplicationsAt: ts(5),
				EndApplicationsAt:   ts(1),
			},
			prepareMock:   func() {},
			expectedError: &ScheduleError{},
		},
		{
			name: "Repository error",
			event: &domain.Event{
				Title:      "Concert",
				Author:     "Band",
				Location:   "Hall",
				PriceTotal: 10000,
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.Create(context.Background(), tt.event)
			if tt.expectedError != nil {
				assert.Error(t, err)
				var scheduleErr *ScheduleError
				if errors.As(tt.expectedError, &scheduleErr) {
					assert.ErrorAs(t, err, &scheduleErr)
					assert.NotEmpty(t, scheduleErr.Fields)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, created)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedEvent *domain.Event
		expectedError error
	}{
		{
			name: "Event found",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1"}, nil)
			},
			expectedEvent: &domain.Event{ID: "event-1"},
		},
		{
			name: "Event not found",
			id:   "missing",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrEventNotFound,
		},
		{
			name: "Repository error",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			event, err := service.Get(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvent, event)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByStatus(gomock.Any(), domain.PublishedEventStatus).Return([]domain.Event{
		{ID: "event-1", Status: domain.PublishedEventStatus},
	}, nil)

	events, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "event-1", events[0].ID)
}

func TestPublish(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful publish",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1", Status: domain.DraftEventStatus}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), "event-1", domain.PublishedEventStatus).Return(&domain.Event{ID: "event-1", Status: domain.PublishedEventStatus}, nil)
			},
		},
		{
			name: "Already published",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1", Status: domain.PublishedEventStatus}, nil)
			},
			expectedError: ErrAlreadyPublished,
		},
		{
			name: "Event not found",
			id:   "missing",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrEventNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			event, err := service.Publish(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PublishedEventStatus, event.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful cancel",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1"}, nil)
				repo.EXPECT().SetCancelled(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1", IsCancelled: true}, nil)
			},
		},
		{
			name: "Already cancelled",
			id:   "event-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "event-1").Return(&domain.Event{ID: "event-1", IsCancelled: true}, nil)
			},
			expectedError: ErrAlreadyCancelled,
		},
		{
			name: "Event not found",
			id:   "missing",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrEventNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			event, err := service.Cancel(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, event.IsCancelled)
			}
		})
	}
}
