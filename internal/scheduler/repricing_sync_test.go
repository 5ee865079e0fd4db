package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-engine/internal/domain"
	forecastmocks "github.com/vfg2006/revenue-engine/internal/usecases/forecasting/mocks"
	pricingmocks "github.com/vfg2006/revenue-engine/internal/usecases/pricing/mocks"
	"go.uber.org/mock/gomock"
)

var (
	testNow   = time.Date(2024, 6, 12, 2, 0, 0, 0, time.UTC)
	testToday = time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
)

type repricingMocks struct {
	categoryRepo *mocks.MockRoomCategoryRepository
	forecaster   *forecastmocks.MockForecaster
	pricer       *pricingmocks.MockPricer
}

func newTestRepricingService(t *testing.T, daysAhead, maxConcurrent int) (*RepricingSyncService, *repricingMocks) {
	ctrl := gomock.NewController(t)

	m := &repricingMocks{
		categoryRepo: mocks.NewMockRoomCategoryRepository(ctrl),
		forecaster:   forecastmocks.NewMockForecaster(ctrl),
		pricer:       pricingmocks.NewMockPricer(ctrl),
	}

	service := &RepricingSyncService{
		config: RepricingSyncConfig{
			CronSchedule:      "0 2 * * *",
			DaysAhead:         daysAhead,
			MaxConcurrentJobs: maxConcurrent,
			SyncEnabled:       true,
			UseModel:          true,
			Channel:           "ALL",
		},
		categoryRepo: m.categoryRepo,
		forecaster:   m.forecaster,
		pricer:       m.pricer,
		now:          func() time.Time { return testNow },
	}

	return service, m
}

func quotesFor(category string, dates ...time.Time) []*domain.PriceQuote {
	quotes := make([]*domain.PriceQuote, 0, len(dates))
	for _, date := range dates {
		quotes = append(quotes, &domain.PriceQuote{Category: category, Date: date, FinalPrice: 280, Floor: 196, Ceiling: 420})
	}
	return quotes
}

func TestRepricingSyncService_RunOnce(t *testing.T) {
	ctx := context.Background()
	end := testToday.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		setup    func(m *repricingMocks)
		validate func(t *testing.T, run *RepricingRun, err error)
	}{
		{
			name: "reprecifica todas as categorias com o mesmo run id",
			setup: func(m *repricingMocks) {
				m.categoryRepo.EXPECT().List(gomock.Any()).Return([]*domain.RoomCategory{
					{Name: "Deluxe", BaseRate: 280, InventoryCount: 20},
					{Name: "Standard", BaseRate: 180, InventoryCount: 40},
				}, nil)

				for _, category := range []string{"Deluxe", "Standard"} {
					m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), category, testToday, true).Return(&domain.Forecast{}, nil)
					m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), category, end, true).Return(&domain.Forecast{}, nil)

					quotes := quotesFor(category, testToday, end)
					m.pricer.EXPECT().PriceRange(gomock.Any(), category, testToday, end, nil).Return(quotes, nil)
					m.pricer.EXPECT().Record(gomock.Any(), quotes, "ALL", domain.SourceScheduler, gomock.Any()).
						Return([]*domain.PriceRecord{{}, {}}, nil)
				}
			},
			validate: func(t *testing.T, run *RepricingRun, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, run.RunID)
				assert.Equal(t, 2, run.Categories)
				assert.Equal(t, 4, run.Records)
				assert.Empty(t, run.Failures)
				assert.Empty(t, run.Misconfigured)
				assert.Equal(t, testToday, run.StartDate)
				assert.Equal(t, end, run.EndDate)
			},
		},
		{
			name: "falha em uma categoria não interrompe as demais",
			setup: func(m *repricingMocks) {
				m.categoryRepo.EXPECT().List(gomock.Any()).Return([]*domain.RoomCategory{
					{Name: "Deluxe", BaseRate: 280, InventoryCount: 20},
					{Name: "Suite", BaseRate: 450, InventoryCount: 0},
				}, nil)

				m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), "Suite", testToday, true).
					Return(nil, domain.NewConfigurationError("Suite", "zero inventory"))

				m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), "Deluxe", gomock.Any(), true).Return(&domain.Forecast{}, nil).Times(2)
				m.pricer.EXPECT().PriceRange(gomock.Any(), "Deluxe", testToday, end, nil).Return(quotesFor("Deluxe", testToday, end), nil)
				m.pricer.EXPECT().Record(gomock.Any(), gomock.Any(), "ALL", domain.SourceScheduler, gomock.Any()).
					Return([]*domain.PriceRecord{{}, {}}, nil)
			},
			validate: func(t *testing.T, run *RepricingRun, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, run.Records)
				require.Contains(t, run.Failures, "Suite")
				assert.Contains(t, run.Failures["Suite"], "configuration error")
				assert.Equal(t, []string{"Suite"}, run.Misconfigured)
			},
		},
		{
			name: "erro transitório não marca cadastro inválido",
			setup: func(m *repricingMocks) {
				m.categoryRepo.EXPECT().List(gomock.Any()).Return([]*domain.RoomCategory{
					{Name: "Deluxe", BaseRate: 280, InventoryCount: 20},
				}, nil)

				m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), "Deluxe", testToday, true).
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, run *RepricingRun, err error) {
				require.NoError(t, err)
				require.Contains(t, run.Failures, "Deluxe")
				assert.Empty(t, run.Misconfigured)
			},
		},
		{
			name: "nenhuma categoria cadastrada",
			setup: func(m *repricingMocks) {
				m.categoryRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, run *RepricingRun, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, run.Records)
			},
		},
		{
			name: "erro ao listar categorias",
			setup: func(m *repricingMocks) {
				m.categoryRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, run *RepricingRun, err error) {
				assert.ErrorContains(t, err, "connection refused")
				assert.Nil(t, run)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestRepricingService(t, 1, 2)
			tt.setup(m)

			run, err := service.RunOnce(ctx)
			tt.validate(t, run, err)

			assert.False(t, service.syncRunning)
		})
	}
}

func TestRepricingSyncService_RespectsMaxConcurrentJobs(t *testing.T) {
	service, m := newTestRepricingService(t, 0, 2)

	categories := []*domain.RoomCategory{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}
	m.categoryRepo.EXPECT().List(gomock.Any()).Return(categories, nil)

	var inFlight, maxInFlight int32
	m.forecaster.EXPECT().ForecastAndStore(gomock.Any(), gomock.Any(), testToday, true).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, _ bool) (*domain.Forecast, error) {
			current := atomic.AddInt32(&inFlight, 1)
			for {
				observed := atomic.LoadInt32(&maxInFlight)
				if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return &domain.Forecast{}, nil
		}).Times(len(categories))
	m.pricer.EXPECT().PriceRange(gomock.Any(), gomock.Any(), testToday, testToday, nil).Return(quotesFor("X", testToday), nil).Times(len(categories))
	m.pricer.EXPECT().Record(gomock.Any(), gomock.Any(), "ALL", domain.SourceScheduler, gomock.Any()).
		Return([]*domain.PriceRecord{{}}, nil).Times(len(categories))

	run, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, run.Records)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
}

func TestRepricingSyncService_AlreadyRunning(t *testing.T) {
	service, _ := newTestRepricingService(t, 1, 1)
	service.syncRunning = true

	_, err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncAlreadyRunning)
}

func TestRepricingSyncService_GetStatus(t *testing.T) {
	service, m := newTestRepricingService(t, 1, 1)
	m.categoryRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	run, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, run, status["last_run"])
}
