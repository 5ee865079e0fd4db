package pricing

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	forecastmocks "github.com/vfg2006/revenue-engine/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	testNow   = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	testToday = time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	testPricing = config.Pricing{
		Alpha:          0.3,
		Beta:           0.25,
		Gamma:          0.02,
		Delta:          1.0,
		BaselineDemand: 0.75,
		MaxLeadTime:    365,
		FloorRatio:     0.7,
		CeilingRatio:   1.5,
		DefaultChannel: "ALL",
		SummaryDays:    7,
	}

	deluxe = &domain.RoomCategory{ID: 1, Name: "Deluxe", Capacity: 2, BaseRate: 280, InventoryCount: 20}
)

type serviceMocks struct {
	categoryRepo   *mocks.MockRoomCategoryRepository
	competitorRepo *mocks.MockCompetitorRateRepository
	eventRepo      *mocks.MockEventRepository
	forecastRepo   *mocks.MockForecastRepository
	priceRepo      *mocks.MockPriceRepository
	forecaster     *forecastmocks.MockForecaster
}

func newTestService(t *testing.T, rules *config.PricingRules) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		categoryRepo:   mocks.NewMockRoomCategoryRepository(ctrl),
		competitorRepo: mocks.NewMockCompetitorRateRepository(ctrl),
		eventRepo:      mocks.NewMockEventRepository(ctrl),
		forecastRepo:   mocks.NewMockForecastRepository(ctrl),
		priceRepo:      mocks.NewMockPriceRepository(ctrl),
		forecaster:     forecastmocks.NewMockForecaster(ctrl),
	}

	if rules == nil {
		var err error
		rules, err = config.LoadPricingRules("", testPricing)
		require.NoError(t, err)
	}

	service := &Service{
		categoryRepo:   m.categoryRepo,
		competitorRepo: m.competitorRepo,
		eventRepo:      m.eventRepo,
		forecastRepo:   m.forecastRepo,
		priceRepo:      m.priceRepo,
		forecaster:     m.forecaster,
		rules:          rules,
		cfg:            testPricing,
		useModel:       true,
		now:            func() time.Time { return testNow },
	}

	return service, m
}

// expectNeutralMarket configura previsão armazenada no baseline, sem concorrentes e sem evento
func expectNeutralMarket(m *serviceMocks, times int) {
	m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).
		Return(&domain.ForecastRecord{Category: "Deluxe", ForecastedDemand: 0.75}, nil).Times(times)
	m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).Return(nil, nil).Times(times)
	m.eventRepo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, nil).Times(times)
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPrice(t *testing.T) {
	ctx := context.Background()
	target := testToday.AddDate(0, 0, 10)

	tests := []struct {
		name      string
		category  string
		date      time.Time
		overrides *domain.CoefficientOverrides
		rules     func(t *testing.T) *config.PricingRules
		setup     func(m *serviceMocks)
		validate  func(t *testing.T, quote *domain.PriceQuote, err error)
	}{
		{
			name:     "previsão armazenada no baseline",
			category: "Deluxe",
			date:     target,
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				expectNeutralMarket(m, 1)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 279.99, quote.FinalPrice, 0.02)
				assert.Equal(t, 196.0, quote.Floor)
				assert.Equal(t, 420.0, quote.Ceiling)
				assert.Equal(t, 10, quote.LeadTimeDays)
				assert.Equal(t, "stored", quote.ForecastSource)
				assert.Equal(t, 1.0, quote.Components.CompetitorIndex)
			},
		},
		{
			name:     "evento aumenta o preço",
			category: "Deluxe",
			date:     target,
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).
					Return(&domain.ForecastRecord{ForecastedDemand: 0.75}, nil)
				m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).Return(nil, nil)
				m.eventRepo.EXPECT().GetByDate(gomock.Any(), target).
					Return(&domain.EventMultiplier{Name: "Festival", Multiplier: 1.25}, nil)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1.25, quote.Components.EventFactor)
				assert.Equal(t, 349.98, quote.FinalPrice)
			},
		},
		{
			name:     "sem previsão armazenada calcula sob demanda",
			category: "Deluxe",
			date:     target,
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).Return(nil, nil)
				m.forecaster.EXPECT().Forecast(gomock.Any(), "Deluxe", target, true).
					Return(&domain.Forecast{ForecastedDemand: 0.95, ModelUsed: domain.ModelSmoothed}, nil)
				m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).
					Return([]*domain.CompetitorRate{
						{CompetitorID: "a", Rate: 300, Available: true},
						{CompetitorID: "b", Rate: 320, Available: true},
						{CompetitorID: "c", Rate: 100, Available: false},
					}, nil)
				m.eventRepo.EXPECT().GetByDate(gomock.Any(), target).Return(nil, nil)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				require.NoError(t, err)
				assert.Equal(t, "computed:smoothed", quote.ForecastSource)
				assert.InDelta(t, 310.0/280.0, quote.Components.CompetitorIndex, 1e-9)
				assert.InDelta(t, 1.06, quote.Components.DemandFactor, 1e-9)
				assert.Greater(t, quote.FinalPrice, 280.0)
			},
		},
		{
			name:      "sobrescrita de coeficientes por chamada",
			category:  "Deluxe",
			date:      target,
			overrides: &domain.CoefficientOverrides{Delta: floatPtr(0.5)},
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).
					Return(&domain.ForecastRecord{ForecastedDemand: 0.75}, nil)
				m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).Return(nil, nil)
				m.eventRepo.EXPECT().GetByDate(gomock.Any(), target).
					Return(&domain.EventMultiplier{Multiplier: 1.25}, nil)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.5, quote.Coefficients.Delta)
				assert.Equal(t, 0.3, quote.Coefficients.Alpha)
				assert.Equal(t, 1.125, quote.Components.EventFactor)
			},
		},
		{
			name:     "categoria inexistente",
			category: "Penthouse",
			date:     target,
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Penthouse").Return(nil, nil)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
				assert.Nil(t, quote)
			},
		},
		{
			name:     "piso igual ao teto é erro de configuração",
			category: "Deluxe",
			date:     target,
			rules: func(t *testing.T) *config.PricingRules {
				rules, err := config.LoadPricingRules("", testPricing)
				require.NoError(t, err)
				rules.Categories["Deluxe"] = config.CategoryRule{Floor: floatPtr(300), Ceiling: floatPtr(300)}
				return rules
			},
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				expectNeutralMarket(m, 1)
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				assert.True(t, domain.IsConfigurationError(err))
				assert.Nil(t, quote)
			},
		},
		{
			name:     "data ausente",
			category: "Deluxe",
			setup:    func(m *serviceMocks) {},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.True(t, IsValidationError(err))
			},
		},
		{
			name:     "falha ao buscar concorrentes",
			category: "Deluxe",
			date:     target,
			setup: func(m *serviceMocks) {
				m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
				m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).
					Return(&domain.ForecastRecord{ForecastedDemand: 0.75}, nil)
				m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", target).
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, quote *domain.PriceQuote, err error) {
				assert.ErrorContains(t, err, "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rules *config.PricingRules
			if tt.rules != nil {
				rules = tt.rules(t)
			}

			service, m := newTestService(t, rules)
			tt.setup(m)

			quote, err := service.Price(ctx, tt.category, tt.date, tt.overrides)
			tt.validate(t, quote, err)
		})
	}
}

func TestPriceDoesNotMutateDefaults(t *testing.T) {
	service, m := newTestService(t, nil)
	m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil).Times(2)
	expectNeutralMarket(m, 2)

	target := testToday.AddDate(0, 0, 10)
	_, err := service.Price(context.Background(), "Deluxe", target, &domain.CoefficientOverrides{Alpha: floatPtr(0.9)})
	require.NoError(t, err)

	quote, err := service.Price(context.Background(), "Deluxe", target, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.3, quote.Coefficients.Alpha)
	assert.Equal(t, 0.3, service.DefaultCoefficients().Alpha)
}

func TestPriceRange(t *testing.T) {
	ctx := context.Background()

	t.Run("um preço por dia do intervalo", func(t *testing.T) {
		service, m := newTestService(t, nil)
		m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
		expectNeutralMarket(m, 3)

		quotes, err := service.PriceRange(ctx, "Deluxe", testToday, testToday.AddDate(0, 0, 2), nil)
		require.NoError(t, err)
		require.Len(t, quotes, 3)

		for i, quote := range quotes {
			assert.Equal(t, testToday.AddDate(0, 0, i), quote.Date)
			assert.Equal(t, i, quote.LeadTimeDays)
		}
		assert.Equal(t, 280.0, quotes[0].FinalPrice)
	})

	t.Run("fim antes do início", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		quotes, err := service.PriceRange(ctx, "Deluxe", testToday, testToday.AddDate(0, 0, -1), nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, quotes)
	})

	t.Run("intervalo longo demais", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		_, err := service.PriceRange(ctx, "Deluxe", testToday, testToday.AddDate(2, 0, 0), nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestSummary(t *testing.T) {
	service, m := newTestService(t, nil)
	m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
	m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).
		Return(&domain.ForecastRecord{ForecastedDemand: 0.75}, nil).Times(3)
	m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).Return(nil, nil).Times(3)
	m.eventRepo.EXPECT().GetByDate(gomock.Any(), testToday).Return(nil, nil)
	m.eventRepo.EXPECT().GetByDate(gomock.Any(), testToday.AddDate(0, 0, 1)).
		Return(&domain.EventMultiplier{Multiplier: 1.25}, nil)
	m.eventRepo.EXPECT().GetByDate(gomock.Any(), testToday.AddDate(0, 0, 2)).Return(nil, nil)

	summary, err := service.Summary(context.Background(), "Deluxe", 2)
	require.NoError(t, err)

	require.Len(t, summary.DailyPrices, 3)
	assert.Equal(t, testToday, summary.StartDate)
	assert.Equal(t, testToday.AddDate(0, 0, 2), summary.EndDate)
	assert.Equal(t, 280.0, summary.BaseRate)
	assert.Equal(t, summary.DailyPrices[1].FinalPrice, summary.MaxPrice)
	assert.Less(t, summary.MinPrice, 280.01)
	assert.Greater(t, summary.AvgPrice, summary.MinPrice)
	assert.Less(t, summary.AvgPrice, summary.MaxPrice)
	assert.Greater(t, summary.PriceVariance, 0.0)
}

func TestSummaryInvalidDays(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.Summary(context.Background(), "Deluxe", -1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPublish(t *testing.T) {
	service, m := newTestService(t, nil)
	m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
	expectNeutralMarket(m, 2)

	var saved []*domain.PriceRecord
	m.priceRepo.EXPECT().Append(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, records []*domain.PriceRecord) error {
			saved = records
			return nil
		})

	records, err := service.Publish(context.Background(), "Deluxe", testToday, testToday.AddDate(0, 0, 1), "", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, saved, records)

	for _, record := range records {
		assert.Equal(t, "ALL", record.Channel)
		assert.Equal(t, domain.SourcePricingEngine, record.Source)
		assert.NotEmpty(t, record.RunID)
		assert.Equal(t, records[0].RunID, record.RunID)
		assert.GreaterOrEqual(t, record.PublishedRate, record.Floor)
		assert.LessOrEqual(t, record.PublishedRate, record.Ceiling)
	}
}

func TestRecord(t *testing.T) {
	t.Run("sem cotações", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		_, err := service.Record(context.Background(), nil, "ALL", domain.SourceScheduler, "run")
		assert.ErrorIs(t, err, ErrNothingToSave)
	})

	t.Run("falha ao gravar", func(t *testing.T) {
		service, m := newTestService(t, nil)
		m.priceRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		quotes := []*domain.PriceQuote{{Category: "Deluxe", Date: testToday, FinalPrice: 280, Floor: 196, Ceiling: 420}}
		_, err := service.Record(context.Background(), quotes, "booking", domain.SourceScheduler, "run")
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestHistory(t *testing.T) {
	start := testToday.AddDate(0, 0, -3)

	t.Run("lista registros do intervalo", func(t *testing.T) {
		service, m := newTestService(t, nil)
		m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
		m.priceRepo.EXPECT().ListByDateRange(gomock.Any(), "Deluxe", start, testToday).
			Return([]*domain.PriceRecord{{Category: "Deluxe", Date: start, PublishedRate: 280}}, nil)

		records, err := service.History(context.Background(), "Deluxe", start, testToday)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 280.0, records[0].PublishedRate)
	})

	t.Run("intervalo invertido", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		_, err := service.History(context.Background(), "Deluxe", testToday, start)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("categoria inexistente", func(t *testing.T) {
		service, m := newTestService(t, nil)
		m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Suite").Return(nil, nil)

		_, err := service.History(context.Background(), "Suite", start, testToday)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestPriceRejectsNonFiniteCoefficients(t *testing.T) {
	t.Run("sobrescrita NaN é rejeitada antes de consultar o banco", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		_, err := service.Price(context.Background(), "Deluxe", testToday.AddDate(0, 0, 7),
			&domain.CoefficientOverrides{Alpha: floatPtr(math.NaN())})

		var pricingErr *PricingError
		require.ErrorAs(t, err, &pricingErr)
		assert.Equal(t, apiErrors.ErrInvalidRequest, pricingErr.Code)
		assert.ErrorIs(t, err, ErrInvalidCoefficient)
		assert.ErrorIs(t, err, domain.ErrNonFiniteCoefficient)
	})

	t.Run("sobrescrita infinita no intervalo", func(t *testing.T) {
		service, _ := newTestService(t, nil)

		_, err := service.PriceRange(context.Background(), "Deluxe", testToday, testToday.AddDate(0, 0, 2),
			&domain.CoefficientOverrides{Delta: floatPtr(math.Inf(-1))})
		assert.ErrorIs(t, err, ErrInvalidCoefficient)
	})

	t.Run("coeficiente finito que estoura o preço", func(t *testing.T) {
		service, m := newTestService(t, nil)
		m.categoryRepo.EXPECT().GetByName(gomock.Any(), "Deluxe").Return(deluxe, nil)
		m.forecastRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).
			Return(&domain.ForecastRecord{Category: "Deluxe", ForecastedDemand: 0.9}, nil)
		m.competitorRepo.EXPECT().GetByCategoryAndDate(gomock.Any(), "Deluxe", gomock.Any()).Return(nil, nil)
		m.eventRepo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := service.Price(context.Background(), "Deluxe", testToday.AddDate(0, 0, 7),
			&domain.CoefficientOverrides{Alpha: floatPtr(1e308)})

		var pricingErr *PricingError
		require.ErrorAs(t, err, &pricingErr)
		assert.Equal(t, apiErrors.ErrInvalidRequest, pricingErr.Code)
		assert.ErrorIs(t, err, ErrNonFinitePrice)
	})
}
