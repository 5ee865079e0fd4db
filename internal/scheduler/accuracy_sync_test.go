package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-engine/internal/domain"
	analyzingmocks "github.com/vfg2006/revenue-engine/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestAccuracySyncService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	categoryRepo := mocks.NewMockRoomCategoryRepository(ctrl)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &AccuracySyncService{
		cronSchedule: "0 6 * * *",
		enabled:      true,
		categoryRepo: categoryRepo,
		analyzer:     analyzer,
		now:          func() time.Time { return testNow },
	}

	yesterday := testToday.AddDate(0, 0, -1)

	categoryRepo.EXPECT().List(gomock.Any()).Return([]*domain.RoomCategory{
		{Name: "Deluxe"}, {Name: "Standard"}, {Name: "Suite"}, {Name: "Family"},
	}, nil)
	analyzer.EXPECT().Accuracy(gomock.Any(), "Deluxe", yesterday).
		Return(&domain.AccuracyReport{Category: "Deluxe", Available: true, AccuracyScore: 90}, nil)
	analyzer.EXPECT().Accuracy(gomock.Any(), "Standard", yesterday).
		Return(&domain.AccuracyReport{Category: "Standard", Available: true, AccuracyScore: 70}, nil)
	analyzer.EXPECT().Accuracy(gomock.Any(), "Suite", yesterday).
		Return(&domain.AccuracyReport{Category: "Suite", Message: "no forecast available"}, nil)
	analyzer.EXPECT().Accuracy(gomock.Any(), "Family", yesterday).
		Return(nil, errors.New("configuration error"))

	run, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, yesterday, run.Date)
	assert.Len(t, run.Reports, 3)
	assert.Equal(t, 2, run.Evaluated)
	assert.Equal(t, 80.0, run.MeanAccuracy)
	assert.Equal(t, []string{"Family"}, run.FailedCategories)

	status := service.GetStatus()
	assert.Equal(t, 80.0, status["last_mean_accuracy_score"])
	assert.Equal(t, false, status["sync_running"])
}

func TestAccuracySyncService_AlreadyRunning(t *testing.T) {
	service := &AccuracySyncService{syncRunning: true, now: func() time.Time { return testNow }}

	_, err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncAlreadyRunning)
}
