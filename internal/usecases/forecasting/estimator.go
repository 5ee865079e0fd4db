package forecasting

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/utils"
	"gonum.org/v1/gonum/mat"
)

const (
	holdoutDays      = 7
	minTrainingRows  = 10
	trainingFeatures = 5 // intercepto, dia da semana, mês, dia do mês, dias a partir de hoje
)

var (
	errNotEnoughTraining = errors.New("not enough training rows")
	errConstantFeature   = errors.New("constant feature")
)

var featureNames = [trainingFeatures]string{"intercept", "weekday", "month", "day", "days_from_today"}

// baseEstimate é a demanda base escolhida uma única vez por chamada
type baseEstimate struct {
	Demand float64
	Model  domain.ModelUsed
	Reason string
}

// estimateBase escolhe entre o modelo treinado e a suavização exponencial.
// A escolha é explícita: cada desvio para a suavização carrega o motivo.
// observed conta os dias desde a primeira chegada e decide se o modelo pode ser usado.
func (s *Service) estimateBase(history []*domain.OccupancyPoint, observed int, target time.Time, useModel bool) baseEstimate {
	smoothed := func(reason string) baseEstimate {
		return baseEstimate{
			Demand: exponentialSmoothing(history, s.cfg.SmoothingAlpha),
			Model:  domain.ModelSmoothed,
			Reason: reason,
		}
	}

	if !useModel {
		return smoothed("model disabled by caller")
	}

	if observed < s.cfg.ModelMinPoints {
		return smoothed(fmt.Sprintf("history has %d points, model needs %d", observed, s.cfg.ModelMinPoints))
	}

	demand, err := fitTrainedModel(history, target, s.today())
	if err != nil {
		return smoothed(fmt.Sprintf("model fit failed: %v", err))
	}

	return baseEstimate{
		Demand: demand,
		Model:  domain.ModelTrained,
		Reason: fmt.Sprintf("least squares over %d points", len(history)-holdoutDays),
	}
}

// exponentialSmoothing aplica s_t = a*x_t + (1-a)*s_{t-1} da esquerda para a direita
func exponentialSmoothing(history []*domain.OccupancyPoint, alpha float64) float64 {
	if len(history) == 0 {
		return domain.DefaultBaseline
	}

	smoothed := history[0].Occupancy
	for _, point := range history[1:] {
		smoothed = alpha*point.Occupancy + (1-alpha)*smoothed
	}
	return smoothed
}

func featureRow(date, today time.Time) []float64 {
	return []float64{
		1,
		float64(mondayFirstWeekday(date)),
		float64(date.Month()),
		float64(date.Day()),
		float64(utils.DaysBetween(today, date)),
	}
}

// mondayFirstWeekday numera segunda como 0 e domingo como 6
func mondayFirstWeekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// fitTrainedModel ajusta mínimos quadrados sobre o histórico sem a última semana
// e prevê a ocupação do alvo, limitada a [0, 1]
func fitTrainedModel(history []*domain.OccupancyPoint, target, today time.Time) (float64, error) {
	training := history[:max(len(history)-holdoutDays, 0)]
	if len(training) < minTrainingRows {
		return 0, fmt.Errorf("%w: %d < %d", errNotEnoughTraining, len(training), minTrainingRows)
	}

	features := make([]float64, 0, len(training)*trainingFeatures)
	targets := make([]float64, 0, len(training))
	for _, point := range training {
		features = append(features, featureRow(point.Date, today)...)
		targets = append(targets, point.Occupancy)
	}

	// coluna constante repete o intercepto e torna o sistema singular
	for column := 1; column < trainingFeatures; column++ {
		if isConstantColumn(features, column) {
			return 0, fmt.Errorf("%w: %s", errConstantFeature, featureNames[column])
		}
	}

	x := mat.NewDense(len(training), trainingFeatures, features)
	y := mat.NewVecDense(len(targets), targets)

	var coefficients mat.VecDense
	if err := coefficients.SolveVec(x, y); err != nil {
		return 0, err
	}

	prediction := mat.Dot(&coefficients, mat.NewVecDense(trainingFeatures, featureRow(target, today)))
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return 0, errors.New("prediction is not finite")
	}

	return utils.Clip(prediction, 0.0, 1.0), nil
}

func isConstantColumn(features []float64, column int) bool {
	first := features[column]
	for i := column + trainingFeatures; i < len(features); i += trainingFeatures {
		if features[i] != first {
			return false
		}
	}
	return true
}
