package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"golang.org/x/sync/errgroup"
)

// CostEstimation represents the cost of an estimate
type CostEstimation struct {
	Hours       float64 `json:"hours" yaml:"hours"`
	MonthlyRate float64 `json:"monthlyRate" yaml:"monthlyRate"`
	TotalCost   float64 `json:"totalCost" yaml:"totalCost"`
	Currency    string  `json:"currency" yaml:"currency"`
}

// CalculateCost converts the effort of an estimate into hours and money
func CalculateCost(result cocomo.Result, config *model.Config) CostEstimation {
	return CostEstimation{
		Hours:       result.Effort * config.GetHoursPerMonth(),
		MonthlyRate: config.MonthlyRate,
		TotalCost:   result.Effort * config.MonthlyRate,
		Currency:    config.Currency,
	}
}

// Productivity returns the number of lines delivered per person-month
func Productivity(sloc int, result cocomo.Result) float64 {
	if result.Effort == 0 {
		return 0
	}
	return float64(sloc) / result.Effort
}

// SweepPoint is the estimate for one size in a sweep
type SweepPoint struct {
	SLOC   int           `json:"sloc" yaml:"sloc"`
	Result cocomo.Result `json:"result" yaml:"result"`
}

// Sweep estimates every size concurrently. Points are returned in the order of slocs.
// The first failing size cancels the remaining ones.
func Sweep(ctx context.Context, estimator *cocomo.Estimator, slocs []int) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(slocs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, sloc := range slocs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := estimator.Estimate(sloc)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{SLOC: sloc, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

// MaxSweepPoints bounds the number of sizes of a sweep
const MaxSweepPoints = 10000

// Range returns the sizes from..to (inclusive) by step
func Range(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", cocomo.ErrInvalidArgument, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: empty range from %d to %d", cocomo.ErrInvalidArgument, from, to)
	}

	// the span of any two ints fits in a uint64
	count := (uint64(to)-uint64(from))/uint64(step) + 1
	if count > MaxSweepPoints {
		return nil, fmt.Errorf("%w: range from %d to %d by %d has more than %d sizes", cocomo.ErrInvalidArgument, from, to, step, MaxSweepPoints)
	}

	slocs := make([]int, 0, count)
	s := from
	for i := uint64(0); i < count; i++ {
		slocs = append(slocs, s)
		if i+1 < count {
			s += step
		}
	}
	return slocs, nil
}

// Round rounds value to the given number of decimals. A negative precision
// leaves the value untouched.
func Round(value float64, precision int) float64 {
	if precision < 0 {
		return value
	}
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}
