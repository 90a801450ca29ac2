package stats

import (
	"context"
	"math"
	"testing"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	config := model.DefaultConfig()
	config.MonthlyRate = 5000
	config.Currency = "$"

	cost := CalculateCost(cocomo.Result{Effort: 10}, config)

	assert.Equal(t, 1520.0, cost.Hours)
	assert.Equal(t, 50000.0, cost.TotalCost)
	assert.Equal(t, 5000.0, cost.MonthlyRate)
	assert.Equal(t, "$", cost.Currency)
}

func TestProductivity(t *testing.T) {
	assert.Equal(t, 500.0, Productivity(5000, cocomo.Result{Effort: 10}))
	assert.Equal(t, 0.0, Productivity(5000, cocomo.Result{}))
}

func TestSweep(t *testing.T) {
	est, err := cocomo.New(cocomo.ClassOrganic, nil)
	require.NoError(t, err)

	slocs, err := Range(1000, 20000, 1000)
	require.NoError(t, err)
	require.Len(t, slocs, 20)

	points, err := Sweep(context.Background(), est, slocs)
	require.NoError(t, err)
	require.Len(t, points, len(slocs))

	for i, p := range points {
		assert.Equal(t, slocs[i], p.SLOC)
		want, err := est.Estimate(slocs[i])
		require.NoError(t, err)
		assert.Equal(t, want, p.Result)
		if i > 0 {
			assert.Greater(t, p.Result.Effort, points[i-1].Result.Effort)
		}
	}
}

func TestSweepFailsOnInvalidSize(t *testing.T) {
	est, err := cocomo.New(cocomo.ClassOrganic, nil)
	require.NoError(t, err)

	_, err = Sweep(context.Background(), est, []int{1000, 0, 2000})
	assert.ErrorIs(t, err, cocomo.ErrInvalidArgument)
}

func TestSweepCancelled(t *testing.T) {
	est, err := cocomo.New(cocomo.ClassOrganic, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Sweep(ctx, est, []int{1000, 2000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		step     int
		expected []int
		wantErr  bool
	}{
		{name: "inclusive", from: 10, to: 30, step: 10, expected: []int{10, 20, 30}},
		{name: "partial last step", from: 10, to: 29, step: 10, expected: []int{10, 20}},
		{name: "single size", from: 5, to: 5, step: 3, expected: []int{5}},
		{name: "reversed", from: 10, to: 5, step: 1, wantErr: true},
		{name: "zero step", from: 1, to: 5, step: 0, wantErr: true},
		{name: "negative step", from: 1, to: 5, step: -1, wantErr: true},
		{name: "near max int", from: math.MaxInt - 5, to: math.MaxInt, step: 4, expected: []int{math.MaxInt - 5, math.MaxInt - 1}},
		{name: "max int last size", from: math.MaxInt - 4, to: math.MaxInt, step: 2, expected: []int{math.MaxInt - 4, math.MaxInt - 2, math.MaxInt}},
		{name: "huge range", from: 1, to: math.MaxInt, step: 1, wantErr: true},
		{name: "full int span", from: math.MinInt, to: math.MaxInt, step: math.MaxInt, expected: []int{math.MinInt, -1, math.MaxInt - 1}},
		{name: "too many sizes", from: 1, to: MaxSweepPoints + 1, step: 1, wantErr: true},
		{name: "max sizes", from: 1, to: MaxSweepPoints, step: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slocs, err := Range(tt.from, tt.to, tt.step)
			if tt.wantErr {
				assert.ErrorIs(t, err, cocomo.ErrInvalidArgument)
				assert.Nil(t, slocs)
				return
			}
			require.NoError(t, err)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, slocs)
			}
			assert.LessOrEqual(t, len(slocs), MaxSweepPoints)
			for _, s := range slocs {
				assert.GreaterOrEqual(t, s, tt.from)
				assert.LessOrEqual(t, s, tt.to)
			}
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 113.8, Round(113.79607, 1))
	assert.Equal(t, 114.0, Round(113.79607, 0))
	assert.Equal(t, 113.79607, Round(113.79607, -1))
}
