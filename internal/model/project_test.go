package model

import (
	"testing"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p := NewProject("Billing")

	assert.Len(t, p.ID, 8)
	assert.Equal(t, "Billing", p.Label)
	assert.Equal(t, cocomo.ClassOrganic, p.Class)
	assert.Empty(t, p.Ratings)
	assert.NoError(t, p.Validate())
}

func TestProjectSetRating(t *testing.T) {
	p := NewProject("p")

	require.NoError(t, p.SetRating("rely", "VH"))
	assert.Equal(t, "very-high", p.Ratings["rely"])
	assert.Equal(t, cocomo.RatingVeryHigh, p.Rating(cocomo.AttrReliability))

	assert.Error(t, p.SetRating("foo", "high"))
	assert.Error(t, p.SetRating("rely", "bogus"))
	assert.Equal(t, "very-high", p.Ratings["rely"])

	p.ClearRating("rely")
	assert.Equal(t, cocomo.RatingNominal, p.Rating(cocomo.AttrReliability))
}

func TestProjectEstimate(t *testing.T) {
	p := NewProject("p")
	p.SetSLOC(30000)
	p.SetClass(cocomo.ClassEmbedded)
	require.NoError(t, p.SetRating("cplx", "high"))

	est, result, err := p.Estimate()
	require.NoError(t, err)
	assert.Equal(t, cocomo.ClassEmbedded, est.Class())
	assert.InDelta(t, 1.15, est.EAF(), 1e-12)
	assert.InDelta(t, 165.845*1.15, result.Effort, 0.01)
}

func TestProjectEstimateWithoutSize(t *testing.T) {
	p := NewProject("p")

	_, _, err := p.Estimate()
	assert.ErrorIs(t, err, cocomo.ErrInvalidArgument)
}

func TestProjectEstimateHandEditedRatings(t *testing.T) {
	p := NewProject("p")
	p.SetSLOC(1000)
	p.Ratings["rely"] = "typo"

	est, _, err := p.Estimate()
	require.NoError(t, err)
	assert.Equal(t, 1.0, est.EAF())

	_, _, err = p.Estimate(cocomo.WithStrictRatings())
	assert.ErrorIs(t, err, cocomo.ErrInvalidRating)
}

func TestProjectValidate(t *testing.T) {
	p := NewProject("p")
	p.Class = "X"
	assert.Error(t, p.Validate())

	p = NewProject("p")
	p.SLOC = -1
	assert.Error(t, p.Validate())

	p = NewProject("p")
	p.ID = ""
	assert.Error(t, p.Validate())
}
