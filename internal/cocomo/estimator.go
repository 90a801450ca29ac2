// Package cocomo implements the COCOMO effort, schedule and staffing model.
//
// An Estimator is built once from a project class and a set of attribute
// ratings, then turns source line counts into estimates:
//
//	effort          = a * (sloc/1000)^b * EAF   (person-months)
//	developmentTime = c * effort^d              (months)
//	peopleRequired  = effort / developmentTime
//
// where EAF is the product of the 15 attribute multipliers.
package cocomo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration is returned when the project class is unknown
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidArgument is returned when the line count is not a positive integer
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRating is returned in strict mode for unknown attributes or rating tokens
	ErrInvalidRating = errors.New("invalid rating")
)

// Result holds the three values of an estimate
type Result struct {
	// Effort in person-months
	Effort float64 `json:"effort" yaml:"effort"`
	// DevelopmentTime in months
	DevelopmentTime float64 `json:"developmentTime" yaml:"developmentTime"`
	// PeopleRequired is the average headcount
	PeopleRequired float64 `json:"peopleRequired" yaml:"peopleRequired"`
}

// Estimator computes estimates for a fixed project class and set of multipliers.
// It is immutable once built and safe for concurrent use.
type Estimator struct {
	class   ProjectClass
	profile Profile
	factors map[Attribute]float64
	eaf     float64
}

type options struct {
	strict bool
}

// Option configures how New resolves ratings
type Option func(*options)

// WithStrictRatings makes New reject unknown attribute names and invalid
// rating tokens with ErrInvalidRating instead of falling back to nominal.
func WithStrictRatings() Option {
	return func(o *options) {
		o.strict = true
	}
}

// New builds an Estimator for the given class.
//
// ratings maps attribute keys (rely, data, cplx...) to rating tokens, either
// full (very-low...extra-high) or abbreviated (VL...XH). Any attribute that is
// missing or carries an unrecognized token resolves to its nominal factor (1.00).
func New(class ProjectClass, ratings map[string]string, opts ...Option) (*Estimator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	profile, ok := profiles[class]
	if !ok {
		return nil, fmt.Errorf("%w: unknown project class '%s'", ErrInvalidConfiguration, class)
	}

	if o.strict {
		for name := range ratings {
			if !Attribute(name).Valid() {
				return nil, fmt.Errorf("%w: unknown attribute '%s'", ErrInvalidRating, name)
			}
		}
	}

	factors := make(map[Attribute]float64, len(attributes))
	eaf := 1.0

	for _, attr := range attributes {
		factor := multipliers[attr][RatingNominal]

		if token, provided := ratings[string(attr)]; provided {
			rating, valid := ParseRating(token)
			switch {
			case valid:
				factor = multipliers[attr][rating]
			case o.strict:
				return nil, fmt.Errorf("%w: '%s' is not a valid rating for %s", ErrInvalidRating, token, attr)
			}
		}

		factors[attr] = factor
		eaf *= factor
	}

	return &Estimator{
		class:   class,
		profile: profile,
		factors: factors,
		eaf:     eaf,
	}, nil
}

// Estimate computes effort, development time and people required for sloc lines of code
func (e *Estimator) Estimate(sloc int) (Result, error) {
	if sloc <= 0 {
		return Result{}, fmt.Errorf("%w: SLOC must be a positive integer, got %d", ErrInvalidArgument, sloc)
	}

	p := e.profile

	effort := p.A * math.Pow(float64(sloc)/1000, p.B) * e.eaf
	developmentTime := p.C * math.Pow(effort, p.D)

	return Result{
		Effort:          effort,
		DevelopmentTime: developmentTime,
		PeopleRequired:  effort / developmentTime,
	}, nil
}

// Class returns the project class of the estimator
func (e *Estimator) Class() ProjectClass {
	return e.class
}

// Profile returns the formula coefficients in use
func (e *Estimator) Profile() Profile {
	return e.profile
}

// EAF returns the effort adjustment factor, the product of the 15 resolved multipliers
func (e *Estimator) EAF() float64 {
	return e.eaf
}

// Factor returns the resolved multiplier of an attribute
func (e *Estimator) Factor(attr Attribute) float64 {
	return e.factors[attr]
}

// Factors returns a copy of the resolved multipliers
func (e *Estimator) Factors() map[Attribute]float64 {
	out := make(map[Attribute]float64, len(e.factors))
	for k, v := range e.factors {
		out[k] = v
	}
	return out
}
