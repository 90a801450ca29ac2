package model

import (
	"fmt"
	"time"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/google/uuid"
)

// ProjectID is a unique identifier for a project
type ProjectID string

// Project holds the inputs of an estimation: size, class and attribute ratings
type Project struct {
	ID          ProjectID           `yaml:"id" json:"id" validate:"required"`
	Label       string              `yaml:"label" json:"label"`
	Description string              `yaml:"description" json:"description,omitempty"`
	CreatedAt   time.Time           `yaml:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `yaml:"updatedAt" json:"updatedAt"`
	SLOC        int                 `yaml:"sloc" json:"sloc" validate:"gte=0"`
	Class       cocomo.ProjectClass `yaml:"class" json:"class" validate:"omitempty,oneof=organic semi-detached embedded"`
	Ratings     map[string]string   `yaml:"ratings" json:"ratings"`
}

// NewProject creates a new organic project with the given label and all ratings nominal
func NewProject(label string) *Project {
	now := time.Now()
	return &Project{
		ID:          ProjectID(generateID()),
		Label:       label,
		Description: "",
		CreatedAt:   now,
		UpdatedAt:   now,
		SLOC:        0,
		Class:       cocomo.ClassOrganic,
		Ratings:     make(map[string]string),
	}
}

// SetRating sets the rating of an attribute.
// Unlike the estimator, a project only accepts known attributes and ratings.
func (p *Project) SetRating(attr string, rating string) error {
	if !cocomo.Attribute(attr).Valid() {
		return fmt.Errorf("unknown attribute '%s'", attr)
	}
	r, ok := cocomo.ParseRating(rating)
	if !ok {
		return fmt.Errorf("invalid rating '%s' for attribute '%s'", rating, attr)
	}

	if p.Ratings == nil {
		p.Ratings = make(map[string]string)
	}
	p.Ratings[attr] = string(r)
	p.UpdatedAt = time.Now()
	return nil
}

// ClearRating resets an attribute to nominal
func (p *Project) ClearRating(attr string) {
	delete(p.Ratings, attr)
	p.UpdatedAt = time.Now()
}

// SetSLOC updates the size of the project
func (p *Project) SetSLOC(sloc int) {
	p.SLOC = sloc
	p.UpdatedAt = time.Now()
}

// SetClass updates the project class
func (p *Project) SetClass(class cocomo.ProjectClass) {
	p.Class = class
	p.UpdatedAt = time.Now()
}

// Rating returns the rating of an attribute, nominal if unset or invalid
func (p *Project) Rating(attr cocomo.Attribute) cocomo.Rating {
	if r, ok := cocomo.ParseRating(p.Ratings[string(attr)]); ok {
		return r
	}
	return cocomo.RatingNominal
}

// Estimator builds the estimator described by the project
func (p *Project) Estimator(opts ...cocomo.Option) (*cocomo.Estimator, error) {
	class := p.Class
	if class == "" {
		class = cocomo.ClassOrganic
	}
	return cocomo.New(class, p.Ratings, opts...)
}

// Estimate computes the estimate of the project
func (p *Project) Estimate(opts ...cocomo.Option) (*cocomo.Estimator, cocomo.Result, error) {
	est, err := p.Estimator(opts...)
	if err != nil {
		return nil, cocomo.Result{}, err
	}
	result, err := est.Estimate(p.SLOC)
	if err != nil {
		return est, cocomo.Result{}, err
	}
	return est, result, nil
}

// Validate checks the project fields
func (p *Project) Validate() error {
	return validate.Struct(p)
}

func generateID() string {
	return uuid.New().String()[:8]
}
