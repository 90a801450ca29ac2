package cocomo

// ProjectClass identifies one of the three COCOMO development modes
type ProjectClass string

const (
	// Organic projects: small teams with good experience working with less than rigid requirements
	ClassOrganic ProjectClass = "organic"
	// SemiDetached projects: medium teams with mixed experience and a mix of rigid and less than rigid requirements
	ClassSemiDetached ProjectClass = "semi-detached"
	// Embedded projects: developed within tight hardware, software and operational constraints
	ClassEmbedded ProjectClass = "embedded"
)

// Profile holds the coefficients of the cost formula for a project class
type Profile struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
}

var profiles = map[ProjectClass]Profile{
	ClassOrganic:      {A: 3.2, B: 1.05, C: 2.5, D: 0.38},
	ClassSemiDetached: {A: 3.0, B: 1.12, C: 2.5, D: 0.35},
	ClassEmbedded:     {A: 2.8, B: 1.20, C: 2.5, D: 0.32},
}

// Classes returns the supported project classes
func Classes() []ProjectClass {
	return []ProjectClass{ClassOrganic, ClassSemiDetached, ClassEmbedded}
}

// ProfileOf returns the coefficients of the given class
func ProfileOf(class ProjectClass) (Profile, bool) {
	p, ok := profiles[class]
	return p, ok
}

// Valid reports whether c is one of the supported project classes
func (c ProjectClass) Valid() bool {
	_, ok := profiles[c]
	return ok
}

// Rating is a qualitative level used to select an attribute multiplier
type Rating string

const (
	RatingVeryLow   Rating = "very-low"
	RatingLow       Rating = "low"
	RatingNominal   Rating = "nominal"
	RatingHigh      Rating = "high"
	RatingVeryHigh  Rating = "very-high"
	RatingExtraHigh Rating = "extra-high"
)

// Ratings returns the rating levels from lowest to highest
func Ratings() []Rating {
	return []Rating{RatingVeryLow, RatingLow, RatingNominal, RatingHigh, RatingVeryHigh, RatingExtraHigh}
}

// Abbreviation returns the short form of the rating (VL, L, N, H, VH, XH)
func (r Rating) Abbreviation() string {
	for abbr, rating := range ratingAbbreviations {
		if rating == r {
			return abbr
		}
	}
	return ""
}

var ratingAbbreviations = map[string]Rating{
	"VL": RatingVeryLow,
	"L":  RatingLow,
	"N":  RatingNominal,
	"H":  RatingHigh,
	"VH": RatingVeryHigh,
	"XH": RatingExtraHigh,
}

// Attribute is one of the 15 effort adjustment cost drivers
type Attribute string

const (
	AttrReliability          Attribute = "rely"
	AttrDatabaseSize         Attribute = "data"
	AttrComplexity           Attribute = "cplx"
	AttrRuntimeConstraints   Attribute = "time"
	AttrMemoryConstraints    Attribute = "stor"
	AttrPlatformVolatility   Attribute = "virt"
	AttrTurnaroundTime       Attribute = "turn"
	AttrAnalystCapability    Attribute = "acap"
	AttrApplicationsExp      Attribute = "aexp"
	AttrProgrammerCapability Attribute = "pcap"
	AttrPlatformExp          Attribute = "vexp"
	AttrLanguageExp          Attribute = "lexp"
	AttrModernPractices      Attribute = "modp"
	AttrSoftwareTools        Attribute = "tool"
	AttrScheduleConstraint   Attribute = "sced"
)

var attributes = []Attribute{
	AttrReliability,
	AttrDatabaseSize,
	AttrComplexity,
	AttrRuntimeConstraints,
	AttrMemoryConstraints,
	AttrPlatformVolatility,
	AttrTurnaroundTime,
	AttrAnalystCapability,
	AttrApplicationsExp,
	AttrProgrammerCapability,
	AttrPlatformExp,
	AttrLanguageExp,
	AttrModernPractices,
	AttrSoftwareTools,
	AttrScheduleConstraint,
}

var attributeLabels = map[Attribute]string{
	AttrReliability:          "Required software reliability",
	AttrDatabaseSize:         "Size of application database",
	AttrComplexity:           "Complexity of the product",
	AttrRuntimeConstraints:   "Run-time performance constraints",
	AttrMemoryConstraints:    "Memory constraints",
	AttrPlatformVolatility:   "Volatility of the virtual machine environment",
	AttrTurnaroundTime:       "Required turnabout time",
	AttrAnalystCapability:    "Analyst capability",
	AttrApplicationsExp:      "Applications experience",
	AttrProgrammerCapability: "Software engineer capability",
	AttrPlatformExp:          "Virtual machine experience",
	AttrLanguageExp:          "Programming language experience",
	AttrModernPractices:      "Application of software engineering methods",
	AttrSoftwareTools:        "Use of software tools",
	AttrScheduleConstraint:   "Required development schedule",
}

// Attributes returns the cost drivers in their canonical order.
// The returned slice is a copy.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Label returns the human readable name of the attribute
func (a Attribute) Label() string {
	return attributeLabels[a]
}

// Valid reports whether a is one of the 15 cost drivers
func (a Attribute) Valid() bool {
	_, ok := multipliers[a]
	return ok
}

// Multipliers, ordered VL, L, N, H, VH, XH. Nominal is always 1.00.
var multipliers = map[Attribute]map[Rating]float64{
	AttrReliability:          row(0.75, 0.88, 1.00, 1.15, 1.40, 1.40),
	AttrDatabaseSize:         row(0.94, 0.94, 1.00, 1.08, 1.16, 1.16),
	AttrComplexity:           row(0.70, 0.85, 1.00, 1.15, 1.30, 1.65),
	AttrRuntimeConstraints:   row(1.00, 1.00, 1.00, 1.11, 1.30, 1.66),
	AttrMemoryConstraints:    row(1.00, 1.00, 1.00, 1.06, 1.21, 1.56),
	AttrPlatformVolatility:   row(0.87, 0.87, 1.00, 1.15, 1.30, 1.30),
	AttrTurnaroundTime:       row(0.87, 0.87, 1.00, 1.07, 1.15, 1.15),
	AttrAnalystCapability:    row(1.46, 1.19, 1.00, 0.86, 0.71, 0.71),
	AttrApplicationsExp:      row(1.29, 1.13, 1.00, 0.91, 0.82, 0.82),
	AttrProgrammerCapability: row(1.42, 1.17, 1.00, 0.86, 0.70, 0.70),
	AttrPlatformExp:          row(1.21, 1.10, 1.00, 0.90, 0.90, 0.90),
	AttrLanguageExp:          row(1.14, 1.07, 1.00, 0.95, 0.95, 0.95),
	AttrModernPractices:      row(1.24, 1.10, 1.00, 0.91, 0.82, 0.82),
	AttrSoftwareTools:        row(1.24, 1.10, 1.00, 0.91, 0.83, 0.83),
	AttrScheduleConstraint:   row(1.23, 1.08, 1.00, 1.04, 1.10, 1.10),
}

func row(vl, l, n, h, vh, xh float64) map[Rating]float64 {
	return map[Rating]float64{
		RatingVeryLow:   vl,
		RatingLow:       l,
		RatingNominal:   n,
		RatingHigh:      h,
		RatingVeryHigh:  vh,
		RatingExtraHigh: xh,
	}
}

// Multiplier returns the table factor for an attribute at a given rating
func Multiplier(attr Attribute, rating Rating) (float64, bool) {
	values, ok := multipliers[attr]
	if !ok {
		return 0, false
	}
	v, ok := values[rating]
	return v, ok
}
