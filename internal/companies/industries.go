package companies

import (
	"slices"

	"github.com/JaimeStill/sustainassess/pkg/validation"
)

// IndustryOther is the catch-all industry whose question set also serves
// industries without one of their own.
const IndustryOther = "Other"

var industries = []string{
	"Manufacturing",
	"IT/Technology",
	"Healthcare",
	"Finance",
	"Retail",
	"Construction",
	"Energy",
	"Agriculture",
	"Transportation",
	"Chemicals",
	"Textile",
	"Pharmaceuticals",
	"Automobile",
	"Paper and Packaging",
	"Other Manufacturing",
	"Education",
	"Technology",
	IndustryOther,
}

func init() {
	validation.Register("industry", IsIndustry, "must be a supported industry")
}

// Industries returns the supported industries in display order.
func Industries() []string {
	return slices.Clone(industries)
}

// IsIndustry reports whether name is a supported industry.
func IsIndustry(name string) bool {
	return slices.Contains(industries, name)
}
