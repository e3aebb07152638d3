package narrative

import (
	"fmt"
	"slices"
)

// FallbackSummary renders the templated executive summary used when no model responds.
func FallbackSummary(company, industry string, score int) string {
	return fmt.Sprintf(
		"Assessment completed for %s in the %s industry, achieving a compliance score of %d%%, indicating %s. "+
			"The evaluation reveals key insights into the organization's environmental, social, and governance practices "+
			"through comprehensive analysis of sustainability metrics. "+
			"Industry-specific considerations for %s operations have been thoroughly examined, "+
			"highlighting both current strengths and areas requiring strategic attention. "+
			"The assessment identifies critical pathways for improvement while recognizing existing sustainability "+
			"initiatives that demonstrate organizational commitment. "+
			"Risk factors and compliance gaps have been evaluated against industry standards and best practices. "+
			"Strategic recommendations focus on actionable steps to enhance sustainability performance "+
			"and achieve long-term environmental and social responsibility goals.",
		company, industry, score, scoreContext(score), industry,
	)
}

func scoreContext(score int) string {
	switch {
	case score >= 80:
		return "excellent performance with strong sustainability practices"
	case score >= 60:
		return "good performance with opportunities for enhancement"
	case score >= 40:
		return "moderate performance requiring focused improvements"
	default:
		return "concerning performance requiring immediate strategic intervention"
	}
}

var fallbackSets = map[string]Suggestions{
	"Manufacturing": {
		Improvements: []string{
			"Implement lean manufacturing principles to reduce waste",
			"Upgrade to energy-efficient machinery and equipment",
			"Establish a comprehensive recycling program for production waste",
			"Implement water conservation and treatment systems",
			"Develop supplier sustainability requirements and auditing",
		},
		BestPractices: []string{
			"ISO 14001 Environmental Management System certification",
			"Regular environmental impact assessments",
			"Employee training on sustainability practices",
			"Circular economy principles in product design",
		},
		ActionItems: []string{
			"Conduct energy audit within next quarter",
			"Set measurable waste reduction targets",
			"Implement monthly sustainability metrics reporting",
			"Train management team on sustainability leadership",
		},
		PriorityLevel: PriorityMedium,
	},
	"IT/Technology": {
		Improvements: []string{
			"Migrate to cloud infrastructure for better energy efficiency",
			"Implement comprehensive e-waste recycling programs",
			"Optimize data center cooling and power usage",
			"Promote remote work to reduce carbon footprint",
			"Use renewable energy sources for operations",
		},
		BestPractices: []string{
			"Green software development practices",
			"ENERGY STAR certified equipment procurement",
			"Carbon footprint measurement and reporting",
			"Sustainable IT disposal and refurbishment programs",
		},
		ActionItems: []string{
			"Audit current IT infrastructure energy consumption",
			"Develop remote work sustainability policy",
			"Partner with certified e-waste recycling vendors",
			"Implement power management settings on all devices",
		},
		PriorityLevel: PriorityMedium,
	},
}

var defaultFallback = Suggestions{
	Improvements: []string{
		"Develop and implement a formal sustainability policy",
		"Establish measurable environmental targets and KPIs",
		"Implement energy-efficient technologies and practices",
		"Create employee awareness and training programs",
		"Establish partnerships with sustainable suppliers",
	},
	BestPractices: []string{
		"Regular sustainability reporting and transparency",
		"Stakeholder engagement on environmental issues",
		"Continuous improvement and innovation in sustainability",
		"Industry collaboration on sustainability initiatives",
	},
	ActionItems: []string{
		"Conduct baseline sustainability assessment",
		"Set short-term and long-term sustainability goals",
		"Assign sustainability champions across departments",
		"Implement monthly sustainability progress reviews",
	},
	PriorityLevel: PriorityMedium,
}

// FallbackSuggestions returns the fixed suggestion set for an industry.
// Industries without a dedicated set receive the general one.
func FallbackSuggestions(industry string) Suggestions {
	set, ok := fallbackSets[industry]
	if !ok {
		set = defaultFallback
	}
	return Suggestions{
		Improvements:  slices.Clone(set.Improvements),
		BestPractices: slices.Clone(set.BestPractices),
		ActionItems:   slices.Clone(set.ActionItems),
		PriorityLevel: set.PriorityLevel,
	}
}
