package analysis

// SectionHeadings are the four mandatory section labels the model is asked
// to produce. They must stay mutually non-overlapping: the display layer
// highlights them one pass at a time.
var SectionHeadings = []string{
	"Detailed Analysis:",
	"Findings Report:",
	"Recommendation and Next Steps:",
	"Treatment Suggestion:",
}

// Disclaimer is the sentence the model must attach to every analysis.
const Disclaimer = "Consult with a doctor before making any decisions."
