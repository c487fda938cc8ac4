package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"rounded":   roundedCases,
	"outline":   outlineCases,
	"glow":      glowCases,
	"transform": transformCases,
	"shadow":    shadowCases,
	"precision": precisionCases,
	"complex":   complexCases,
	"large":     largeCases,
}
