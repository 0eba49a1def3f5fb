package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"rect":     rectCases,
	"rounded":  roundedCases,
	"border":   borderCases,
	"gradient": gradientCases,
	"colors":   colorCases,
	"large":    largeCases,
}
