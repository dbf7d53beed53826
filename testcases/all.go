package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"shapes":    shapeCases,
	"styles":    styleCases,
	"charts":    chartCases,
	"fill":      fillCases,
	"transform": transformCases,
}

// Find returns the test case with the given category and name.
func Find(category, name string) (TestCase, bool) {
	for _, tc := range All[category] {
		if tc.Name == name {
			return tc, true
		}
	}
	return TestCase{}, false
}
