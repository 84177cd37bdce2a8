package model

// Selection is the stored (not effective) choice of project, function and
// test case. Empty strings mean nothing was chosen.
type Selection struct {
	Project  Path
	Function string
	TestCase string
}
