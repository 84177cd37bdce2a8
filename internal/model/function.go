package model

// TestInput is one argument of a test case. Value holds JSON text; a nil
// Value means the argument was left unset.
type TestInput struct {
	Name  string
	Value *string
}

// TestCase is a named set of inputs for a function.
type TestCase struct {
	Name   string
	Inputs []TestInput
}

// Function is a callable entry of a compiled artifact.
type Function struct {
	Name      string
	Params    []string
	TestCases []TestCase
}
