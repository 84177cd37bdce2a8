package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	m "playground.dev/pkg/playground/internal/model"
)

// SchemaCompilerVersion is reported by LocalSchemaCompiler.Version.
const SchemaCompilerVersion = "schema-compiler 0.4.0"

var lineInError = regexp.MustCompile(`line (\d+)`)

type schemaDocument struct {
	RequiredEnv []string         `yaml:"required_env" toml:"required_env"`
	Functions   []schemaFunction `yaml:"functions" toml:"functions"`
}

type schemaFunction struct {
	Name   string       `yaml:"name" toml:"name"`
	Params []string     `yaml:"params" toml:"params"`
	Prompt string       `yaml:"prompt" toml:"prompt"`
	Tests  []schemaTest `yaml:"tests" toml:"tests"`
}

type schemaTest struct {
	Name string             `yaml:"name" toml:"name"`
	Args map[string]*string `yaml:"args" toml:"args"`
}

// LocalSchemaCompiler compiles YAML and TOML prompt schemas in process.
type LocalSchemaCompiler struct{}

// NewLocalSchemaCompiler constructs a LocalSchemaCompiler.
func NewLocalSchemaCompiler() *LocalSchemaCompiler {
	return &LocalSchemaCompiler{}
}

// LoadLocalSchemaCompiler is a CompilerLoader for LocalSchemaCompiler.
func LoadLocalSchemaCompiler(ctx context.Context) (Compiler, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewLocalSchemaCompiler(), nil
}

// Version implements Compiler.
func (c *LocalSchemaCompiler) Version() string {
	return SchemaCompilerVersion
}

// Build implements Compiler. Files outside root are dropped.
func (c *LocalSchemaCompiler) Build(ctx context.Context, root m.Path, files m.FileSet) (CompilerProject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &schemaProject{root: root, files: files.Under(root)}, nil
}

type schemaProject struct {
	root  m.Path
	files m.FileSet
}

type compiledFunction struct {
	function m.Function
	prompt   *template.Template
}

// Compile implements CompilerProject.
func (p *schemaProject) Compile(ctx context.Context, env m.Environment) (Artifact, m.Diagnostics, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		diags    m.Diagnostics
		failed   bool
		order    []string
		required []string
	)

	functions := make(map[string]*compiledFunction)
	seenEnv := make(map[string]struct{})

	for _, path := range p.files.Paths() {
		doc, diag, ok := decodeSchema(path, p.files[path])
		if diag == nil && !ok {
			continue
		}

		if !ok {
			diags = append(diags, *diag)
			failed = true

			continue
		}

		for _, key := range doc.RequiredEnv {
			if _, dup := seenEnv[key]; dup {
				continue
			}

			seenEnv[key] = struct{}{}
			required = append(required, key)
		}

		for i, fn := range doc.Functions {
			name := strings.TrimSpace(fn.Name)
			if name == "" {
				diags = append(diags, schemaDiag(m.SeverityError, path, "function #%d has no name", i+1))
				continue
			}

			if _, dup := functions[name]; dup {
				diags = append(diags, schemaDiag(m.SeverityError, path, "function %s is declared more than once", name))
				continue
			}

			prompt, err := template.New(name).
				Funcs(promptFuncs(nil)).
				Option("missingkey=error").
				Parse(fn.Prompt)
			if err != nil {
				diags = append(diags, schemaDiag(m.SeverityError, path, "prompt of %s: %v", name, err))
				failed = true

				continue
			}

			diags = append(diags, checkTests(path, name, fn)...)
			functions[name] = &compiledFunction{
				function: m.Function{Name: name, Params: fn.Params, TestCases: buildTestCases(fn)},
				prompt:   prompt,
			}
			order = append(order, name)
		}
	}

	for _, key := range required {
		if _, ok := env.Lookup(key); !ok {
			diags = append(diags, m.Diagnostic{
				Severity: m.SeverityWarning,
				Message:  fmt.Sprintf("required environment variable %s is not set", key),
			})
		}
	}

	if failed {
		slog.Debug("schema compilation failed", "root", p.root, "diagnostics", len(diags))
		return nil, nil, &DiagnosticError{Diagnostics: diags}
	}

	slog.Debug("schema compiled", "root", p.root, "functions", len(order), "diagnostics", len(diags))

	return &schemaArtifact{functions: functions, order: order, required: required}, diags, nil
}

// decodeSchema parses one file. It returns ok=false with a nil diagnostic
// for files that are not schemas.
func decodeSchema(path m.Path, content string) (schemaDocument, *m.Diagnostic, bool) {
	var (
		doc schemaDocument
		err error
	)

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(content), &doc)
	case ".toml":
		_, err = toml.Decode(content, &doc)
	default:
		return doc, nil, false
	}

	if err != nil {
		diag := schemaDiag(m.SeverityError, path, "%v", err)
		if match := lineInError.FindStringSubmatch(err.Error()); match != nil {
			diag.Line, _ = strconv.Atoi(match[1])
		}

		return doc, &diag, false
	}

	return doc, nil, true
}

func checkTests(path m.Path, name string, fn schemaFunction) m.Diagnostics {
	var diags m.Diagnostics

	if len(fn.Tests) == 0 {
		diags = append(diags, schemaDiag(m.SeverityWarning, path, "function %s has no test cases", name))
	}

	params := make(map[string]struct{}, len(fn.Params))
	for _, param := range fn.Params {
		params[param] = struct{}{}
	}

	for _, test := range fn.Tests {
		for _, arg := range sortedKeys(test.Args) {
			if _, ok := params[arg]; !ok {
				diags = append(diags, schemaDiag(m.SeverityWarning, path,
					"test %s of %s sets unknown param %s", test.Name, name, arg))
			}
		}
	}

	return diags
}

func buildTestCases(fn schemaFunction) []m.TestCase {
	cases := make([]m.TestCase, 0, len(fn.Tests))

	for _, test := range fn.Tests {
		inputs := make([]m.TestInput, 0, len(test.Args))
		seen := make(map[string]struct{}, len(test.Args))

		for _, param := range fn.Params {
			if value, ok := test.Args[param]; ok {
				inputs = append(inputs, m.TestInput{Name: param, Value: value})
				seen[param] = struct{}{}
			}
		}

		for _, arg := range sortedKeys(test.Args) {
			if _, ok := seen[arg]; !ok {
				inputs = append(inputs, m.TestInput{Name: arg, Value: test.Args[arg]})
			}
		}

		cases = append(cases, m.TestCase{Name: test.Name, Inputs: inputs})
	}

	return cases
}

func sortedKeys(args map[string]*string) []string {
	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func schemaDiag(severity m.Severity, path m.Path, format string, args ...any) m.Diagnostic {
	return m.Diagnostic{Severity: severity, Message: fmt.Sprintf(format, args...), File: path}
}

// promptFuncs returns the template functions. A nil env is used while
// parsing, where only the names matter.
func promptFuncs(env m.Environment) template.FuncMap {
	return template.FuncMap{
		"env": func(key string) (string, error) {
			value, ok := env.Lookup(key)
			if !ok {
				return "", fmt.Errorf("environment variable %s is not set", key)
			}

			return value, nil
		},
	}
}

type schemaArtifact struct {
	functions map[string]*compiledFunction
	order     []string
	required  []string
}

// ListFunctions implements Artifact.
func (a *schemaArtifact) ListFunctions(_ m.Environment) []m.Function {
	out := make([]m.Function, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.functions[name].function)
	}

	return out
}

// RenderPrompt implements Artifact.
func (a *schemaArtifact) RenderPrompt(env m.Environment, function string, params map[string]any) (string, error) {
	fn, ok := a.functions[function]
	if !ok {
		return "", fmt.Errorf("function %s not found", function)
	}

	tmpl, err := fn.prompt.Clone()
	if err != nil {
		return "", fmt.Errorf("clone prompt of %s: %w", function, err)
	}

	if params == nil {
		params = map[string]any{}
	}

	var out bytes.Buffer
	if err := tmpl.Funcs(promptFuncs(env)).Execute(&out, params); err != nil {
		return "", fmt.Errorf("render %s: %w", function, err)
	}

	return out.String(), nil
}

// RequiredEnvVars implements Artifact.
func (a *schemaArtifact) RequiredEnvVars() []string {
	return append([]string(nil), a.required...)
}
