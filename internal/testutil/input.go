// Package testutil provides testing utilities for lazyconf.
package testutil

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TestInput represents a parsed call fixture.
//
// A fixture is a YAML call description, a line holding only ---, and the
// expected output:
//
//	builtin: reverse
//	args: [[1, 2, 3]]
//	---
//	- 3
//	- 2
//	- 1
//
// An argument written as {builtin: name} stands for the named builtin as
// a function value.
type TestInput struct {
	Builtin  string         `yaml:"builtin"`
	Args     []any          `yaml:"args"`
	Kwargs   map[string]any `yaml:"kwargs"`
	Settings *TestSettings  `yaml:"settings"`
	Expected string         `yaml:"-"`
}

// TestSettings overrides environment settings for one fixture.
type TestSettings struct {
	ExtendThreshold *int    `yaml:"extend_threshold"`
	Fuel            *uint64 `yaml:"fuel"`
}

// ParseTestInputFile reads and parses a fixture file.
func ParseTestInputFile(path string) (*TestInput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTestInput(string(content))
}

// ParseTestInput parses fixture content.
func ParseTestInput(content string) (*TestInput, error) {
	input := &TestInput{}
	parts := strings.SplitN(content, "\n---\n", 2)

	if strings.TrimSpace(parts[0]) != "" {
		if err := yaml.Unmarshal([]byte(parts[0]), input); err != nil {
			return nil, err
		}
	}
	if len(parts) == 2 {
		input.Expected = parts[1]
	}
	return input, nil
}

// BuiltinRef returns the builtin name if arg is a {builtin: name} marker.
func BuiltinRef(arg any) (string, bool) {
	m, ok := arg.(map[string]any)
	if !ok || len(m) != 1 {
		return "", false
	}
	name, ok := m["builtin"].(string)
	return name, ok
}

// GlobTestInputs finds all fixture files matching a pattern.
func GlobTestInputs(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// TestResult represents the result of running a single fixture.
type TestResult struct {
	Name     string
	Passed   bool
	Skipped  bool
	Error    error
	Expected string
	Actual   string
}

// Diff returns a simple diff between expected and actual output.
func (r *TestResult) Diff() string {
	if r.Expected == r.Actual {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== Expected ===\n")
	sb.WriteString(r.Expected)
	if !strings.HasSuffix(r.Expected, "\n") {
		sb.WriteString("⏎\n")
	}
	sb.WriteString("=== Actual ===\n")
	sb.WriteString(r.Actual)
	if !strings.HasSuffix(r.Actual, "\n") {
		sb.WriteString("⏎\n")
	}
	sb.WriteString("=== End ===\n")
	return sb.String()
}

// LoadSkipList loads a skip list file (one fixture name per line, # for
// comments). A missing file is an empty list.
func LoadSkipList(path string) (map[string]bool, error) {
	skipList := make(map[string]bool)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return skipList, nil
	}
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		skipList[line] = true
	}
	return skipList, nil
}
