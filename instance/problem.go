package instance

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"q.log/exactsimplex/model"
)

// ErrInvalidProblem is returned for a problem file that parses but cannot
// describe a linear program.
var ErrInvalidProblem = errors.New("instance: invalid problem")

// Problem is the YAML form of a linear program with integer data.
type Problem struct {
	Name string `yaml:"name"`
	// Objective holds the coefficients to maximize followed by the
	// constant term.
	Objective     []Int        `yaml:"objective"`
	Constraints   []Constraint `yaml:"constraints"`
	EqualityBasis []int        `yaml:"equality_basis,omitempty"`
	MaxSteps      int          `yaml:"max_steps,omitempty"`
}

// Constraint is one row: coefficients, a relation token and the rhs.
type Constraint struct {
	Coefficients []Int `yaml:"coefficients"`
	Relation     string `yaml:"relation"`
	RHS          Int    `yaml:"rhs"`
}

// Int is a problem coefficient. Only plain YAML integers decode into it, so
// 1.5 or "2" is rejected instead of being truncated or coerced.
type Int int64

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Int) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("%w: line %d: %q is not an integer", ErrInvalidProblem, node.Line, node.Value)
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidProblem, node.Line, err)
	}
	*i = Int(v)
	return nil
}

func int64s(xs []Int) []int64 {
	out := make([]int64, len(xs))
	for k, x := range xs {
		out[k] = int64(x)
	}
	return out
}

// Instance is a loaded problem ready for standardization.
type Instance struct {
	Name     string
	Builder  *model.Builder
	MaxSteps int
}

// LoadProblem reads and validates a YAML problem file.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	return ParseProblem(data)
}

// ParseProblem decodes a YAML problem. Unknown fields are rejected.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Problem) validate() error {
	if len(p.Objective) == 0 {
		return fmt.Errorf("%w: objective is empty", ErrInvalidProblem)
	}
	if len(p.Constraints) == 0 {
		return fmt.Errorf("%w: no constraints", ErrInvalidProblem)
	}
	if p.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps is negative", ErrInvalidProblem)
	}
	for i, c := range p.Constraints {
		if _, err := ParseRelation(c.Relation); err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
	}
	return nil
}

// Instance turns the problem into a builder.
func (p *Problem) Instance() (*Instance, error) {
	b := model.NewBuilder()
	for i, c := range p.Constraints {
		rel, err := ParseRelation(c.Relation)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		b.AddConstraint(int64s(c.Coefficients), int64(c.RHS), rel)
	}
	obj, err := model.RowFromInts(int64s(p.Objective)...)
	if err != nil {
		return nil, err
	}
	b.SetObjective(obj)
	if len(p.EqualityBasis) > 0 {
		b.SetEqualityBasis(p.EqualityBasis...)
	}
	return &Instance{Name: p.Name, Builder: b, MaxSteps: p.MaxSteps}, nil
}

