// Package rules implements the declarative business-rule evaluator used by the
// early application stages. Rule definitions and decision criteria live in a
// YAML document so that thresholds can change without a redeploy.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule is one named check with numeric parameters. The evaluator maps the name
// to a scoring function; names it does not recognize evaluate to a neutral
// pass so that a newer document never blocks an older binary.
type Rule struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params"`
}

// Op is a comparison operator usable in decision criteria conditions.
type Op string

const (
	OpGte Op = "gte"
	OpGt  Op = "gt"
	OpLte Op = "lte"
	OpLt  Op = "lt"
	OpEq  Op = "eq"
)

// Condition compares a named fact about the application against a constant.
type Condition struct {
	Field string  `yaml:"field"`
	Op    Op      `yaml:"op"`
	Value float64 `yaml:"value"`
}

// Criteria holds the auto-approve and auto-reject condition lists of a stage.
// A list fires when every condition in it holds; when both fire the rejection
// wins.
type Criteria struct {
	AutoApprove []Condition `yaml:"autoApprove"`
	AutoReject  []Condition `yaml:"autoReject"`
}

// Thresholds are the decision bands of a stage: a composite score at or above
// Approve approves outright, at or above Conditional lands in the soft band,
// anything below rejects. The bands are configuration; processors only carry
// built-in fallbacks for documents that omit them.
type Thresholds struct {
	Approve     float64 `yaml:"approve"`
	Conditional float64 `yaml:"conditional"`
}

// Set reports whether the document actually configured the bands.
func (t Thresholds) Set() bool { return t.Approve > 0 }

// StageRules is the rule set, decision criteria and thresholds of a single
// stage.
type StageRules struct {
	Rules      []Rule     `yaml:"rules"`
	Criteria   Criteria   `yaml:"criteria"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// Document is the full business-rule document.
type Document struct {
	Version int                   `yaml:"version"`
	Stages  map[string]StageRules `yaml:"stages"`
}

// StageRules returns the rule set of the given stage; the second result is
// false when the document has no entry for it.
func (d *Document) StageRules(stage string) (StageRules, bool) {
	sr, ok := d.Stages[stage]

	return sr, ok
}

// LoadDocument reads and parses a rule document from the given path.
func LoadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rule document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not parse rule document: %w", err)
	}

	return &doc, nil
}
