// Package additive provides the food additive reference table and the
// ingredient-text extractor that resolves detections against it.
package additive

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

//go:embed additives.yml
var defaultTableYAML []byte

// tableDoc is the yaml shape of a reference table file.
type tableDoc struct {
	Additives []definitionDoc `yaml:"additives"`
}

type definitionDoc struct {
	Code        string `yaml:"code,omitempty"`
	Name        string `yaml:"name"`
	Tier        string `yaml:"tier"`
	Description string `yaml:"description,omitempty"`
	Deduction   int    `yaml:"deduction"`
}

// Table is the read-only additive reference table. It is populated once at
// load time and safe for concurrent lookups afterwards.
type Table struct {
	defs   []interfaces.AdditiveDefinition
	byCode map[string]*interfaces.AdditiveDefinition
}

// NewTable builds a table from definitions, validating each entry.
func NewTable(defs []interfaces.AdditiveDefinition) (*Table, error) {
	t := &Table{
		defs:   make([]interfaces.AdditiveDefinition, len(defs)),
		byCode: make(map[string]*interfaces.AdditiveDefinition, len(defs)),
	}
	copy(t.defs, defs)

	for i := range t.defs {
		d := &t.defs[i]
		if d.Name == "" {
			return nil, fmt.Errorf("additive: entry %d: name is required", i)
		}
		if !interfaces.ValidRiskTier(d.Tier) {
			return nil, fmt.Errorf("additive: %s: unknown risk tier %q", d.Name, d.Tier)
		}
		if d.Deduction < 0 {
			return nil, fmt.Errorf("additive: %s: deduction must be non-negative, got %d", d.Name, d.Deduction)
		}
		if d.Code != "" {
			key := strings.ToUpper(d.Code)
			if _, exists := t.byCode[key]; exists {
				return nil, fmt.Errorf("additive: duplicate code %s", d.Code)
			}
			t.byCode[key] = d
		}
	}
	return t, nil
}

// LoadTable reads a reference table from the given yaml file. An empty path
// loads the embedded default table.
func LoadTable(path string) (*Table, error) {
	data := defaultTableYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("additive: reading table %s: %w", path, err)
		}
	}

	doc := &tableDoc{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("additive: parsing table: %w", err)
	}

	defs := make([]interfaces.AdditiveDefinition, 0, len(doc.Additives))
	for _, d := range doc.Additives {
		defs = append(defs, interfaces.AdditiveDefinition{
			Code:        d.Code,
			Name:        d.Name,
			Tier:        interfaces.RiskTier(d.Tier),
			Description: d.Description,
			Deduction:   d.Deduction,
		})
	}
	return NewTable(defs)
}

// LookupByCode resolves an exact E-number identifier, case-insensitively.
// Returns nil when the code is not in the table.
func (t *Table) LookupByCode(code string) *interfaces.AdditiveDefinition {
	return t.byCode[strings.ToUpper(code)]
}

// LookupByNameContains resolves a name fragment against definition names,
// case-insensitively, matching when either string contains the other
// ("citric acid" resolves the "Citric acid" entry, "red 40" resolves
// "Allura Red AC (Red 40)"). Returns the first match in table order, or nil.
func (t *Table) LookupByNameContains(text string) *interfaces.AdditiveDefinition {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	for i := range t.defs {
		name := strings.ToLower(t.defs[i].Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return &t.defs[i]
		}
	}
	return nil
}

// Definitions returns a copy of all entries in table order.
func (t *Table) Definitions() []interfaces.AdditiveDefinition {
	out := make([]interfaces.AdditiveDefinition, len(t.defs))
	copy(out, t.defs)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.defs)
}
