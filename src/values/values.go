// Package values defines the PVQ-RR basic value catalog, its grouping into
// four higher-order dimensions, and the ranking and aggregation primitives
// every other package builds on.
//
// The catalog is fixed at compile time. Its declaration order is the
// tie-break order used by every ranking in the module.
package values

import (
	"traitgen/src/errors"
)

// Dimension is one of the four higher-order value dimensions.
type Dimension string

const (
	SelfTranscendence Dimension = "self-transcendence"
	Openness          Dimension = "openness"
	Conservation      Dimension = "conservation"
	SelfEnhancement   Dimension = "self-enhancement"
)

// dimensions is the declaration order used to break ties between aggregates.
var dimensions = []Dimension{
	SelfTranscendence,
	Openness,
	Conservation,
	SelfEnhancement,
}

// Value is a single basic value in the catalog.
type Value struct {
	Code      string
	Label     string
	Dimension Dimension
}

var catalog = []Value{
	{Code: "SDT", Label: "Self-Direction Thought", Dimension: Openness},
	{Code: "SDA", Label: "Self-Direction Action", Dimension: Openness},
	{Code: "STI", Label: "Stimulation", Dimension: Openness},
	{Code: "HED", Label: "Hedonism", Dimension: Openness},
	{Code: "ACM", Label: "Achievement", Dimension: SelfEnhancement},
	{Code: "POD", Label: "Power Dominance", Dimension: SelfEnhancement},
	{Code: "POR", Label: "Power Resources", Dimension: SelfEnhancement},
	{Code: "FAC", Label: "Face", Dimension: SelfEnhancement},
	{Code: "SEP", Label: "Security Personal", Dimension: Conservation},
	{Code: "SES", Label: "Security Societal", Dimension: Conservation},
	{Code: "TRD", Label: "Tradition", Dimension: Conservation},
	{Code: "COR", Label: "Conformity Rules", Dimension: Conservation},
	{Code: "COI", Label: "Conformity Interpersonal", Dimension: Conservation},
	{Code: "HUM", Label: "Humility", Dimension: SelfTranscendence},
	{Code: "UNN", Label: "Universalism Nature", Dimension: SelfTranscendence},
	{Code: "UNC", Label: "Universalism Concern", Dimension: SelfTranscendence},
	{Code: "UNT", Label: "Universalism Tolerance", Dimension: SelfTranscendence},
	{Code: "BEC", Label: "Benevolence Caring", Dimension: SelfTranscendence},
	{Code: "BED", Label: "Benevolence Dependability", Dimension: SelfTranscendence},
}

// byCode indexes catalog positions.
var byCode = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, v := range catalog {
		idx[v.Code] = i
	}
	return idx
}()

// Count is the number of basic values in the catalog.
func Count() int {
	return len(catalog)
}

// All returns the catalog in declaration order.
func All() []Value {
	out := make([]Value, len(catalog))
	copy(out, catalog)
	return out
}

// Codes returns every basic value code in declaration order.
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, v := range catalog {
		codes[i] = v.Code
	}
	return codes
}

// Dimensions returns the four higher-order dimensions in declaration order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// IsValidCode reports whether code names a catalog entry.
func IsValidCode(code string) bool {
	_, ok := byCode[code]
	return ok
}

// ValueByCode resolves a code to its catalog entry. The catalog is closed, so
// an unknown code is a caller defect and is reported as ErrUnknownValue.
func ValueByCode(code string) (Value, error) {
	i, ok := byCode[code]
	if !ok {
		return Value{}, errors.Wrapf(errors.ErrUnknownValue, "code %q", code)
	}
	return catalog[i], nil
}

// MustValueByCode is ValueByCode for static data; it panics on unknown codes.
func MustValueByCode(code string) Value {
	v, err := ValueByCode(code)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseDimension validates a dimension name.
func ParseDimension(name string) (Dimension, error) {
	for _, d := range dimensions {
		if string(d) == name {
			return d, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownDimension, "dimension %q", name)
}

// Members returns the catalog entries assigned to d, in declaration order.
func (d Dimension) Members() []Value {
	var out []Value
	for _, v := range catalog {
		if v.Dimension == d {
			out = append(out, v)
		}
	}
	return out
}
