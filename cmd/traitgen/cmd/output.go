package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"traitgen/src/archetype"
	"traitgen/src/errors"
	"traitgen/src/values"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func checkOutputFormat() error {
	switch outputFormat {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return errors.WithHint(errors.Newf("unknown output format %q", outputFormat),
		"use --output text, json or yaml")
}

// emit writes data as JSON or YAML, or calls text for human output.
func emit(w io.Writer, data interface{}, text func(io.Writer) error) error {
	switch outputFormat {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(data), "failed to encode json")
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return errors.Wrap(enc.Close(), "failed to encode yaml")
	}
	return text(w)
}

// matchView is the serialized form of an archetype match.
type matchView struct {
	Name           string             `json:"name" yaml:"name"`
	Category       archetype.Category `json:"category" yaml:"category"`
	Description    string             `json:"description" yaml:"description"`
	ImagePrompt    string             `json:"image_prompt" yaml:"image_prompt"`
	Score          int                `json:"score" yaml:"score"`
	MatchingValues []string           `json:"matching_values" yaml:"matching_values"`
}

func newMatchView(m archetype.Match) matchView {
	return matchView{
		Name:           m.Archetype.Name,
		Category:       m.Archetype.Category,
		Description:    m.Archetype.Description,
		ImagePrompt:    m.Archetype.ImagePrompt,
		Score:          m.Score,
		MatchingValues: m.MatchingValues,
	}
}

func section(w io.Writer, title string) {
	fmt.Fprint(w, pterm.DefaultSection.Sprint(title))
}

func table(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	fmt.Fprintln(w, out)
	return nil
}

func valueTable(vs []values.RankedValue) pterm.TableData {
	data := pterm.TableData{{"Code", "Label", "Dimension", "Score"}}
	for _, v := range vs {
		data = append(data, []string{v.Code, v.Label, string(v.Dimension), fmt.Sprintf("%.2f", v.Score)})
	}
	return data
}

func dimensionTable(ds []values.DimensionScore) pterm.TableData {
	data := pterm.TableData{{"Dimension", "Score", "Values"}}
	for _, d := range ds {
		members := d.Dimension.Members()
		codes := make([]string, len(members))
		for i, v := range members {
			codes[i] = v.Code
		}
		data = append(data, []string{string(d.Dimension), fmt.Sprintf("%.2f", d.Score), strings.Join(codes, " ")})
	}
	return data
}

// valueLabels maps codes to catalog labels.
func valueLabels(codes []string) string {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, values.MustValueByCode(code).Label)
	}
	return strings.Join(labels, ", ")
}
