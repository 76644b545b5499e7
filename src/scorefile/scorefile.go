// Package scorefile reads score mappings produced by the survey layer.
//
// A document is either a flat table of CODE = score or holds that table under
// a "scores" key. Codes are case-insensitive. Codes outside the catalog are
// dropped with a warning; out-of-range scores are kept with a warning.
// NaN and infinite scores are rejected.
package scorefile

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"traitgen/src/errors"
	"traitgen/src/logger"
	"traitgen/src/values"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported score file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// document accepts both the wrapped and the flat layout.
type document struct {
	Scores map[string]float64 `toml:"scores" yaml:"scores" json:"scores"`
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", errors.WithHint(errors.Wrapf(errors.ErrUnsupportedFormat, "file %s", path),
		"use a .toml, .yaml, .yml or .json file")
}

// Load reads and decodes a score file.
func Load(path string) (values.Scores, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read score file %s", path)
	}
	scores, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "score file %s", path)
	}
	logger.Debugw("loaded score file", "path", path, "format", format, "codes", len(scores))
	return scores, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (values.Scores, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidScores)
	}
	return normalize(raw)
}

func decodeRaw(data []byte, format Format) (map[string]float64, error) {
	var (
		doc  document
		flat map[string]float64
	)

	switch format {
	case TOML:
		var probe map[string]interface{}
		if _, err := toml.Decode(string(data), &probe); err != nil {
			return nil, errors.Wrap(err, "failed to parse toml")
		}
		if _, ok := probe["scores"]; ok {
			if _, err := toml.Decode(string(data), &doc); err != nil {
				return nil, errors.Wrap(err, "failed to parse toml scores table")
			}
			return doc.Scores, nil
		}
		if _, err := toml.Decode(string(data), &flat); err != nil {
			return nil, errors.Wrap(err, "failed to parse toml scores")
		}
		return flat, nil

	case YAML:
		var probe map[string]interface{}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, errors.Wrap(err, "failed to parse yaml")
		}
		if _, ok := probe["scores"]; ok {
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return nil, errors.Wrap(err, "failed to parse yaml scores table")
			}
			return doc.Scores, nil
		}
		if err := yaml.Unmarshal(data, &flat); err != nil {
			return nil, errors.Wrap(err, "failed to parse yaml scores")
		}
		return flat, nil

	case JSON:
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, errors.Wrap(err, "failed to parse json")
		}
		if inner, ok := probe["scores"]; ok {
			if err := json.Unmarshal(inner, &flat); err != nil {
				return nil, errors.Wrap(err, "failed to parse json scores object")
			}
			return flat, nil
		}
		if err := json.Unmarshal(data, &flat); err != nil {
			return nil, errors.Wrap(err, "failed to parse json scores")
		}
		return flat, nil
	}

	return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "format %q", format)
}

// ParsePairs parses CODE=score pairs such as those given on the command line.
func ParsePairs(pairs []string) (values.Scores, error) {
	raw := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		code, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.WithHint(errors.Wrapf(errors.ErrInvalidScores, "pair %q has no '='", pair),
				"write scores as CODE=VALUE, e.g. SDT=5.8")
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidScores), "pair %q", pair)
		}
		raw[strings.TrimSpace(code)] = f
	}
	return normalize(raw)
}

// Merge returns base with overrides applied. Neither argument is modified.
func Merge(base, overrides values.Scores) values.Scores {
	out := make(values.Scores, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func normalize(raw map[string]float64) (values.Scores, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(values.Scores, len(raw))
	for _, k := range keys {
		code := strings.ToUpper(strings.TrimSpace(k))
		if !values.IsValidCode(code) {
			logger.Warnw("dropping unknown value code", "code", k)
			continue
		}
		score := raw[k]
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, errors.WithHintf(errors.Wrapf(errors.ErrInvalidScores, "code %s: score %v is not finite", code, score),
				"scores are numbers between %g and %g", values.MinScore, values.MaxScore)
		}
		if score < values.MinScore || score > values.MaxScore {
			logger.Warnw("score outside the nominal range",
				"code", code, "score", score, "min", values.MinScore, "max", values.MaxScore)
		}
		if prev, ok := out[code]; ok {
			logger.Warnw("duplicate value code", "code", code, "kept", score, "dropped", prev)
		}
		out[code] = score
	}
	return out, nil
}
