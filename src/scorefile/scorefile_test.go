package scorefile

import (
	"os"
	"path/filepath"
	"testing"

	"traitgen/src/errors"
	"traitgen/src/logger"
	"traitgen/src/values"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var want = values.Scores{"SDT": 5.8, "UNC": 5.5, "BEC": 5}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"flat toml", "scores.toml", "SDT = 5.8\nUNC = 5.5\nBEC = 5\n"},
		{"wrapped toml", "scores.toml", "[scores]\nSDT = 5.8\nunc = 5.5\nBEC = 5\n"},
		{"flat yaml", "scores.yaml", "SDT: 5.8\nUNC: 5.5\nBEC: 5\n"},
		{"wrapped yml", "scores.yml", "scores:\n  SDT: 5.8\n  UNC: 5.5\n  bec: 5\n"},
		{"flat json", "scores.json", `{"SDT": 5.8, "UNC": 5.5, "BEC": 5}`},
		{"wrapped json", "scores.JSON", `{"scores": {"sdt": 5.8, "UNC": 5.5, "BEC": 5.0}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"unsupported extension", "scores.csv", "SDT,5.8", errors.ErrUnsupportedFormat},
		{"bad toml", "scores.toml", "SDT = \n", errors.ErrInvalidScores},
		{"non numeric yaml", "scores.yaml", "SDT: high\n", errors.ErrInvalidScores},
		{"bad json", "scores.json", `{"SDT": }`, errors.ErrInvalidScores},
		{"nan toml", "scores.toml", "SDT = nan\n", errors.ErrInvalidScores},
		{"infinite toml", "scores.toml", "[scores]\nUNC = -inf\n", errors.ErrInvalidScores},
		{"nan yaml", "scores.yaml", "SDT: .nan\n", errors.ErrInvalidScores},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errors.IsInputError(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.UnwrapAll(err)))
}

func TestParsePairs(t *testing.T) {
	t.Parallel()

	got, err := ParsePairs([]string{"SDT=5.8", " unc = 5.5", "BEC=5"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParsePairs([]string{"SDT"})
	assert.True(t, errors.Is(err, errors.ErrInvalidScores))

	_, err = ParsePairs([]string{"SDT=high"})
	assert.True(t, errors.Is(err, errors.ErrInvalidScores))

	for _, pairs := range [][]string{
		{"SDT=NaN", "BEC=5"},
		{"UNC=+Inf", "BEC=5"},
		{"BEC=5", "HUM=-inf"},
	} {
		_, err = ParsePairs(pairs)
		require.Error(t, err, "%v", pairs)
		assert.True(t, errors.Is(err, errors.ErrInvalidScores), "%v", pairs)
		assert.Contains(t, err.Error(), "not finite")
	}

	empty, err := ParsePairs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := values.Scores{"SDT": 4.0, "UNC": 5.5}
	overrides := values.Scores{"SDT": 5.8, "BEC": 5}

	got := Merge(base, overrides)
	assert.Equal(t, want, got)
	assert.Equal(t, 4.0, base["SDT"])
	assert.Len(t, overrides, 2)
}

func TestNormalizeWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.SetLogger(zap.New(core).Sugar())
	defer logger.SetLogger(nil)

	got, err := Decode([]byte("SDT = 7.5\nXYZ = 3.0\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, values.Scores{"SDT": 7.5}, got)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "score outside the nominal range", entries[0].Message)
	assert.Equal(t, "dropping unknown value code", entries[1].Message)
}

func TestNormalizeWarnsOnDuplicateCodes(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.SetLogger(zap.New(core).Sugar())
	defer logger.SetLogger(nil)

	got, err := Decode([]byte("SDT = 4.0\nsdt = 5.0\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, values.Scores{"SDT": 5.0}, got)

	entries := logs.FilterMessage("duplicate value code").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "SDT", entries[0].ContextMap()["code"])
}
