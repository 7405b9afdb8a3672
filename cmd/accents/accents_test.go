package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/engine/mathlib"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.cli")
	defer teardown()
	//
	op := parseCommand("apply  hat x size:150%")
	assert.Equal(t, APPLY, op.code)
	assert.Equal(t, []string{"hat", "x", "size:150%"}, op.args)
	assert.Equal(t, HELP, parseCommand("frobnicate").code)
	assert.Equal(t, QUIT, parseCommand("QUIT").code)
}

func TestCompleter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.cli")
	defer teardown()
	//
	c := newCompleter([]string{"arrow", "arrow.l", "acute"})
	candidates, n := c.Do([]rune("apply arr"), 9)
	assert.Equal(t, 3, n)
	var rest []string
	for _, r := range candidates {
		rest = append(rest, string(r))
	}
	assert.ElementsMatch(t, []string{"ow", "ow.l"}, rest)
	candidates, _ = c.Do([]rune("cla"), 3)
	require.Len(t, candidates, 1)
	assert.Equal(t, "ssify", string(candidates[0]))
	candidates, _ = c.Do([]rune("apply "), 6)
	assert.Empty(t, candidates)
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "accents.yaml")
	yml := "accent:\n  classifier: curated\n  size: 120%\n  dotless: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	conf, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "curated", conf.GetString(mathlib.KeyClassifier))
	assert.Equal(t, "120%", conf.GetString(mathlib.KeySize))
	assert.Equal(t, "false", conf.GetString(mathlib.KeyDotless))
	lib, err := mathlib.New(conf)
	require.NoError(t, err)
	assert.Equal(t, "curated", lib.Classifier().Name())
	//
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.cli")
	defer teardown()
	//
	pv := preview("x", '\u0302')
	assert.Equal(t, "x\u0302", pv.text)
	assert.Equal(t, 1, pv.graphemes, "combining accent joins the base grapheme")
	assert.Equal(t, 1, pv.baseCells)
}

func TestPrintersPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.cli")
	defer teardown()
	//
	assert.Equal(t, 10.0, printersPoints(10*dimen.PT))
	assert.InDelta(t, 72.27/72, printersPoints(dimen.BP), 1e-4, "a big point is slightly larger than a point")
}
