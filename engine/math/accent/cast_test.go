package accent

import (
	"errors"
	"testing"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/core/parameters"
	"github.com/npillmayer/mathacc/engine/foundations"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCastFromValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for _, tc := range []struct {
		v        foundations.Value
		expected Accent
	}{
		{foundations.Symbol('q'), 'q'},
		{foundations.Symbol('→'), '\u20d7'},
		{foundations.Symbol('^'), '\u0302'},
		{foundations.Symbol('\u0303'), '\u0303'},
		{foundations.Str("→"), '\u20d7'},
		{foundations.Str("q"), 'q'},
		{foundations.Str("↔\ufe0e"), '\u20e1'},
		{foundations.Pack(foundations.NewSymbol("^")), '\u0302'},
		{foundations.Pack(foundations.NewSymbol("⏟")), '⏟'},
	} {
		a, err := FromValue(tc.v)
		if assert.NoError(t, err, "casting %s", tc.v.Repr()) {
			assert.Equal(t, tc.expected, a, "casting %s", tc.v.Repr())
		}
	}
}

func TestCastErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for _, s := range []string{"", "ab", "xyz"} {
		_, err := FromValue(foundations.Str(s))
		assert.True(t, errors.Is(err, ErrInvalidAccentText), "casting %q", s)
		assert.Equal(t, core.EINVALID, core.Code(err))
		assert.Equal(t, "expected exactly one character", core.UserMessage(err))
	}
	_, err := FromValue(foundations.Pack(foundations.NewSymbol("ab")))
	assert.True(t, errors.Is(err, ErrInvalidAccentSymbol))
	assert.Equal(t, "expected a single-codepoint symbol", core.UserMessage(err))
	_, err = FromValue(foundations.Pack(foundations.NewText("x")))
	assert.True(t, errors.Is(err, ErrInvalidAccentSymbol), "text content is not a symbol")
	for _, r := range []rune{0xd800, 0xdfff, 0x110000, -1} {
		_, err = FromValue(foundations.Symbol(r))
		assert.True(t, errors.Is(err, ErrInvalidAccentSymbol), "casting symbol %#x", r)
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
	_, err = FromValue(foundations.Bool(true))
	assert.True(t, errors.Is(err, foundations.ErrTypeMismatch))
	assert.Equal(t, "expected string, symbol or content, found boolean", core.UserMessage(err))
}

func TestIntoValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	assert.Equal(t, foundations.Str("\u20d7"), IntoValue('\u20d7'))
	assert.Equal(t, foundations.Str("q"), IntoValue('q'))
}

func TestElemResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	elem := New(foundations.NewText("i"), '\u0302')
	size, dotless := elem.Resolve(nil)
	assert.Equal(t, dimen.One, size)
	assert.True(t, dotless)
	//
	regs := parameters.NewTypesettingRegisters()
	regs.Push(parameters.P_DOTLESS, false)
	regs.Push(parameters.P_ACCENTSIZE, dimen.Ratio(120))
	size, dotless = elem.Resolve(regs)
	assert.Equal(t, dimen.Ratio(120), size, "unset size is taken from registers")
	assert.False(t, dotless, "unset dotless is taken from registers")
	//
	size, dotless = elem.WithSize(dimen.Ratio(80)).WithDotless(true).Resolve(regs)
	assert.Equal(t, dimen.Ratio(80), size, "explicit size wins")
	assert.True(t, dotless, "explicit dotless wins")
}

func TestElemEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	x := foundations.NewSymbol("x")
	a := New(x, '\u0303')
	assert.True(t, a.Equal(New(foundations.NewSymbol("x"), '\u0303')))
	assert.False(t, a.Equal(New(x, '\u0302')))
	assert.False(t, a.Equal(a.WithSize(dimen.One)), "explicitly set size differs from default")
	assert.False(t, a.Equal(x))
	assert.Equal(t, "accent([x], \"\u0303\", size: 150%)", a.WithSize(dimen.Ratio(150)).Repr())
	assert.True(t, New(x, '⏟').IsBottom(CuratedClassifier{}))
	assert.False(t, a.IsBottom(&UnicodeClassifier{}))
}

func TestAccentIsBottomDefaultsToUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	r := Accent('\u1dca')
	assert.True(t, r.IsBottom(nil))
	assert.False(t, r.IsBottom(CuratedClassifier{}))
	assert.False(t, Accent('\u0302').IsBottom(nil))
}
