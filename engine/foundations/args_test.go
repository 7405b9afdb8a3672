package foundations

import (
	"errors"
	"testing"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsExpect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.foundations")
	defer teardown()
	//
	args := NewArgs(Str("x")).With("size", RelValue(dimen.Ratio(150))).Push(Bool(true))
	v, err := args.Expect("base")
	require.NoError(t, err)
	assert.Equal(t, Str("x"), v)
	v, err = args.Expect("flag")
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v, "expected named argument to be skipped")
	_, err = args.Expect("more")
	assert.True(t, errors.Is(err, ErrMissingArgument))
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "missing argument: more", core.UserMessage(err))
	assert.Equal(t, 1, args.Len())
}

func TestArgsNamed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.foundations")
	defer teardown()
	//
	args := NewArgs().With("dotless", Bool(true)).With("dotless", Bool(false))
	v, ok := args.Named("dotless")
	assert.True(t, ok)
	assert.Equal(t, Bool(false), v, "expected last named argument to win")
	assert.Equal(t, 0, args.Len(), "expected all occurrences to be consumed")
	_, ok = args.Named("dotless")
	assert.False(t, ok)
}

func TestArgsFinish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.foundations")
	defer teardown()
	//
	assert.NoError(t, NewArgs().Finish())
	err := NewArgs().With("color", Str("red")).Finish()
	assert.True(t, errors.Is(err, ErrUnexpectedArgument))
	assert.Equal(t, "unexpected argument: color", core.UserMessage(err))
	err = NewArgs(Int(3)).Finish()
	assert.Equal(t, "unexpected argument 3", core.UserMessage(err))
}

func TestTypedExtraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.foundations")
	defer teardown()
	//
	args := NewArgs(Symbol('x')).With("size", Bool(true)).With("dotless", Bool(false))
	base, err := ExpectAs(args, "base", CastContent)
	require.NoError(t, err)
	assert.True(t, base.Equal(NewSymbol("x")))
	_, ok, err := NamedAs(args, "size", CastRel)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Equal(t, "expected relative length, found boolean", core.UserMessage(err))
	dotless, ok, err := NamedAs(args, "dotless", CastBool)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, dotless)
	_, ok, err = NamedAs(args, "missing", CastBool)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCastContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.foundations")
	defer teardown()
	//
	c, err := CastContent(Str("abc"))
	require.NoError(t, err)
	assert.True(t, c.Equal(NewText("abc")))
	seq := Sequence(NewText("a"), NewSymbol("+"))
	c, err = CastContent(Pack(seq))
	require.NoError(t, err)
	assert.True(t, c.Equal(Sequence(NewText("a"), NewSymbol("+"))))
	_, err = CastContent(Int(1))
	assert.Equal(t, "expected content, string or symbol, found integer", core.UserMessage(err))
}
