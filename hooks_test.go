package numwords

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	beforeCalls int
	afterCalls  int
	lastErr     error
	lastResult  string
	lastModule  any
}

func (h *recordingHook) BeforeConvert(ctx *HookContext) {
	h.beforeCalls++
}

func (h *recordingHook) AfterConvert(ctx *HookContext) {
	h.afterCalls++
	h.lastErr = ctx.Error
	h.lastResult = ctx.Result
	h.lastModule, _ = ctx.MetadataValue(metadataModule)
}

func TestConverterRunsHooks(t *testing.T) {
	recorder := &recordingHook{}
	converter := NewConverter(nil, WithConverterHooks(recorder))

	result, err := converter.Convert(21, WithLanguage("es-AR"))
	require.NoError(t, err)
	assert.Equal(t, "veintiuno", result.Words)

	assert.Equal(t, 1, recorder.beforeCalls)
	assert.Equal(t, 1, recorder.afterCalls)
	assert.NoError(t, recorder.lastErr)
	assert.Equal(t, "veintiuno", recorder.lastResult)
	assert.Equal(t, Spanish, recorder.lastModule)
}

func TestConverterHooksSeeErrors(t *testing.T) {
	recorder := &recordingHook{}
	converter := NewConverter(nil, WithConverterHooks(recorder))

	_, err := converter.Convert(1e16)
	require.ErrorIs(t, err, ErrMagnitudeExceeded)

	assert.Equal(t, 1, recorder.afterCalls)
	assert.ErrorIs(t, recorder.lastErr, ErrMagnitudeExceeded)
	assert.Empty(t, recorder.lastResult)
}

func TestHookCanRewriteLanguageAndResult(t *testing.T) {
	converter := NewConverter(nil, WithConverterHooks(
		HookFuncs{
			Before: func(ctx *HookContext) {
				ctx.Language = French
			},
		},
		HookFuncs{
			After: func(ctx *HookContext) {
				ctx.Result = "[" + ctx.Result + "]"
			},
		},
	))

	result, err := converter.Convert(80, WithLanguage(English))
	require.NoError(t, err)
	assert.Equal(t, "[quatre-vingts]", result.Words)
	assert.Equal(t, French, result.Language)
}

func TestHookCanReplaceError(t *testing.T) {
	sentinel := errors.New("rejected")
	converter := NewConverter(nil, WithConverterHooks(HookFuncs{
		After: func(ctx *HookContext) {
			if ctx.Number < 0 {
				ctx.Error = sentinel
			}
		},
	}))

	_, err := converter.Convert(-1)
	assert.ErrorIs(t, err, sentinel)

	result, err := converter.Convert(1)
	require.NoError(t, err)
	assert.Equal(t, "one", result.Words)
}

func TestHookContextMetadata(t *testing.T) {
	var ctx *HookContext
	ctx.SetMetadata("key", 1)
	_, ok := ctx.MetadataValue("key")
	assert.False(t, ok)

	ctx = &HookContext{}
	ctx.SetMetadata("", 1)
	assert.Nil(t, ctx.Metadata)

	ctx.SetMetadata("key", 1)
	value, ok := ctx.MetadataValue("key")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
}

func TestFilterHooks(t *testing.T) {
	assert.Nil(t, filterHooks(nil))
	assert.Nil(t, filterHooks([]ConversionHook{nil}))
	assert.Len(t, filterHooks([]ConversionHook{nil, HookFuncs{}}), 1)
}
