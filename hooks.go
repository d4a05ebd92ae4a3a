package numwords

// ConversionHook observes conversions. BeforeConvert may change the
// requested language; AfterConvert may rewrite Result or Error.
type ConversionHook interface {
	BeforeConvert(ctx *HookContext)
	AfterConvert(ctx *HookContext)
}

// HookContext carries a single conversion through the hook chain.
type HookContext struct {
	Language Language
	Number   float64
	Input    string
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *HookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs adapts plain functions to ConversionHook; nil fields are skipped.
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

var _ ConversionHook = HookFuncs{}

func (h HookFuncs) BeforeConvert(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterConvert(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []ConversionHook) []ConversionHook {
	if len(hooks) == 0 {
		return nil
	}

	filtered := make([]ConversionHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
