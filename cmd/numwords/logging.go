package main

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-numwords"
)

// errorAttr returns an empty Attr for nil errors so callers never branch.
func errorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func languageAttr(lang numwords.Language) slog.Attr {
	return slog.String("language", string(lang))
}

// loggingHook logs every conversion at debug level and failures at warn.
func loggingHook(logger *slog.Logger) numwords.ConversionHook {
	return numwords.HookFuncs{
		Before: func(ctx *numwords.HookContext) {
			ctx.SetMetadata("started", time.Now())
		},
		After: func(ctx *numwords.HookContext) {
			attrs := []any{
				languageAttr(ctx.Language),
				slog.Float64("number", ctx.Number),
			}
			if ctx.Input != "" {
				attrs = append(attrs, slog.String("input", ctx.Input))
			}
			if started, ok := ctx.MetadataValue("started"); ok {
				if at, okCast := started.(time.Time); okCast {
					attrs = append(attrs, slog.Duration("elapsed", time.Since(at)))
				}
			}

			if ctx.Error != nil {
				logger.Warn("conversion failed", append(attrs, errorAttr(ctx.Error))...)
				return
			}
			logger.Debug("converted", append(attrs, slog.String("words", ctx.Result))...)
		},
	}
}
