package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// AccessLog wraps a handler with request logging and panic recovery.
func AccessLog(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()

			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic in handler",
						zap.Any("panic", r),
						zap.ByteString("path", ctx.Path()))
					ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				}

				logger.Info("request",
					zap.ByteString("method", ctx.Method()),
					zap.ByteString("path", ctx.Path()),
					zap.Int("status", ctx.Response.StatusCode()),
					zap.Duration("duration", time.Since(start)))
			}()

			next(ctx)
		}
	}
}
