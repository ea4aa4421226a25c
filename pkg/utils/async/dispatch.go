package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in the background with panic recovery. The returned channel is
// closed when handler has finished. The handler context is detached from ctx cancellation
// and keeps only the logger, so work outlives the request that started it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Warn("Error in async handler",
				"error", err,
			)
		}
	}()

	return done
}
