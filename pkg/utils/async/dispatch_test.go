package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/utils/async"
)

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async handler did not finish")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("runs handler", func(t *testing.T) {
		executed := false
		wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
			executed = true
			return nil
		}))
		gt.True(t, executed)
	})

	t.Run("handler context outlives caller", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var handlerErr error
		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			handlerErr = ctx.Err()
			return nil
		}))
		gt.NoError(t, handlerErr)
	})

	t.Run("errors are absorbed", func(t *testing.T) {
		wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
			return errors.New("delivery failed")
		}))
	})

	t.Run("panics are recovered", func(t *testing.T) {
		wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
			panic("boom")
		}))
	})
}
