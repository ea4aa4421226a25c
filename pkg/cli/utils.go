package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/cli/config"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/service/adminapi"
	"github.com/secmon-lab/o365ops/pkg/service/webhook"
	"github.com/secmon-lab/o365ops/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// runtimeConfig is the configuration shared by every command that talks to a tenant
type runtimeConfig struct {
	store        config.Store
	adminAPI     config.AdminAPI
	notification config.Notification
}

func (r *runtimeConfig) Flags() []cli.Flag {
	return joinFlags(
		r.store.Flags(),
		r.adminAPI.Flags(),
		r.notification.Flags(),
	)
}

// runtime holds the components built from runtimeConfig
type runtime struct {
	store    interfaces.SubscriptionStore
	admin    *adminapi.Client
	notifier *webhook.Notifier
}

func (r *runtimeConfig) build(ctx context.Context) (*runtime, error) {
	store, err := r.store.Configure(ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := r.notification.Configure(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &runtime{
		store:    store,
		admin:    r.adminAPI.Configure(),
		notifier: notifier,
	}, nil
}

func (r *runtime) Close() error {
	return r.store.Close()
}

func subscriptionFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "subscription",
		Aliases:     []string{"s"},
		Usage:       "Subscription ID",
		Required:    true,
		Sources:     cli.EnvVars("O365OPS_SUBSCRIPTION"),
		Destination: dest,
	}
}

func writerOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// printJSON writes v as indented JSON to the command output
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(writerOf(c))
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

// fail prints the classified failure and returns err so the process exits non-zero
func fail(ctx context.Context, c *cli.Command, err error) error {
	apperr.Handle(ctx, err)
	if printErr := printJSON(c, model.FailureOf(err)); printErr != nil {
		return printErr
	}
	return err
}
