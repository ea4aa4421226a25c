package adminapi

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
)

// Credentials is the effective cookie and header set of one request
type Credentials struct {
	Cookies CookieSet
	Headers map[string]string
}

// ResolveCredentials picks the cookie source for a request: the feature config's cookies when
// non-blank, otherwise the subscription's. Headers are copied from cfg; write requests get a
// forced JSON content type.
func ResolveCredentials(ctx context.Context, sub *model.Subscription, cfg *model.UserCreateConfig, write bool) (*Credentials, error) {
	raw := ""
	if cfg != nil && strings.TrimSpace(cfg.Cookies) != "" {
		raw = cfg.Cookies
	} else if strings.TrimSpace(sub.Cookies) != "" {
		ctxlog.From(ctx).Debug("Feature cookie empty, using subscription cookie",
			"subscription", sub.ID)
		raw = sub.Cookies
	} else {
		return nil, model.NewFailure(model.KindMissingCredentials, "no usable cookie configured",
			goerr.V("subscription", sub.ID))
	}

	headers := make(map[string]string)
	if cfg != nil {
		for key, value := range cfg.Headers {
			headers[key] = value
		}
	}
	if write {
		setHeader(headers, "content-type", "application/json")
	}

	return &Credentials{
		Cookies: DecodeCookies(raw),
		Headers: headers,
	}, nil
}

// setHeader replaces any case variant of key
func setHeader(headers map[string]string, key, value string) {
	for existing := range headers {
		if strings.EqualFold(existing, key) {
			delete(headers, existing)
		}
	}
	headers[key] = value
}
