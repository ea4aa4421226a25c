package adminapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// maxDetailsLength bounds the response body excerpt carried by api_error failures
const maxDetailsLength = 500

var (
	acceptRead   = []int{http.StatusOK, http.StatusCreated}
	acceptAssign = []int{http.StatusOK, http.StatusCreated, http.StatusNoContent}
)

// classifyStatus maps a non-accepted response to a failure. 401 and 403 always mean the
// session cookie expired, whatever the body says.
func classifyStatus(status int, body []byte, accepted []int) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return model.NewFailure(model.KindAuthFailure,
			"authentication failed, the session cookie may have expired",
			goerr.V(model.KeyStatus, status))
	}

	if slices.Contains(accepted, status) {
		return nil
	}

	msg := fmt.Sprintf("API returned error status %d", status)
	options := []goerr.Option{
		goerr.V(model.KeyStatus, status),
		goerr.V(model.KeyDetails, snippet(string(body), maxDetailsLength)),
	}

	upstreamMsg, upstreamCode := upstreamError(body)
	if upstreamMsg != "" {
		msg += ": " + upstreamMsg
	}
	if upstreamCode != "" {
		options = append(options, goerr.V(model.KeyCode, upstreamCode))
	}

	return model.NewFailure(model.KindAPIError, msg, options...)
}

// upstreamError extracts the message and code from the error shapes the portal uses:
// {"Message","Code"} on the admin API and {"error":{"message","code"}} on Graph-backed routes.
func upstreamError(body []byte) (message, code string) {
	if !gjson.ValidBytes(body) {
		return "", ""
	}

	result := gjson.ParseBytes(body)
	for _, path := range []string{"Message", "message", "error.message", "error_description"} {
		if v := result.Get(path); v.Exists() && v.String() != "" {
			message = v.String()
			break
		}
	}
	for _, path := range []string{"Code", "code", "error.code", "error"} {
		if v := result.Get(path); v.Exists() && v.Type != gjson.JSON && v.String() != "" {
			code = v.String()
			break
		}
	}
	return message, code
}

// classifyTransportError separates timeouts from other transport failures
func classifyTransportError(err error, url string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return model.WrapFailure(err, model.KindTimeout, "request timed out",
			goerr.V("url", url))
	}
	return model.WrapFailure(err, model.KindNetworkError, "network error",
		goerr.V("url", url))
}
