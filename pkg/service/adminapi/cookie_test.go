package adminapi_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/service/adminapi"
)

func TestDecodeCookies(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("k1=v1; k2=v2")
		gt.Equal(t, len(cookies), 2)
		gt.Equal(t, cookies["k1"], "v1")
		gt.Equal(t, cookies["k2"], "v2")
	})

	t.Run("empty string is empty set", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("")
		gt.V(t, cookies).NotNil()
		gt.Equal(t, len(cookies), 0)
	})

	t.Run("segment without = is dropped", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("a=1; garbage; b=2")
		gt.Equal(t, len(cookies), 2)
		_, ok := cookies["garbage"]
		gt.False(t, ok)
	})

	t.Run("value keeps inner =", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("token=abc==; sig=x=y=z")
		gt.Equal(t, cookies["token"], "abc==")
		gt.Equal(t, cookies["sig"], "x=y=z")
	})

	t.Run("empty key and value are allowed", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("=v; k=")
		gt.Equal(t, cookies[""], "v")
		gt.Equal(t, cookies["k"], "")
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		cookies := adminapi.DecodeCookies("a=1; a=2")
		gt.Equal(t, cookies["a"], "2")
	})
}

func TestCookieSetEncode(t *testing.T) {
	for _, raw := range []string{"k1=v1; k2=v2", "a=b=c", "x=; y=1"} {
		t.Run(raw, func(t *testing.T) {
			decoded := adminapi.DecodeCookies(raw)
			again := adminapi.DecodeCookies(decoded.Encode())
			gt.Equal(t, again, decoded)
		})
	}

	gt.Equal(t, adminapi.CookieSet{"b": "2", "a": "1"}.Encode(), "a=1; b=2")
}

func TestCookieSetApply(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	gt.NoError(t, err).Required()

	adminapi.CookieSet{}.Apply(req)
	gt.Equal(t, req.Header.Get("Cookie"), "")

	adminapi.CookieSet{"s": "1"}.Apply(req)
	gt.Equal(t, req.Header.Get("Cookie"), "s=1")
}
