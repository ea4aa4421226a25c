package adminapi

import (
	"net/http"
	"sort"
	"strings"
)

const cookieSeparator = "; "

// CookieSet is a decoded session cookie string
type CookieSet map[string]string

// DecodeCookies parses a "k1=v1; k2=v2" cookie string.
// Segments without '=' are dropped, values may contain '=', and the last duplicate key wins.
func DecodeCookies(raw string) CookieSet {
	cookies := CookieSet{}
	if raw == "" {
		return cookies
	}

	for _, segment := range strings.Split(raw, cookieSeparator) {
		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		cookies[key] = value
	}
	return cookies
}

// Encode serializes the set back into a cookie string with keys in sorted order
func (c CookieSet) Encode() string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+c[key])
	}
	return strings.Join(pairs, cookieSeparator)
}

// Apply sets the Cookie header of req. Nothing is set for an empty set.
func (c CookieSet) Apply(req *http.Request) {
	if len(c) == 0 {
		return
	}
	req.Header.Set("Cookie", c.Encode())
}
