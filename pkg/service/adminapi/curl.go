package adminapi

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
)

// dataFlag matches the curl flags that carry a request body
const dataFlag = `(?:^|\s)(?:--data-raw|--data-binary|--data-ascii|--data|-d)\s+`

var (
	singleQuotedBody = regexp.MustCompile(`(?s)` + dataFlag + `\$?'(.+?)'(?:\s+-|\s*$)`)
	doubleQuotedBody = regexp.MustCompile(`(?s)` + dataFlag + `"(.+?)"(?:\s+-|\s*$)`)
	unquotedBody     = regexp.MustCompile(`(?s)` + dataFlag + `(\S.*?)(?:\s+-H|\s+--|\s*$)`)

	lineContinuation = regexp.MustCompile(`\\\r?\n`)
)

// bodyMatcher recovers the raw body argument from a captured command
type bodyMatcher struct {
	name  string
	match func(command string) (string, bool)
}

// bodyMatchers are tried in order; later matchers are looser and would mis-capture trailing
// flags if tried first.
var bodyMatchers = []bodyMatcher{
	{name: "single-quoted", match: matchSingleQuoted},
	{name: "double-quoted", match: matchDoubleQuoted},
	{name: "unquoted", match: matchUnquoted},
}

func matchSingleQuoted(command string) (string, bool) {
	m := singleQuotedBody.FindStringSubmatch(command)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func matchDoubleQuoted(command string) (string, bool) {
	m := doubleQuotedBody.FindStringSubmatch(command)
	if m == nil {
		return "", false
	}
	return unquoteDouble(m[1]), true
}

func matchUnquoted(command string) (string, bool) {
	m := unquotedBody.FindStringSubmatch(command)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// unquoteDouble removes shell double-quote escaping
func unquoteDouble(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\\', '$', '`':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ExtractTemplate recovers the account creation body from a captured curl command
func ExtractTemplate(ctx context.Context, captured string) (*model.CreateUserTemplate, error) {
	logger := ctxlog.From(ctx)

	if strings.TrimSpace(captured) == "" {
		return nil, model.NewFailure(model.KindTemplateMissing,
			"no user creation curl command is configured")
	}

	command := lineContinuation.ReplaceAllString(captured, " ")

	var (
		raw     string
		matched string
	)
	for _, m := range bodyMatchers {
		if body, ok := m.match(command); ok {
			raw, matched = strings.TrimSpace(body), m.name
			break
		}
	}
	if matched == "" {
		return nil, model.NewFailure(model.KindTemplateUnparseable,
			"no request body found in curl command, expected a --data-raw argument",
			goerr.V("command_length", len(captured)))
	}

	logger.Debug("Extracted request body from curl command",
		"matcher", matched,
		"length", len(raw))

	tmpl, firstErr := decodeTemplate(raw)
	if firstErr == nil {
		return tmpl, nil
	}

	logger.Debug("Direct parse failed, decoding escape sequences", "error", firstErr)
	tmpl, err := decodeTemplate(decodeEscapes(raw))
	if err != nil {
		return nil, model.WrapFailure(firstErr, model.KindTemplateUnparseable,
			"request body in curl command is not valid JSON",
			goerr.V(model.KeyDetails, snippet(raw, 200)))
	}
	return tmpl, nil
}

// capturedBody is the lenient view of a captured creation body. Only UserPrincipalName,
// Products and AdminRoles must have their expected JSON type.
type capturedBody struct {
	FirstName               flexString        `json:"FirstName"`
	LastName                flexString        `json:"LastName"`
	DisplayName             flexString        `json:"DisplayName"`
	UserPrincipalName       string            `json:"UserPrincipalName"`
	JobTitle                flexString        `json:"JobTitle"`
	Department              flexString        `json:"Department"`
	Office                  flexString        `json:"Office"`
	OfficePhone             flexString        `json:"OfficePhone"`
	MobilePhone             flexString        `json:"MobilePhone"`
	FaxNumber               flexString        `json:"FaxNumber"`
	StreetAddress           flexString        `json:"StreetAddress"`
	City                    flexString        `json:"City"`
	StateProvince           flexString        `json:"StateProvince"`
	ZipOrPostalCode         flexString        `json:"ZipOrPostalCode"`
	CountryRegion           flexString        `json:"CountryRegion"`
	UsageLocation           flexString        `json:"UsageLocation"`
	CreateUserWithNoLicense flexBool          `json:"CreateUserWithNoLicense"`
	Products                []json.RawMessage `json:"Products"`
	AdminRoles              []json.RawMessage `json:"AdminRoles"`
}

func decodeTemplate(raw string) (*model.CreateUserTemplate, error) {
	var body capturedBody
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, err
	}

	return &model.CreateUserTemplate{
		FirstName:               string(body.FirstName),
		LastName:                string(body.LastName),
		DisplayName:             string(body.DisplayName),
		UserPrincipalName:       body.UserPrincipalName,
		JobTitle:                string(body.JobTitle),
		Department:              string(body.Department),
		Office:                  string(body.Office),
		OfficePhone:             string(body.OfficePhone),
		MobilePhone:             string(body.MobilePhone),
		FaxNumber:               string(body.FaxNumber),
		StreetAddress:           string(body.StreetAddress),
		City:                    string(body.City),
		StateProvince:           string(body.StateProvince),
		ZipOrPostalCode:         string(body.ZipOrPostalCode),
		CountryRegion:           string(body.CountryRegion),
		UsageLocation:           string(body.UsageLocation),
		CreateUserWithNoLicense: bool(body.CreateUserWithNoLicense),
		Products:                body.Products,
		AdminRoles:              body.AdminRoles,
	}, nil
}

// decodeEscapes turns literal backslash sequences left by shell quoting into the characters
// they denote. Outside JSON string literals \n \r \t become whitespace and other escaped
// characters lose their backslash. Inside string literals only \' is rewritten; JSON escapes
// are kept as they are.
func decodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			if c == '"' {
				inString = !inString
			}
			b.WriteByte(c)
			continue
		}

		next := s[i+1]
		i++
		if inString {
			if next == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			continue
		}

		switch next {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(next)
		}
	}
	return b.String()
}

// snippet returns at most the first n characters of s
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
