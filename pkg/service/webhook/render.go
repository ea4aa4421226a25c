package webhook

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DefaultTitle is substituted for {title} and used by the default payload
const DefaultTitle = "Subscription Monitor Notification"

// Placeholders replaced in webhook templates
const (
	PlaceholderTitle          = "{title}"
	PlaceholderContent        = "{content}"
	PlaceholderContentLocaled = "{通知消息}"
)

// DefaultPayload is the shape sent when no usable template is configured
type DefaultPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Render builds the webhook body for message. A blank template yields the default
// {title, text} shape. ok is false when the template could not be used and the default
// shape was substituted.
func Render(template, message string) (payload json.RawMessage, ok bool) {
	if strings.TrimSpace(template) == "" {
		return defaultPayload(message), true
	}

	if !gjson.Valid(template) {
		return defaultPayload(message), false
	}

	text := unescapeStrings(string(pretty.Ugly([]byte(template))))
	text = strings.ReplaceAll(text, PlaceholderTitle, escapeJSONString(DefaultTitle))
	text = strings.ReplaceAll(text, PlaceholderContent, escapeJSONString(message))
	text = strings.ReplaceAll(text, PlaceholderContentLocaled, escapeJSONString(message))

	if !gjson.Valid(text) {
		return defaultPayload(message), false
	}
	return json.RawMessage(text), true
}

// unescapeStrings re-encodes every string literal of compact JSON that carries a backslash
// escape, so an escaped placeholder such as "\u007bcontent}" is matched like its plain form.
// Key order and number literals are kept.
func unescapeStrings(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '"' {
			b.WriteByte(text[i])
			continue
		}

		end, escaped := i+1, false
		for ; end < len(text) && text[end] != '"'; end++ {
			if text[end] == '\\' {
				escaped = true
				end++
			}
		}
		if end >= len(text) {
			b.WriteString(text[i:])
			break
		}

		literal := text[i : end+1]
		if escaped {
			var decoded string
			if err := json.Unmarshal([]byte(literal), &decoded); err == nil {
				if raw, err := marshalNoEscape(decoded); err == nil {
					literal = string(raw)
				}
			}
		}
		b.WriteString(literal)
		i = end
	}
	return b.String()
}

func defaultPayload(message string) json.RawMessage {
	raw, _ := marshalNoEscape(DefaultPayload{Title: DefaultTitle, Text: message})
	return raw
}

// escapeJSONString returns s encoded as the inside of a JSON string literal
func escapeJSONString(s string) string {
	raw, _ := marshalNoEscape(s)
	return string(raw[1 : len(raw)-1])
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
