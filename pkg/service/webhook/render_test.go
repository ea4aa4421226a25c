package webhook_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/service/webhook"
)

func TestRender(t *testing.T) {
	t.Run("blank template uses default shape", func(t *testing.T) {
		payload, ok := webhook.Render("  ", "hello")
		gt.True(t, ok)

		var body webhook.DefaultPayload
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body.Title, webhook.DefaultTitle)
		gt.Equal(t, body.Text, "hello")
	})

	t.Run("content placeholder", func(t *testing.T) {
		payload, ok := webhook.Render(`{"msg":"{content}"}`, "hello")
		gt.True(t, ok)
		gt.Equal(t, string(payload), `{"msg":"hello"}`)
	})

	t.Run("title and localized placeholders", func(t *testing.T) {
		payload, ok := webhook.Render(`{
			"msgtype": "text",
			"text": {"title": "{title}", "content": "{通知消息}"}
		}`, "body")
		gt.True(t, ok)

		var body struct {
			MsgType string `json:"msgtype"`
			Text    struct {
				Title   string `json:"title"`
				Content string `json:"content"`
			} `json:"text"`
		}
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body.MsgType, "text")
		gt.Equal(t, body.Text.Title, webhook.DefaultTitle)
		gt.Equal(t, body.Text.Content, "body")
	})

	t.Run("message is escaped", func(t *testing.T) {
		msg := "line1\nsaid \"hi\" <b>\\"
		payload, ok := webhook.Render(`{"msg":"{content}"}`, msg)
		gt.True(t, ok)

		var body map[string]string
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body["msg"], msg)
	})

	t.Run("malformed template falls back", func(t *testing.T) {
		payload, ok := webhook.Render(`{"msg": {content}`, "hello")
		gt.False(t, ok)

		var body webhook.DefaultPayload
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body.Title, webhook.DefaultTitle)
		gt.Equal(t, body.Text, "hello")
	})

	t.Run("escaped placeholders are substituted", func(t *testing.T) {
		payload, ok := webhook.Render(`{"a":"\u007bcontent}","b":"{ti\u0074le}","n":1.50,"q":"x\"y"}`, "hello")
		gt.True(t, ok)

		var body map[string]any
		gt.NoError(t, json.Unmarshal(payload, &body)).Required()
		gt.Equal(t, body["a"], any("hello"))
		gt.Equal(t, body["b"], any(webhook.DefaultTitle))
		gt.Equal(t, body["q"], any(`x"y`))
		gt.S(t, string(payload)).Contains(`"n":1.50`)
	})
}
