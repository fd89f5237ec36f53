package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// flashCodec signs one-shot flash messages into a cookie. There is no
// server-side session state; the HMAC only stops clients from forging
// categories.
type flashCodec struct {
	key []byte
}

type flashMessage struct {
	Category string
	Text     string
}

func newFlashCodec(secret string) *flashCodec {
	return &flashCodec{key: []byte(secret)}
}

func (f *flashCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, f.key)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// set queues a flash message for the next rendered page.
func (f *flashCodec) set(c *gin.Context, category, text string) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(category + "\x00" + text))
	c.SetCookie(flashCookie, payload+"."+f.sign(payload), 60, "/", "", false, true)
}

// pop returns the pending flash message, if any, and clears the cookie.
func (f *flashCodec) pop(c *gin.Context) *flashMessage {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	payload, sig, ok := strings.Cut(raw, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(f.sign(payload))) {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	category, text, ok := strings.Cut(string(decoded), "\x00")
	if !ok {
		return nil
	}
	return &flashMessage{Category: category, Text: text}
}
