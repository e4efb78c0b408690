package submit

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/astraclean/offerte_backend/pkg/validate"
)

// CaptchaField carries the bot-detection token next to the form fields.
const CaptchaField = "g-recaptcha-response"

// Encoding selects how the payload is written on the wire.
type Encoding string

const (
	EncodingURL       Encoding = "urlencoded"
	EncodingMultipart Encoding = "multipart"
)

// ParseEncoding accepts the config spelling of an encoding. Empty selects
// EncodingURL.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", EncodingURL:
		return EncodingURL, nil
	case EncodingMultipart:
		return EncodingMultipart, nil
	default:
		return "", fmt.Errorf("submit: unknown encoding %q", s)
	}
}

// Payload is the snapshot of a form taken when the user submits.
type Payload struct {
	Values       validate.Values
	CaptchaToken string
}

// NewPayload copies values so later edits to the form do not leak in.
func NewPayload(values validate.Values, captchaToken string) Payload {
	snap := make(validate.Values, len(values))
	for f, v := range values {
		snap[f] = v
	}
	return Payload{Values: snap, CaptchaToken: captchaToken}
}

// Form returns the payload as canonical form keys.
func (p Payload) Form() url.Values {
	form := url.Values{}
	for _, f := range validate.Fields {
		form.Set(string(f), p.Values[f])
	}
	if p.CaptchaToken != "" {
		form.Set(CaptchaField, p.CaptchaToken)
	}
	return form
}

// Encode renders the body and its content type.
func (p Payload) Encode(enc Encoding) ([]byte, string, error) {
	switch enc {
	case "", EncodingURL:
		return []byte(p.Form().Encode()), "application/x-www-form-urlencoded", nil
	case EncodingMultipart:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		form := p.Form()
		for _, f := range validate.Fields {
			if err := w.WriteField(string(f), form.Get(string(f))); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", f, err)
			}
		}
		if p.CaptchaToken != "" {
			if err := w.WriteField(CaptchaField, p.CaptchaToken); err != nil {
				return nil, "", fmt.Errorf("write captcha token: %w", err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", fmt.Errorf("close multipart body: %w", err)
		}
		return buf.Bytes(), w.FormDataContentType(), nil
	default:
		return nil, "", fmt.Errorf("submit: unknown encoding %q", enc)
	}
}
