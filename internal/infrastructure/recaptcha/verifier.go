package recaptcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier checks reCAPTCHA tokens against the siteverify endpoint.
type Verifier interface {
	Verify(ctx context.Context, secret, token string) bool
}

type verifier struct {
	verifyURL string
	client    *http.Client
}

func NewVerifier(verifyURL string) Verifier {
	return &verifier{
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success bool `json:"success"`
}

// Verify posts the secret and token to the siteverify endpoint. Any transport
// error, non-2xx status, or undecodable body counts as a failed verification.
func (v *verifier) Verify(ctx context.Context, secret, token string) bool {
	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		slog.Warn("captcha verification request failed", "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("captcha verification response undecodable", "err", err)
		return false
	}
	return body.Success
}
