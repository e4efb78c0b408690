// Package captcha verifies reCAPTCHA tokens against the siteverify API.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/astraclean/offerte_backend/config"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

var (
	ErrMissingToken = errors.New("captcha: token is missing")
	ErrRejected     = errors.New("captcha: token rejected")
	ErrLowScore     = errors.New("captcha: score below threshold")
	ErrUnavailable  = errors.New("captcha: verification service unavailable")
)

// Result is the decoded siteverify answer.
type Result struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier checks tokens. A disabled Verifier accepts everything.
type Verifier struct {
	enabled    bool
	secret     string
	verifyURL  string
	minScore   float64
	httpClient *http.Client
}

func New(cfg config.CaptchaConfig) *Verifier {
	verifyURL := strings.TrimSpace(cfg.VerifyURL)
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Verifier{
		enabled:    cfg.Enabled,
		secret:     cfg.Secret,
		verifyURL:  verifyURL,
		minScore:   cfg.MinScore,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *Verifier) IsEnabled() bool { return v.enabled }

// Verify checks token for the client at remoteIP.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.enabled {
		return nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}

	res, err := v.siteverify(ctx, token, remoteIP)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%w: %s", ErrRejected, strings.Join(res.ErrorCodes, ","))
	}
	// v2 answers carry no score; only v3 tokens are held to minScore.
	if v.minScore > 0 && res.Score > 0 && res.Score < v.minScore {
		return fmt.Errorf("%w: %.2f < %.2f", ErrLowScore, res.Score, v.minScore)
	}
	return nil
}

func (v *Verifier) siteverify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return &res, nil
}
