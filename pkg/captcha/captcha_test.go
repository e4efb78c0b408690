package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astraclean/offerte_backend/config"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
			return
		}
		if r.PostForm.Get("secret") != "s3cret" {
			t.Errorf("secret = %q", r.PostForm.Get("secret"))
		}
		if r.PostForm.Get("remoteip") != "203.0.113.7" {
			t.Errorf("remoteip = %q", r.PostForm.Get("remoteip"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		token    string
		minScore float64
		wantErr  error
	}{
		{
			name:   "v2 success",
			status: http.StatusOK,
			body:   `{"success": true, "hostname": "astraclean.nl"}`,
			token:  "tok",
		},
		{
			name:     "v3 above threshold",
			status:   http.StatusOK,
			body:     `{"success": true, "score": 0.9}`,
			token:    "tok",
			minScore: 0.5,
		},
		{
			name:     "v3 below threshold",
			status:   http.StatusOK,
			body:     `{"success": true, "score": 0.1}`,
			token:    "tok",
			minScore: 0.5,
			wantErr:  ErrLowScore,
		},
		{
			name:    "rejected",
			status:  http.StatusOK,
			body:    `{"success": false, "error-codes": ["invalid-input-response"]}`,
			token:   "tok",
			wantErr: ErrRejected,
		},
		{
			name:    "service error",
			status:  http.StatusBadGateway,
			body:    `oops`,
			token:   "tok",
			wantErr: ErrUnavailable,
		},
		{
			name:    "garbage body",
			status:  http.StatusOK,
			body:    `<html>`,
			token:   "tok",
			wantErr: ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			v := New(config.CaptchaConfig{
				Enabled:   true,
				Secret:    "s3cret",
				VerifyURL: srv.URL,
				MinScore:  tt.minScore,
			})

			err := v.Verify(context.Background(), tt.token, "203.0.113.7")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Verify() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_MissingToken(t *testing.T) {
	v := New(config.CaptchaConfig{Enabled: true, Secret: "s3cret"})
	if err := v.Verify(context.Background(), "  ", ""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("Verify() error = %v, want ErrMissingToken", err)
	}
}

func TestVerify_Disabled(t *testing.T) {
	v := New(config.CaptchaConfig{Enabled: false})
	if v.IsEnabled() {
		t.Fatal("verifier should be disabled")
	}
	if err := v.Verify(context.Background(), "", ""); err != nil {
		t.Fatalf("disabled Verify() error = %v", err)
	}
}
