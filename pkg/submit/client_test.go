package submit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/astraclean/offerte_backend/pkg/validate"
)

func validPayload() Payload {
	return NewPayload(validate.Values{
		validate.FieldName:        "John Doe",
		validate.FieldEmail:       "john@example.com",
		validate.FieldPhone:       "0612345678",
		validate.FieldService:     "auto",
		validate.FieldDescription: "Dit is een testbericht voor de auto interieurreiniging service.",
	}, "")
}

func TestSubmit_URLEncoded(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
			return
		}
		if got := r.PostForm.Get("name"); got != "John Doe" {
			t.Errorf("name = %q", got)
		}
		if got := r.PostForm.Get("service"); got != "auto" {
			t.Errorf("service = %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := c.Submit(context.Background(), validPayload())
	if !out.OK() {
		t.Fatalf("Submit() = %+v, want success", out)
	}
	if out.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", out.StatusCode)
	}
	if n := posts.Load(); n != 1 {
		t.Errorf("server saw %d requests, want exactly 1", n)
	}
}

func TestSubmit_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			return
		}
		if got := r.FormValue("email"); got != "john@example.com" {
			t.Errorf("email = %q", got)
		}
		if got := r.FormValue(CaptchaField); got != "tok" {
			t.Errorf("captcha token = %q, want tok", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, WithEncoding(EncodingMultipart))
	p := validPayload()
	p.CaptchaToken = "tok"

	if out := c.Submit(context.Background(), p); !out.OK() {
		t.Fatalf("Submit() = %+v, want success", out)
	}
}

func TestSubmit_NonSuccessStatus(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		http.Error(w, "Er ging iets mis. Probeer het opnieuw.", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	out := c.Submit(context.Background(), validPayload())

	if out.Status != StatusFailure {
		t.Fatalf("Status = %s, want failure", out.Status)
	}
	if out.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", out.StatusCode)
	}
	if out.Reason != "Er ging iets mis. Probeer het opnieuw." {
		t.Errorf("Reason = %q", out.Reason)
	}
	if n := posts.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1 (no retry)", n)
	}
}

func TestSubmit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := New(url)
	out := c.Submit(context.Background(), validPayload())
	if out.Status != StatusFailure || out.StatusCode != 0 {
		t.Fatalf("Submit() = %+v, want transport failure", out)
	}
	if out.Reason == "" {
		t.Error("transport failure should carry a reason")
	}
}

func TestNew_RequiresEndpoint(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Error("New() with blank endpoint should fail")
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"", EncodingURL, false},
		{"urlencoded", EncodingURL, false},
		{"Multipart", EncodingMultipart, false},
		{"json", "", true},
	}
	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseEncoding(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestNewPayload_Snapshot(t *testing.T) {
	values := validate.Values{validate.FieldName: "John"}
	p := NewPayload(values, "")
	values[validate.FieldName] = "Changed"

	if p.Values[validate.FieldName] != "John" {
		t.Error("payload must not follow later form edits")
	}
}
