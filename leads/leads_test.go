package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAssignsIDAndTimestamp(t *testing.T) {
	a := New("contact", "Pat Doyle", "pat@example.com")
	b := New("contact", "Pat Doyle", "pat@example.com")
	if a.ID == "" || a.SubmittedAt == "" {
		t.Errorf("missing id or timestamp: %+v", a)
	}
	if a.ID == b.ID {
		t.Error("two leads share an ID")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		lead  Lead
		valid bool
	}{
		{"ok", Lead{Name: "Pat", Email: "pat@example.com"}, true},
		{"blank name", Lead{Name: "  ", Email: "pat@example.com"}, false},
		{"bad email", Lead{Name: "Pat", Email: "not-an-email"}, false},
	}
	for _, tt := range tests {
		err := tt.lead.Validate()
		if (err == nil) != tt.valid {
			t.Errorf("%s: Validate() = %v, want valid=%v", tt.name, err, tt.valid)
		}
	}
}

func TestSubmit(t *testing.T) {
	var got Lead
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding lead: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	lead := New("homeowner-consult", "Pat Doyle", "pat@example.com")
	lead.Town = "Plymouth"
	if err := Submit(context.Background(), srv.Client(), srv.URL, lead); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.ID != lead.ID || got.Town != "Plymouth" || got.Form != "homeowner-consult" {
		t.Errorf("server received %+v", got)
	}
}

func TestSubmitRejectsInvalid(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	err := Submit(context.Background(), srv.Client(), srv.URL, Lead{Name: "", Email: "x@y"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("invalid lead reached the endpoint")
	}
}

func TestSubmitErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	lead := New("contact", "Pat", "pat@example.com")
	if err := Submit(context.Background(), srv.Client(), srv.URL, lead); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
