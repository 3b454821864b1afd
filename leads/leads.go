// Package leads submits contact-form leads to the capture endpoint.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is one captured contact. ID and SubmittedAt are assigned by New.
type Lead struct {
	ID          string `json:"id"`
	Form        string `json:"form"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	Region      string `json:"region,omitempty"`
	Town        string `json:"town,omitempty"`
	Message     string `json:"message,omitempty"`
	SubmittedAt string `json:"submittedAt"`
}

// New builds a lead with a fresh ID and submission timestamp.
func New(form, name, email string) Lead {
	return Lead{
		ID:          uuid.NewString(),
		Form:        form,
		Name:        name,
		Email:       email,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate reports whether the lead has the required fields.
func (l Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("lead missing name")
	}
	if !strings.Contains(l.Email, "@") {
		return fmt.Errorf("lead has invalid email %q", l.Email)
	}
	return nil
}

// Submit posts the lead to the capture endpoint. Any 2xx response counts as
// accepted; there is no retry.
func Submit(ctx context.Context, client *http.Client, endpoint string, lead Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encoding lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("submitting lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("lead endpoint returned status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
