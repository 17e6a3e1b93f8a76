// Package lookup simulates the NPCI mapper / scholarship status backend.
// Outcomes are a fixed function of the last digit of the identity number so
// every UI state stays reachable without a real upstream.
package lookup

import (
	"context"
	"errors"
	"time"

	"dbt-portal/internal/model"
)

var (
	ErrInvalidInput       = errors.New("Invalid Aadhaar number. Please enter a valid 12-digit number.")
	ErrServiceUnavailable = errors.New("Could not connect to the DBT server. Please try again later.")
)

const identityLength = 12

// simulatedLatency mimics a real round trip so the caller's loading states
// get exercised. Applied uniformly to success and failure.
const simulatedLatency = 1500 * time.Millisecond

type Client struct {
	latency time.Duration
}

func NewClient() *Client {
	return &Client{latency: simulatedLatency}
}

// NewClientWithLatency exists for callers that cannot afford the full
// simulated delay, such as tests.
func NewClientWithLatency(d time.Duration) *Client {
	return &Client{latency: d}
}

// ValidIdentityNumber reports whether s is exactly 12 decimal digits.
func ValidIdentityNumber(s string) bool {
	if len(s) != identityLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CheckStatus resolves the seeding and scholarship status for one identity
// number. Validation happens before the simulated delay; the delay applies to
// every other path. Each call is independent, there is no shared state.
func (c *Client) CheckStatus(ctx context.Context, identityNumber string) (*model.StatusRecord, error) {
	if !ValidIdentityNumber(identityNumber) {
		return nil, ErrInvalidInput
	}

	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	switch identityNumber[len(identityNumber)-1] {
	case '1': // seeded, scholarship approved
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         true,
			BankName:         str("State Bank of India"),
			LastUpdated:      str("2023-10-15"),
			ScholarshipStage: model.StageApproved,
			ScholarshipName:  str("National Merit Scholarship"),
		}, nil
	case '2': // seeded, scholarship pending
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         true,
			BankName:         str("HDFC Bank"),
			LastUpdated:      str("2024-01-20"),
			ScholarshipStage: model.StagePending,
			ScholarshipName:  str("Post-Matric Scholarship"),
		}, nil
	case '3': // seeded, scholarship rejected
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         true,
			BankName:         str("Punjab National Bank"),
			LastUpdated:      str("2023-11-05"),
			ScholarshipStage: model.StageRejected,
			ScholarshipName:  str("Central Sector Scheme Scholarship"),
		}, nil
	case '4': // not seeded at all
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         false,
			ScholarshipStage: model.StageNotApplied,
		}, nil
	case '5': // seeded but never applied
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         true,
			BankName:         str("ICICI Bank"),
			LastUpdated:      str("2023-09-01"),
			ScholarshipStage: model.StageNotApplied,
		}, nil
	case '0': // simulated backend outage
		return nil, ErrServiceUnavailable
	default: // generic found-but-pending fallback
		return &model.StatusRecord{
			IdentityNumber:   identityNumber,
			IsSeeded:         true,
			BankName:         str("Axis Bank"),
			LastUpdated:      str("2024-02-01"),
			ScholarshipStage: model.StagePending,
			ScholarshipName:  str("State Merit Scholarship"),
		}, nil
	}
}

func str(s string) *string {
	return &s
}
