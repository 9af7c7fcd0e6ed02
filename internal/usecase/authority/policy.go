package authority

import (
	"errors"
	"time"
)

// Policy holds the limits applied to every transfer
type Policy struct {
	// MaxFailedAttempts is the number of wrong submissions on one code that
	// locks the owner out
	MaxFailedAttempts int
	// TransferTTL is the lifetime of a transfer from initiation
	TransferTTL time.Duration
	// CodeTTL is the step deadline of a pending code
	CodeTTL time.Duration
	// CodeAuditWindow is how long a validated code stays relevant for audit
	CodeAuditWindow time.Duration
}

// DefaultPolicy returns the stock limits
func DefaultPolicy() Policy {
	return Policy{
		MaxFailedAttempts: 3,
		TransferTTL:       24 * time.Hour,
		CodeTTL:           30 * time.Minute,
		CodeAuditWindow:   6 * time.Hour,
	}
}

// Validate checks that every limit is usable
func (p Policy) Validate() error {
	if p.MaxFailedAttempts < 1 {
		return errors.New("max failed attempts must be at least 1")
	}
	if p.TransferTTL <= 0 {
		return errors.New("transfer TTL must be positive")
	}
	if p.CodeTTL <= 0 {
		return errors.New("code TTL must be positive")
	}
	if p.CodeAuditWindow <= 0 {
		return errors.New("code audit window must be positive")
	}
	return nil
}
