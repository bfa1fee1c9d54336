package model

import (
	"errors"
)

// Lifecycle errors. Every precondition failure aborts the whole
// transaction with one of these; nothing is partially applied and nothing
// is retried below the caller.
var (
	// ErrUnauthorized is returned when the caller is not the campaign
	// creator on a creator-only operation.
	ErrUnauthorized = errors.New("unauthorized action")

	// ErrInvalidMilestoneIndex is returned for an index at or past the end
	// of the milestone sequence.
	ErrInvalidMilestoneIndex = errors.New("invalid milestone index")

	// ErrMilestoneNotCompleted is returned when a release is attempted
	// before verification.
	ErrMilestoneNotCompleted = errors.New("milestone not completed")

	// ErrMilestoneAlreadyReleased is returned on a second release of the
	// same milestone.
	ErrMilestoneAlreadyReleased = errors.New("milestone already released")

	// ErrInsufficientFunds is returned when an account balance cannot
	// cover the requested movement.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountOverflow covers both overflow and underflow of checked
	// 64-bit arithmetic.
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrMilestoneLimitReached is returned when a campaign's configured
	// milestone budget is exhausted.
	ErrMilestoneLimitReached = errors.New("milestone limit reached")

	// ErrCampaignNotFound is returned for operations against an unknown
	// campaign.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrAccountNotFound is returned for lookups of an unprovisioned
	// ledger account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when provisioning an address twice.
	ErrAccountExists = errors.New("account already exists")
)
