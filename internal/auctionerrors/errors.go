package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrSettingsMissing = errors.New("auction settings not found")
)

// business logic errors
var (
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidEnquiry = errors.New("invalid enquiry")
)
