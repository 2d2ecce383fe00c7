package status

import "errors"

var (
	// Auth flow. The credential and blocked messages are surfaced to the
	// client verbatim.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountBlocked     = errors.New("Your account has been blocked")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrSessionExpired     = errors.New("auth: session expired")

	ErrEventNotFound      = errors.New("event: event not found")
	ErrTicketTypeNotFound = errors.New("event: ticket type not found")
	ErrOrderNotFound      = errors.New("order: order not found")
	ErrTicketNotFound     = errors.New("ticket: ticket not found")
	ErrAlreadyCheckedIn   = errors.New("ticket: ticket already checked in")
	ErrRefundNotFound     = errors.New("refund: refund request not found")
)
