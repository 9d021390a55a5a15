package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both "no such email" and "wrong password" so
	// a login probe cannot enumerate registered accounts.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrWrongPassword is returned when account deletion re-authentication
	// fails. Unlike login, the caller is already authenticated, so the
	// message can be specific.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrListNotPublic is returned when an anonymous visitor tries to claim
	// an item on a list whose owner has not shared it.
	ErrListNotPublic = errors.New("this list is not public")

	// ErrClaimTokenMismatch is returned when a retraction request presents a
	// token that does not match the claim's secret.
	ErrClaimTokenMismatch = errors.New("claim token mismatch")

	// ErrIDGenerationExhausted is returned when repeated random-identifier
	// collisions exhaust the retry budget. With 60+ bits of entropy this is
	// effectively unreachable and indicates a broken randomness source.
	ErrIDGenerationExhausted = errors.New("could not generate a unique identifier")

	// ErrFetchFailed is returned when the metadata fetcher cannot retrieve
	// the page for reasons other than a timeout or a bad URL.
	ErrFetchFailed = errors.New("failed to fetch url")

	// ErrFetchTimeout is returned when the metadata fetcher gives up waiting
	// for the remote host.
	ErrFetchTimeout = errors.New("timed out fetching url")
)
