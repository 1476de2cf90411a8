package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrArticleNotFound      = goerr.New("article not found")
	ErrReportNotFound       = goerr.New("report not found")
	ErrSubscriptionNotFound = goerr.New("subscription not found")
	ErrAPIKeyNotFound       = goerr.New("API key not found")
	ErrInvalidTransition    = goerr.New("invalid status transition")
)
