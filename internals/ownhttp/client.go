package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return &http.Client{Transport: NewAddHeaderTransport(nil)}
}

// NewThrottled is New with at most rps requests per second. rps <= 0 is unlimited
func NewThrottled(rps float64) *http.Client {
	if rps <= 0 {
		return New()
	}
	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	return &http.Client{
		Transport: NewAddHeaderTransport(NewThrottleTransport(nil, limiter)),
	}
}
