package ownhttp

import (
	"net/http"
	"runtime"
	"sync"

	"golang.org/x/time/rate"
)

// Version is reported in the User-Agent header. Set by main
var Version = "dev"

var (
	userAgentOnce sync.Once
	userAgent     string
)

// UserAgent returns the User-Agent sent with every request
func UserAgent() string {
	userAgentOnce.Do(func() {
		userAgent = "mclaunch/" + Version + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
	})
	return userAgent
}

// AddHeaderTransport sets the User-Agent header on every request that has none
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return adt.T.RoundTrip(req)
	}
	// RoundTrippers should not modify the request
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent())
	return adt.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}

// ThrottleTransport waits for the limiter before every request.
// A nil limiter does not limit anything
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tt.limiter != nil {
		if err := tt.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return tt.T.RoundTrip(req)
}

func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T, limiter}
}
