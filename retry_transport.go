package jobsets

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"
)

const (
	retryAttempts  = 5
	retryDelay     = 1 * time.Second
	retryMaxDelay  = 30 * time.Second
	retryMaxJitter = 1 * time.Second
	maxRequestSize = 1 * 1024 * 1024
)

// RetryTransport retries requests that failed with 429, a 5xx status or a
// GitHub primary rate limit 403, backing off exponentially with jitter.
type RetryTransport struct {
	Base     http.RoundTripper
	Log      *zap.SugaredLogger
	Attempts uint
	Delay    time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	log := t.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	attempts := t.Attempts
	if attempts == 0 {
		attempts = retryAttempts
	}
	delay := t.Delay
	if delay == 0 {
		delay = retryDelay
	}

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(io.LimitReader(req.Body, maxRequestSize))
		if err != nil {
			return nil, err
		}
		_ = req.Body.Close()
	}

	var resp *http.Response
	var exhausted bool
	err := retry.Do(
		func() error {
			if body != nil {
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			exhausted = false
			var err error
			start := time.Now()
			resp, err = base.RoundTrip(req) //nolint:bodyclose // returned to the caller
			if err != nil {
				log.Debugw("request failed", "url", req.URL.String(), "error", err, "elapsed", time.Since(start))
				return err
			}

			if !retryable(resp) {
				return nil
			}

			// Buffer the body so the last response can still be read by the caller.
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			resp.Body = io.NopCloser(bytes.NewReader(b))

			log.Infow("retrying request", "url", req.URL.String(), "status", resp.StatusCode)
			exhausted = true
			return &retryableError{StatusCode: resp.StatusCode}
		},
		retry.Context(req.Context()),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.MaxDelay(retryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxJitter(retryMaxJitter),
		retry.RetryIf(func(err error) bool {
			var retryErr *retryableError
			return errors.As(err, &retryErr)
		}),
	)
	if err != nil {
		if exhausted && resp != nil && req.Context().Err() == nil {
			// Out of attempts: hand back the last response so go-github can
			// turn it into a typed error.
			return resp, nil
		}
		return nil, err
	}
	return resp, nil
}

func retryable(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-Ratelimit-Remaining") == "0"
}

type retryableError struct {
	StatusCode int
}

func (e *retryableError) Error() string {
	return http.StatusText(e.StatusCode)
}
