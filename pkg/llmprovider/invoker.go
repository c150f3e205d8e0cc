package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Attempt is the outcome of one provider call.
type Attempt struct {
	Provider string
	Response *Response
	Kind     FailureKind
	Err      error
	Duration time.Duration
}

// Failed reports whether the attempt produced no usable response.
func (a Attempt) Failed() bool {
	return a.Err != nil
}

type callResult struct {
	resp *Response
	err  error
}

// Invoke calls provider once, racing it against timeout.
// When the timer wins the call is abandoned: its context is cancelled and its result dropped.
// decode runs on the caller's goroutine, only after a response arrives in time.
func Invoke(ctx context.Context, provider Provider, req *Request, timeout time.Duration, decode Decoder) Attempt {
	start := time.Now()
	attempt := Attempt{Provider: provider.Name()}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		resp, err := provider.GenerateContent(attemptCtx, req)
		done <- callResult{resp: resp, err: err}
	}()

	select {
	case <-attemptCtx.Done():
		attempt.Duration = time.Since(start)
		attempt.Kind = FailureTimedOut
		if errors.Is(ctx.Err(), context.Canceled) {
			attempt.Kind = FailureFatal
		}
		attempt.Err = &ProviderError{Provider: provider.Name(), Kind: attempt.Kind, Err: attemptCtx.Err()}
		return attempt

	case res := <-done:
		attempt.Duration = time.Since(start)
		if res.err != nil {
			attempt.Kind = KindOf(res.err)
			var pe *ProviderError
			if !errors.As(res.err, &pe) {
				res.err = &ProviderError{Provider: provider.Name(), Kind: attempt.Kind, Err: res.err}
			}
			attempt.Err = res.err
			return attempt
		}
		if res.resp == nil || res.resp.Text == "" {
			attempt.Kind = FailureMalformed
			attempt.Err = &ProviderError{Provider: provider.Name(), Kind: FailureMalformed, Err: ErrEmptyResponse}
			return attempt
		}
		if decode != nil {
			if err := decode(res.resp); err != nil {
				attempt.Kind = FailureMalformed
				attempt.Err = &ProviderError{
					Provider: provider.Name(),
					Kind:     FailureMalformed,
					Err:      fmt.Errorf("decode response: %w", err),
				}
				return attempt
			}
		}
		attempt.Response = res.resp
		return attempt
	}
}
