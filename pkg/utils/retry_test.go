package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		results   []error
		permanent []error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt succeeds", results: []error{nil}, wantCalls: 1},
		{name: "succeeds after failures", results: []error{errTemporary, errTemporary, nil}, wantCalls: 3},
		{name: "attempts exhausted", results: []error{errTemporary, errTemporary, errTemporary}, wantCalls: 3, wantErr: errTemporary},
		{
			name:      "permanent error stops retrying",
			results:   []error{errPermanent, nil},
			permanent: []error{errPermanent},
			wantCalls: 1,
			wantErr:   errPermanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(cfg, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, tc.permanent...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
