package siteqa_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteqa.Errorf(siteqa.ENOTFOUND, "page %q not found", "https://example.com")

	assert.Equal(t, siteqa.ENOTFOUND, siteqa.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com\" not found", siteqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteqa.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, siteqa.EINTERNAL, siteqa.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteqa.ErrorMessage(nil))
}

func TestTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "invalid is permanent", err: siteqa.Errorf(siteqa.EINVALID, "bad input"), want: false},
		{name: "not found is permanent", err: siteqa.Errorf(siteqa.ENOTFOUND, "missing"), want: false},
		{name: "unavailable is transient", err: siteqa.Errorf(siteqa.EUNAVAILABLE, "HTTP 503"), want: true},
		{name: "internal is transient", err: siteqa.Errorf(siteqa.EINTERNAL, "bad model output"), want: true},
		{name: "plain error is transient", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, siteqa.Transient(tt.err))
		})
	}
}
