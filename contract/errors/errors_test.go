package errors_test

import (
	"errors"
	"testing"

	cerr "github.com/next-trace/scg-capability/contract/errors"
)

func TestCodeAndVars(t *testing.T) {
	e := cerr.Code(cerr.ErrCodePublishFailed)
	if e.Error() != cerr.ErrCodePublishFailed {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	// exported variables must carry their codes
	tests := []struct {
		err  error
		code string
	}{
		{cerr.ErrNotConnected, cerr.ErrCodeNotConnected},
		{cerr.ErrPublishFailed, cerr.ErrCodePublishFailed},
		{cerr.ErrProbeFailed, cerr.ErrCodeProbeFailed},
		{cerr.ErrEncodeFailed, cerr.ErrCodeEncodeFailed},
		{cerr.ErrDecodeFailed, cerr.ErrCodeDecodeFailed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, cerr.Code(tc.code)) {
			t.Fatalf("expected %s to be %s", tc.err, tc.code)
		}
	}
}
