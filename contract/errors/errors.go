package errors

// Error codes for the capability contracts. Keep stable; used across adapters and consumers.
const (
	ErrCodeNotConnected  = "capability.not_connected"
	ErrCodePublishFailed = "capability.publish_failed"
	ErrCodeProbeFailed   = "capability.probe_failed"
	ErrCodeEncodeFailed  = "capability.encode_failed"
	ErrCodeDecodeFailed  = "capability.decode_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrNotConnected  = Code(ErrCodeNotConnected)
	ErrPublishFailed = Code(ErrCodePublishFailed)
	ErrProbeFailed   = Code(ErrCodeProbeFailed)
	ErrEncodeFailed  = Code(ErrCodeEncodeFailed)
	ErrDecodeFailed  = Code(ErrCodeDecodeFailed)
)
