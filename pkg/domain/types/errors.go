package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNonHTTPResponse means the transport layer failed before an HTTP
	// response could be classified (DNS failure, refused connection, etc.)
	ErrNonHTTPResponse = goerr.New("transport returned non-HTTP response")

	// ErrNonSuccessStatus means the server answered with a status code
	// outside the 2xx range
	ErrNonSuccessStatus = goerr.New("non-success status code")

	// ErrDecodeFailed means the response body did not match the expected
	// schema: malformed JSON, missing required field, or unparseable value
	ErrDecodeFailed = goerr.New("failed to decode response body")

	ErrInvalidOption = goerr.New("invalid option")
)
