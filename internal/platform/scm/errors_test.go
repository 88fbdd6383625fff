package scm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	transport := &TransportError{Op: "GET", URL: "https://scm/orgs", Err: errors.New("connection refused")}
	rejection := &APIError{Status: 400, Code: 600, Message: "bad request"}
	notFound := &APIError{Status: 404}

	assert.True(t, IsTransport(transport))
	assert.False(t, IsTransport(rejection))

	assert.True(t, IsRemoteRejection(rejection))
	assert.True(t, IsRemoteRejection(notFound))
	assert.False(t, IsRemoteRejection(transport))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(rejection))
	assert.False(t, IsNotFound(nil))
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("listing orgs: %w", &TransportError{Op: "GET", URL: "u", Err: errors.New("timeout")})
	assert.True(t, IsTransport(wrapped))
}

func TestAPIError_Message(t *testing.T) {
	assert.Equal(t, "HTTP 400: duplicate name (code 602)",
		(&APIError{Status: 400, Code: 602, Message: "duplicate name"}).Error())
	assert.Equal(t, "HTTP 500", (&APIError{Status: 500}).Error())
}
