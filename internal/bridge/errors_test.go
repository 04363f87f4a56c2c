package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/amimof/huego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		category  Category
		retryable bool
	}{
		{"deadline", context.DeadlineExceeded, CategoryTimeout, true},
		{"wrapped deadline", fmt.Errorf("get lights: %w", context.DeadlineExceeded), CategoryTimeout, true},
		{"os timeout", timeoutError{}, CategoryTimeout, true},
		{"cancelled", context.Canceled, CategoryUnknown, false},
		{"unauthorized", &huego.APIError{Type: 1, Description: "unauthorized user"}, CategoryAuth, false},
		{"not found", &huego.APIError{Type: 3, Address: "/lights/9"}, CategoryNotFound, false},
		{"other api error", &huego.APIError{Type: 7, Description: "invalid value"}, CategoryProtocol, false},
		{"bad json", &json.SyntaxError{Offset: 3}, CategoryProtocol, false},
		{"dns", &net.DNSError{Name: "hue.local", Err: "no such host"}, CategoryNetwork, false},
		{"refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, CategoryNetwork, true},
		{"host unreachable", &net.OpError{Op: "dial", Err: syscall.EHOSTUNREACH}, CategoryNetwork, true},
		{
			"url wrapped refused",
			&url.Error{Op: "Get", URL: "http://192.168.1.20/api", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
			CategoryNetwork,
			true,
		},
		{"generic", errors.New("connection reset"), CategoryNetwork, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "192.168.1.20")
			require.NotNil(t, got)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.retryable, got.Retryable)
			assert.Equal(t, "192.168.1.20", got.Addr)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil, ""))
}

func TestClassify_KeepsBridgeError(t *testing.T) {
	orig := newProtocolError("invalid resource id", nil)
	assert.Same(t, orig, Classify(fmt.Errorf("execute: %w", orig), "addr"))
}

func TestBridgeError_Error(t *testing.T) {
	err := &BridgeError{Category: CategoryTimeout, Message: "Request timed out"}
	assert.Equal(t, "Timeout: Request timed out", err.Error())

	err.Err = context.DeadlineExceeded
	assert.Equal(t, "Timeout: Request timed out (caused by: context deadline exceeded)", err.Error())
}

func TestShortMessage(t *testing.T) {
	assert.Equal(t, "Bridge not responding (timeout)", ShortMessage(Classify(context.DeadlineExceeded, "")))
	assert.Equal(t, "Application key rejected - check HUE_APP_KEY", ShortMessage(Classify(&huego.APIError{Type: 1}, "")))
	assert.Equal(t, "plain", ShortMessage(errors.New("plain")))
}

func TestIsRetryable_PlainError(t *testing.T) {
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsAuthError(errors.New("plain")))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Not Found", CategoryNotFound.String())
	assert.Equal(t, "Category(42)", Category(42).String())
}
