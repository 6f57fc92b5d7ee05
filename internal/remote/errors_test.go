package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestError_Transient(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{"request timeout", 408, true},
		{"rate limited", 429, true},
		{"internal error", 500, true},
		{"bad gateway", 502, true},
		{"service unavailable", 503, true},
		{"bad request", 400, false},
		{"unauthorized", 401, false},
		{"not found", 404, false},
		{"unprocessable", 422, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{StatusCode: tt.statusCode}
			assert.Equal(t, tt.want, err.Transient())
		})
	}
}

func TestError_Message(t *testing.T) {
	withCode := &Error{Code: "rate_limited", Message: "slow down", StatusCode: 429}
	assert.Equal(t, "gateway error (429 rate_limited): slow down", withCode.Error())

	withoutCode := &Error{Message: "boom", StatusCode: 500}
	assert.Equal(t, "gateway error (500): boom", withoutCode.Error())
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))

	// Типизированная ошибка шлюза отвечает сама за себя
	assert.True(t, IsTransient(&Error{StatusCode: 503}))
	assert.False(t, IsTransient(&Error{StatusCode: 404}))

	// Обернутая ошибка все равно распознается
	wrapped := fmt.Errorf("append rows failed: %w", &Error{StatusCode: 500})
	assert.True(t, IsTransient(wrapped))

	// Истечение дедлайна и сетевые сбои временны
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(&net.DNSError{IsTimeout: true}))

	assert.False(t, IsTransient(errors.New("invalid payload")))
	assert.False(t, IsTransient(context.Canceled))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: 404}))
	assert.True(t, IsNotFound(fmt.Errorf("delete rows failed: %w", &Error{StatusCode: 404})))
	assert.False(t, IsNotFound(&Error{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("not found")))
	assert.False(t, IsNotFound(nil))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&Error{StatusCode: 401}))
	assert.False(t, IsAuthError(&Error{StatusCode: 403}))
	assert.False(t, IsAuthError(nil))
}

func TestIsTransient_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	assert.True(t, IsTransient(ctx.Err()))
}
