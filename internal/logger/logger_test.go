package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("anonymous when no session", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["session"])
		_, hasRequest := l.Data["request_id"]
		assert.False(t, hasRequest)
	})

	t.Run("request and session ids", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1") //nolint:staticcheck
		ctx = context.WithValue(ctx, SessionIDKey, "sess-1")                   //nolint:staticcheck

		l := WithContext(ctx)
		assert.Equal(t, "req-1", l.Data["request_id"])
		assert.Equal(t, "sess-1", l.Data["session"])
	})
}

func TestFields(t *testing.T) {
	l := New().WithField("view", "v_gap_turni").WithFields(map[string]interface{}{"rows": 3})
	assert.Equal(t, "v_gap_turni", l.Data["view"])
	assert.Equal(t, 3, l.Data["rows"])

	cause := errors.New("boom")
	assert.Equal(t, cause, l.WithError(cause).Data[logrus.ErrorKey])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
