package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error { return s.err }

// slowChecker blocks until the context ends or a fixed delay passes.
type slowChecker struct {
	name  string
	delay time.Duration
}

func (s *slowChecker) Name() string { return s.name }

func (s *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "catalog"}))
	require.NoError(t, registry.Register(&stubChecker{name: "random-source"}))

	err := registry.Register(&stubChecker{name: "catalog"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "catalog")
	assert.Len(t, registry.checkers, 2)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []HealthChecker
		want     HealthStatus
		messages map[string]string
	}{
		{
			name: "no checkers is healthy",
			want: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "catalog"},
				&stubChecker{name: "random-source"},
			},
			want:     HealthStatusHealthy,
			messages: map[string]string{"catalog": "", "random-source": ""},
		},
		{
			name: "one failure makes the result unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "catalog", err: errors.New("invalid catalog: catalog is empty")},
				&stubChecker{name: "random-source"},
			},
			want: HealthStatusUnhealthy,
			messages: map[string]string{
				"catalog":       "invalid catalog: catalog is empty",
				"random-source": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			require.NotNil(t, result)
			assert.Equal(t, tt.want, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			assert.Len(t, result.Checks, len(tt.messages))
			for name, msg := range tt.messages {
				require.Contains(t, result.Checks, name)
				assert.Equal(t, msg, result.Checks[name].Message)
			}
		})
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&slowChecker{name: "catalog", delay: time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["catalog"].Message, "context canceled")
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(10 * time.Millisecond))
	require.NoError(t, registry.Register(&slowChecker{name: "slow", delay: time.Second}))
	require.NoError(t, registry.Register(&stubChecker{name: "catalog"}))

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "deadline exceeded")
	assert.Equal(t, HealthStatusHealthy, result.Checks["catalog"].Status)
}
