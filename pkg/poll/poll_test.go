package poll_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numbersprotocol/capture-go/capture"
	"github.com/numbersprotocol/capture-go/pkg/poll"
)

func TestDoRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	result, err := poll.Do(context.Background(), nil, func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", &capture.Error{Kind: capture.KindNoCommits, Message: "No commits found for asset", Status: 404}
		}
		return "ready", nil
	}, poll.WithInitialInterval(time.Millisecond), poll.WithMaxElapsed(5*time.Second))

	require.NoError(t, err)
	assert.Equal(t, "ready", result)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	_, err := poll.Do(context.Background(), nil, func(ctx context.Context) (int, error) {
		attempts++
		return 0, &capture.Error{Kind: capture.KindValidation, Message: "nid is required"}
	}, poll.WithInitialInterval(time.Millisecond))

	assert.Equal(t, 1, attempts)
	assert.True(t, capture.IsKind(err, capture.KindValidation))
}

func TestDoReturnsLastErrorWhenBudgetRunsOut(t *testing.T) {
	_, err := poll.Do(context.Background(), nil, func(ctx context.Context) (string, error) {
		return "", &capture.Error{Kind: capture.KindNotFound, Message: "Asset not found", Status: 404}
	}, poll.WithInitialInterval(5*time.Millisecond), poll.WithMaxElapsed(30*time.Millisecond))

	assert.True(t, capture.IsKind(err, capture.KindNotFound))
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := poll.Do(ctx, nil, func(ctx context.Context) (string, error) {
		return "", &capture.Error{Kind: capture.KindNetwork, Message: "Network error", Status: 0}
	}, poll.WithInitialInterval(10*time.Second), poll.WithMaxElapsed(time.Hour))

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDoCustomRetryable(t *testing.T) {
	sentinel := errors.New("try again")
	attempts := 0
	result, err := poll.Do(context.Background(), nil, func(ctx context.Context) (string, error) {
		attempts++
		if attempts == 1 {
			return "", sentinel
		}
		return "ok", nil
	},
		poll.WithInitialInterval(time.Millisecond),
		poll.WithRetryable(func(err error) bool { return errors.Is(err, sentinel) }),
	)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, attempts)
}

func TestRetryable(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"no commits yet", &capture.Error{Kind: capture.KindNoCommits, Status: 404}, true},
		{"not indexed yet", &capture.Error{Kind: capture.KindNotFound, Status: 404}, true},
		{"transport failure", &capture.Error{Kind: capture.KindNetwork, Status: 0}, true},
		{"server-side failure", &capture.Error{Kind: capture.KindNetwork, Status: 503}, true},
		{"validation", &capture.Error{Kind: capture.KindValidation}, false},
		{"authentication", &capture.Error{Kind: capture.KindAuthentication, Status: 401}, false},
		{"permission", &capture.Error{Kind: capture.KindPermission, Status: 403}, false},
		{"insufficient funds", &capture.Error{Kind: capture.KindInsufficientFunds, Status: 400}, false},
		{"wrapped capture error", fmt.Errorf("fetching tree: %w", &capture.Error{Kind: capture.KindNoCommits}), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, poll.Retryable(tc.err))
		})
	}
}
