package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewdesk/internal/llm"
	"interviewdesk/mocks"
)

func TestWithRetries_TransientThenSuccess(t *testing.T) {
	m := new(mocks.MockCompleter)
	m.On("Complete", mock.Anything, "p").Return(nil, &llm.StatusError{Provider: "deepseek", StatusCode: 502}).Once()
	m.On("Complete", mock.Anything, "p").Return(completion("deepseek"), nil).Once()

	c := llm.WithRetries(m, 2, time.Millisecond)

	out, err := c.Complete(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "deepseek", out.Provider)
	m.AssertNumberOfCalls(t, "Complete", 2)
}

func TestWithRetries_ClientErrorNotRetried(t *testing.T) {
	m := new(mocks.MockCompleter)
	m.On("Complete", mock.Anything, "p").Return(nil, &llm.StatusError{Provider: "deepseek", StatusCode: 401})

	c := llm.WithRetries(m, 3, time.Millisecond)

	_, err := c.Complete(context.Background(), "p")

	assert.Equal(t, 401, llm.StatusCode(err))
	m.AssertNumberOfCalls(t, "Complete", 1)
}

func TestWithRetries_RateLimitNotRetried(t *testing.T) {
	m := new(mocks.MockCompleter)
	m.On("Complete", mock.Anything, "p").Return(nil, llm.NewRateLimitError("deepseek", errors.New("429"), 1))

	c := llm.WithRetries(m, 3, time.Millisecond)

	_, err := c.Complete(context.Background(), "p")

	var rlErr *llm.RateLimitError
	assert.ErrorAs(t, err, &rlErr)
	m.AssertNumberOfCalls(t, "Complete", 1)
}

func TestWithRetries_GivesUp(t *testing.T) {
	m := new(mocks.MockCompleter)
	m.On("Complete", mock.Anything, "p").Return(nil, errors.New("connection reset"))

	c := llm.WithRetries(m, 2, time.Millisecond)

	_, err := c.Complete(context.Background(), "p")

	assert.EqualError(t, err, "connection reset")
	m.AssertNumberOfCalls(t, "Complete", 3)
}

func TestWithRetries_ZeroReturnsSame(t *testing.T) {
	m := new(mocks.MockCompleter)
	assert.Same(t, m, llm.WithRetries(m, 0, time.Second))
}
