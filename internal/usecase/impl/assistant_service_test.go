package impl

import (
	"context"
	"testing"
	"time"

	"herbwise/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(completion *fakeCompletion) (*assistantService, *time.Time) {
	clock := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	svc := &assistantService{
		completion:     completion,
		logger:         testLogger(),
		cooldown:       5 * time.Second,
		maxRetries:     3,
		retryBaseDelay: time.Millisecond,
		now:            func() time.Time { return clock },
	}

	return svc, &clock
}

func TestAsk_ReturnsCompletionText(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{text: "Turmeric is anti-inflammatory."}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "tell me about turmeric")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric is anti-inflammatory.", answer)
	assert.Equal(t, 1, completion.calls)
}

func TestAsk_CooldownSynthesizesWaitMessage(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{text: "ok"}}}
	svc, clock := newTestAssistant(completion)
	ctx := context.Background()

	_, err := svc.Ask(ctx, "first")
	require.NoError(t, err)

	*clock = clock.Add(time.Second)

	answer, err := svc.Ask(ctx, "second")
	require.NoError(t, err)
	assert.Contains(t, answer, "Please wait 4 more seconds")
	assert.Equal(t, 1, completion.calls)

	*clock = clock.Add(5 * time.Second)

	answer, err = svc.Ask(ctx, "third")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, 2, completion.calls)
}

func TestAsk_RetriesRateLimitThenSucceeds(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{
		{err: service.ErrRateLimited},
		{err: service.ErrRateLimited},
		{text: "recovered"},
	}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "recovered", answer)
	assert.Equal(t, 3, completion.calls)
}

func TestAsk_RateLimitGivesUpAfterRetries(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrRateLimited}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, highDemandMessage, answer)
	assert.Equal(t, 4, completion.calls)
}

func TestAsk_QuotaFallsBackToKeywordTable(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrQuotaExceeded}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "How do I use Turmeric for inflammation?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Turmeric for Inflammation")
	assert.Contains(t, answer, "AI service is temporarily limited")
	assert.Equal(t, 1, completion.calls)
}

func TestAsk_QuotaWithoutFallbackMatch(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrQuotaExceeded}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "what about valerian root?")
	require.NoError(t, err)
	assert.Equal(t, quotaMessage, answer)
}

func TestAsk_NetworkErrorDegrades(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrNetwork}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, connectionMessage, answer)
	assert.Equal(t, 1, completion.calls)
}

func TestAsk_UnavailableDegrades(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrUnavailable}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, unavailableMessage, answer)
}

func TestAsk_MalformedResponseDegrades(t *testing.T) {
	completion := &fakeCompletion{script: []completionResult{{err: service.ErrMalformedResponse}}}
	svc, _ := newTestAssistant(completion)

	answer, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, genericTroubleMessage, answer)
}

func TestFallbackResponse_Keywords(t *testing.T) {
	assert.Contains(t, fallbackResponse("ginger for digestive upset"), "Ginger for Digestive Health")
	assert.Contains(t, fallbackResponse("chamomile please"), "Chamomile for Sleep")
	assert.Contains(t, fallbackResponse("boost my immune system"), "Echinacea for Immune Support")
	assert.Contains(t, fallbackResponse("herbs for stress"), "Stress & Anxiety")
	assert.Empty(t, fallbackResponse("unrelated question"))
}
