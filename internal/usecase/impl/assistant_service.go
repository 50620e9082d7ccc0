package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"herbwise/config"
	"herbwise/internal/domain/service"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

const (
	cooldownMessageFormat = "Please wait %d more second%s before asking another question. This helps me provide better responses and prevents rate limiting! 🌿\n\nWhile you wait, you can:\n• Browse our Plants Database for detailed herb information\n• Review previous responses in our chat history\n• Prepare your next question about medicinal plants"

	highDemandMessage = "I'm currently experiencing high demand! 🌿 Please wait a few minutes before asking another question. In the meantime, feel free to browse our medicinal plants database for information about specific herbs and remedies."

	connectionMessage = "I'm having trouble connecting to the AI service. Please check your internet connection and try again."

	unavailableMessage = "The AI service is temporarily unavailable. Please try again in a moment."

	genericTroubleMessage = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment, or feel free to browse our medicinal plants database for information."

	fallbackNote = "\n\n*Note: AI service is temporarily limited, but I can still help with common plant questions!*"

	quotaMessage = `🚫 **AI Service Temporarily Unavailable**

The AI service has reached its daily usage limit. Here's what you can do:

🌿 **Browse Our Plant Database**: Visit the **Plants** section to explore medicinal herbs with detailed information about benefits, preparation methods, and costs.

📚 **Search Specific Plants**: Use our search feature to find plants for specific health conditions like:
• Turmeric for inflammation
• Chamomile for sleep and anxiety
• Ginger for digestive issues
• Echinacea for immune support

💡 **Plant Preparation Guide**: Each plant page includes step-by-step preparation instructions and safety precautions.

The AI service will be restored within 24 hours. Thank you for your patience! 🙏`
)

type assistantService struct {
	completion service.CompletionService
	logger     *slog.Logger

	cooldown       time.Duration
	maxRetries     int
	retryBaseDelay time.Duration

	mu          sync.Mutex
	lastRequest time.Time

	now func() time.Time
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Completion service.CompletionService
	Logger     *slog.Logger
	Config     *config.Config
}

// NewAssistantService creates the assistant bridge with its degradation
// policy around the remote completion client.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		completion:     params.Completion,
		logger:         params.Logger,
		cooldown:       params.Config.Assistant.Cooldown,
		maxRetries:     params.Config.Assistant.MaxRetries,
		retryBaseDelay: params.Config.Assistant.RetryBaseDelay,
		now:            time.Now,
	}
}

// Ask answers the prompt. Remote failures never surface as errors: rate
// limiting is retried with exponential backoff, quota exhaustion falls back
// to a keyword answer table, and everything else degrades to an explanatory
// message.
func (s *assistantService) Ask(ctx context.Context, prompt string) (string, error) {
	if msg, throttled := s.checkCooldown(); throttled {
		return msg, nil
	}

	text, err := s.complete(ctx, prompt)
	if err == nil {
		return text, nil
	}

	s.logger.Warn("Assistant completion degraded", slog.Any("error", err))

	switch {
	case errors.Is(err, service.ErrRateLimited):
		return highDemandMessage, nil
	case errors.Is(err, service.ErrQuotaExceeded):
		if fallback := fallbackResponse(prompt); fallback != "" {
			return fallback + fallbackNote, nil
		}

		return quotaMessage, nil
	case errors.Is(err, service.ErrNetwork):
		return connectionMessage, nil
	case errors.Is(err, service.ErrUnavailable):
		return unavailableMessage, nil
	default:
		return genericTroubleMessage, nil
	}
}

// checkCooldown enforces the minimum interval between outbound requests and
// records the request time when the caller may proceed.
func (s *assistantService) checkCooldown() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	elapsed := now.Sub(s.lastRequest)
	if !s.lastRequest.IsZero() && elapsed < s.cooldown {
		waitSeconds := int(math.Ceil((s.cooldown - elapsed).Seconds()))
		plural := "s"
		if waitSeconds == 1 {
			plural = ""
		}

		return fmt.Sprintf(cooldownMessageFormat, waitSeconds, plural), true
	}

	s.lastRequest = now

	return "", false
}

// complete calls the remote client, retrying only transient rate limiting.
func (s *assistantService) complete(ctx context.Context, prompt string) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryBaseDelay
	policy.RandomizationFactor = 0
	policy.Multiplier = 2

	return backoff.RetryWithData(func() (string, error) {
		text, err := s.completion.Complete(ctx, prompt)
		if err != nil {
			if errors.Is(err, service.ErrRateLimited) {
				return "", err
			}

			return "", backoff.Permanent(err)
		}

		return text, nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.maxRetries)), ctx))
}

type fallbackEntry struct {
	match    func(string) bool
	response string
}

var fallbackTable = []fallbackEntry{
	{
		match: func(p string) bool {
			return strings.Contains(p, "turmeric") && strings.Contains(p, "inflammation")
		},
		response: `🌿 **Turmeric for Inflammation**

**Preparation Methods:**
1. **Golden Milk**: Mix 1 tsp turmeric powder + pinch of black pepper + warm milk
2. **Fresh Root Tea**: Slice fresh turmeric root, boil for 10 minutes
3. **Turmeric Paste**: Mix turmeric powder with water, apply topically

**Dosage**: 1-3 grams daily (about 1/2 to 1 teaspoon)

**Benefits**: Anti-inflammatory, antioxidant, pain relief

**Safety**: May interact with blood thinners. Consult your doctor if taking medications.

💡 *Find more details in our Plants Database → Turmeric section*`,
	},
	{
		match: func(p string) bool {
			return strings.Contains(p, "ginger") &&
				(strings.Contains(p, "nausea") || strings.Contains(p, "digestive"))
		},
		response: `🌿 **Ginger for Digestive Health**

**Preparation Methods:**
1. **Fresh Ginger Tea**: Slice 1-inch fresh ginger, steep in hot water 10 mins
2. **Ginger Juice**: Grate fresh ginger, strain juice, mix with honey
3. **Dried Ginger**: 1/4 to 1/2 teaspoon powder in warm water

**Benefits**: Anti-nausea, digestive aid, anti-inflammatory

**Uses**: Motion sickness, morning sickness, indigestion

**Safety**: Avoid large amounts during pregnancy. May interact with blood thinners.

💡 *Explore our complete Ginger guide in the Plants section*`,
	},
	{
		match: func(p string) bool {
			return strings.Contains(p, "chamomile") ||
				(strings.Contains(p, "sleep") && strings.Contains(p, "tea"))
		},
		response: `🌿 **Chamomile for Sleep & Relaxation**

**Preparation**:
• **Tea**: 1 tsp dried flowers in 1 cup hot water, steep 5-10 minutes
• **Evening dose**: Drink 30 minutes before bedtime

**Benefits**: Calming, sleep aid, anti-inflammatory, digestive support

**Safety**: Generally safe. May cause allergic reactions in people sensitive to ragweed.

💡 *Visit our Plants Database for more calming herbs like Lavender and Valerian Root*`,
	},
	{
		match: func(p string) bool {
			return strings.Contains(p, "echinacea") ||
				(strings.Contains(p, "immune") && strings.Contains(p, "system"))
		},
		response: `🌿 **Echinacea for Immune Support**

**Preparation**:
• **Tea**: 1-2 tsp dried herb, steep 10 minutes
• **Tincture**: 2-3 mL, 3 times daily
• **Best taken**: At first sign of cold symptoms

**Benefits**: Immune support, antiviral, reduces cold duration

**Safety**: Avoid with autoimmune conditions. Don't use for more than 8 weeks continuously.

💡 *Check our Plants section for more immune-boosting herbs*`,
	},
	{
		match: func(p string) bool {
			return strings.Contains(p, "stress") || strings.Contains(p, "anxiety")
		},
		response: `🌿 **Natural Herbs for Stress & Anxiety**

**Top Recommendations**:
1. **Chamomile**: Gentle, safe for daily use
2. **Lavender**: Aromatherapy or tea
3. **Ashwagandha**: Adaptogenic herb for chronic stress
4. **Lemon Balm**: Calming, good for nervous tension

**Quick Stress Relief Tea**: Mix chamomile + lemon balm, steep 10 minutes

**Safety**: Always consult healthcare provider for severe anxiety. Start with small amounts.

💡 *Browse our Plants Database for detailed preparation guides*`,
	},
}

// fallbackResponse answers common questions locally when the remote service
// has exhausted its quota. Returns "" when no entry matches.
func fallbackResponse(prompt string) string {
	lowered := strings.ToLower(prompt)
	for _, entry := range fallbackTable {
		if entry.match(lowered) {
			return entry.response
		}
	}

	return ""
}
