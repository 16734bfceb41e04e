package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-assistant/internal/cache"
	"github.com/spec-kit/support-assistant/internal/catalog"
	"github.com/spec-kit/support-assistant/internal/completion"
	"github.com/spec-kit/support-assistant/internal/domain"
)

type stubCompleter struct {
	calls  atomic.Int32
	answer string
	err    error
	delay  time.Duration

	mu     sync.Mutex
	system string
}

func (s *stubCompleter) Complete(_ context.Context, system, _ string) (string, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.system = system
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.answer, s.err
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestFAQService_UsesCompletionAndCaches(t *testing.T) {
	ctx := context.Background()
	completer := &stubCompleter{answer: "We are open 9 to 6 on weekdays."}
	answers := cache.NewMemoryAnswerCache(time.Hour)
	svc := NewFAQService(FAQDependencies{Completer: completer, Cache: answers})

	resp := svc.Handle(ctx, "What are your hours?")
	assert.Equal(t, domain.ResponseInfo, resp.Status)
	assert.Equal(t, "We are open 9 to 6 on weekdays.", resp.Text)
	assert.Contains(t, resp.Links, catalog.HelpCenterURL)
	assert.Contains(t, completer.system, "Operating hours")

	again := svc.Handle(ctx, "what are your HOURS?")
	assert.Equal(t, resp.Text, again.Text)
	assert.Equal(t, int32(1), completer.calls.Load())
}

func TestFAQService_FallbackOnCompletionFailure(t *testing.T) {
	ctx := context.Background()
	completer := &stubCompleter{err: completion.ErrExternalService}
	answers := cache.NewMemoryAnswerCache(time.Hour)
	svc := NewFAQService(FAQDependencies{Completer: completer, Cache: answers})

	resp := svc.Handle(ctx, "What is your return policy?")
	assert.Equal(t, domain.ResponseInfo, resp.Status)
	entry, ok := catalog.MatchFAQ("return")
	require.True(t, ok)
	assert.Equal(t, entry.Answer, resp.Text)

	_, cached, err := answers.Get(ctx, "What is your return policy?")
	require.NoError(t, err)
	assert.False(t, cached)

	unknown := svc.Handle(ctx, "Tell me a joke")
	assert.Equal(t, FallbackAnswer, unknown.Text)
}

func TestFAQService_WithoutCollaborators(t *testing.T) {
	svc := NewFAQService(FAQDependencies{})
	resp := svc.Handle(context.Background(), "Do you accept PayPal?")
	assert.Equal(t, domain.ResponseInfo, resp.Status)
	assert.Contains(t, resp.Text, "PayPal")
}

func TestFAQService_CacheErrorsAreMisses(t *testing.T) {
	completer := &stubCompleter{answer: "Express shipping takes 2-3 days."}
	svc := NewFAQService(FAQDependencies{Completer: completer, Cache: brokenCache{}})

	resp := svc.Handle(context.Background(), "How fast is express shipping?")
	assert.Equal(t, "Express shipping takes 2-3 days.", resp.Text)
}

func TestFAQService_BlankQuestion(t *testing.T) {
	completer := &stubCompleter{answer: "unused"}
	svc := NewFAQService(FAQDependencies{Completer: completer})

	resp := svc.Handle(context.Background(), "   ")
	assert.Equal(t, domain.ResponseValidationFailed, resp.Status)
	assert.Zero(t, completer.calls.Load())
}

func TestFAQService_ConcurrentIdenticalQuestionsShareOneCall(t *testing.T) {
	completer := &stubCompleter{answer: "We ship worldwide.", delay: 100 * time.Millisecond}
	svc := NewFAQService(FAQDependencies{Completer: completer})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := svc.Handle(context.Background(), "Do you ship internationally?")
			assert.Equal(t, "We ship worldwide.", resp.Text)
		}()
	}
	wg.Wait()

	assert.Less(t, completer.calls.Load(), int32(10))
}
