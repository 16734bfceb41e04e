package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/support-assistant/internal/cache"
	"github.com/spec-kit/support-assistant/internal/catalog"
	"github.com/spec-kit/support-assistant/internal/completion"
	"github.com/spec-kit/support-assistant/internal/domain"
)

// FallbackAnswer is returned when neither the completion service nor the
// knowledge base can answer.
const FallbackAnswer = "I'm sorry, I couldn't find an answer to that right now. Please browse our help center or contact " + supportEmail + " and our team will be happy to help."

const faqSystemPrompt = `You are TechShop's customer support assistant. Answer the customer's question briefly and politely using only the knowledge base below. If the answer is not covered, say so and suggest contacting ` + supportEmail + `.

Knowledge base:
`

// FAQService answers free-form questions from the knowledge base.
type FAQService struct {
	completer completion.Completer
	answers   cache.AnswerCache
	logger    *zap.Logger
	group     singleflight.Group
	system    string
}

// FAQDependencies bundles collaborators for the FAQ flow. Completer and
// Cache are optional.
type FAQDependencies struct {
	Completer completion.Completer
	Cache     cache.AnswerCache
	Logger    *zap.Logger
}

// NewFAQService constructs the service.
func NewFAQService(deps FAQDependencies) *FAQService {
	s := &FAQService{
		completer: deps.Completer,
		answers:   deps.Cache,
		logger:    deps.Logger,
		system:    faqSystemPrompt + catalog.KnowledgeBaseExcerpt(),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Handle answers question. Cached answers win; otherwise the completion
// service is asked and, when it fails, a deterministic answer is built from
// the best matching knowledge-base entry.
func (s *FAQService) Handle(ctx context.Context, question string) domain.Response {
	question = strings.TrimSpace(question)
	if question == "" {
		return validationFailed("Please enter a question.", "What are your operating hours?", "What is your return policy?")
	}

	entry, matched := catalog.MatchFAQ(question)
	links := []string{catalog.HelpCenterURL}
	if matched {
		links = []string{entry.Link, catalog.HelpCenterURL}
	}
	suggestions := []string{"Check an order status", "Create a support ticket", "Speak to a human agent"}

	if answer, ok := s.cached(ctx, question); ok {
		return info(answer, links, suggestions)
	}

	answer, err := s.generate(ctx, question)
	if err != nil {
		s.logger.Warn("completion failed; using fallback answer", zap.Error(err))
		answer = FallbackAnswer
		if matched {
			answer = entry.Answer
		}
	}
	return info(answer, links, suggestions)
}

func (s *FAQService) cached(ctx context.Context, question string) (string, bool) {
	if s.answers == nil {
		return "", false
	}
	answer, ok, err := s.answers.Get(ctx, question)
	if err != nil {
		s.logger.Warn("answer cache lookup failed", zap.Error(err))
		return "", false
	}
	return answer, ok
}

// generate asks the completion service once per distinct question even when
// several callers ask it at the same time.
func (s *FAQService) generate(ctx context.Context, question string) (string, error) {
	if s.completer == nil {
		return "", completion.ErrNotConfigured
	}
	v, err, _ := s.group.Do(cache.Key(question), func() (interface{}, error) {
		answer, err := s.completer.Complete(ctx, s.system, question)
		if err != nil {
			return "", err
		}
		if s.answers != nil {
			if err := s.answers.Set(ctx, question, answer); err != nil {
				s.logger.Warn("answer cache store failed", zap.Error(err))
			}
		}
		return answer, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
