package ai

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/prompt"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

var (
	conciergeWelcome = domain.L(
		"Bienvenido a Meta Travels. Soy su Concierge Estratégico. ¿Cómo puedo ayudarle a diseñar su próxima travesía de lujo hoy?",
		"Welcome to Meta Travels. I am your Strategic Concierge. How can I help you design your next luxury journey today?",
	)
	conciergeBusy = domain.L(
		"Nuestras líneas inteligentes están saturadas. Por favor, intente de nuevo o contacte a un consultor humano.",
		"Our smart lines are busy. Please try again or contact a human consultant.",
	)
	conciergeNotConfigured = domain.L(
		"Lo siento, el servicio de IA no está configurado (falta API Key).",
		"Sorry, the AI service is not configured (missing API Key).",
	)

	imageKeywords = []string{"ver", "mira", "foto", "imagen", "cómo es", "look like", "show me", "picture", "imagine"}
)

const providerNone = "none"

// PortfolioSource renders the package catalog for the system prompt.
type PortfolioSource interface {
	PromptSummary(lang domain.Language) (string, error)
}

type chatModel interface {
	Chat(ctx context.Context, req ChatRequest) (ProviderResult, *GenerateMetadata, error)
}

type ConciergeConfig struct {
	SiteName string
	Contact  string
}

// Concierge answers travel questions for one caller-owned session at a time.
type Concierge struct {
	model     chatModel
	portfolio PortfolioSource
	titles    *TitleResolver
	store     cache.Store
	prompts   *prompt.Builder
	cfg       ConciergeConfig
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewConcierge builds the concierge. A nil model leaves it answering with
// the not-configured notice.
func NewConcierge(model *ModelManager, portfolio PortfolioSource, titles *TitleResolver, store cache.Store, cfg ConciergeConfig, m *metrics.Metrics, logger *zap.Logger) *Concierge {
	c := newConcierge(nil, portfolio, titles, store, cfg, m, logger)
	if model != nil {
		c.model = model
	}
	return c
}

func newConcierge(model chatModel, portfolio PortfolioSource, titles *TitleResolver, store cache.Store, cfg ConciergeConfig, m *metrics.Metrics, logger *zap.Logger) *Concierge {
	return &Concierge{
		model:     model,
		portfolio: portfolio,
		titles:    titles,
		store:     store,
		prompts:   prompt.DefaultBuilder(),
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (c *Concierge) Enabled() bool {
	return c.model != nil
}

func (c *Concierge) NewSession(lang domain.Language) *domain.ChatSession {
	now := c.now().UTC()
	return &domain.ChatSession{
		ID:       uuid.NewString(),
		Language: lang,
		History: []domain.ChatMessage{{
			Role: domain.ChatRoleModel,
			Text: conciergeWelcome.Resolve(lang),
			At:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Send runs one turn. On success the user message and the reply are
// appended to session; a failed turn leaves the session untouched and
// returns the localized busy notice.
func (c *Concierge) Send(ctx context.Context, session *domain.ChatSession, message string) (*domain.ChatReply, error) {
	if session == nil {
		return nil, errors.NewValidationError("session is required", "session", nil)
	}
	text := strings.TrimSpace(message)
	if text == "" {
		return nil, errors.NewValidationError("message is required", "message", message)
	}
	text = truncateRunes(text, constants.AIInputLimits.MaxQueryLength)

	reply := &domain.ChatReply{
		SessionID:  session.ID,
		WantsImage: WantsImage(text),
		Provider:   providerNone,
	}

	if c.model == nil {
		reply.Text = conciergeNotConfigured.Resolve(session.Language)
		return reply, nil
	}

	system, err := c.systemPrompt(session.Language)
	if err != nil {
		return nil, errors.NewServiceError("failed to build system prompt", "concierge", "send", err)
	}

	result, meta, err := c.model.Chat(ctx, ChatRequest{
		System:   system,
		History:  historyTurns(session.History, constants.AIInputLimits.MaxHistoryTurns),
		Message:  text,
		Grounded: true,
		Preset:   PresetCreative,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("Concierge turn failed", zap.String("session", session.ID), zap.Error(err))
		c.metrics.ObserveConciergeReply(providerNone, false)
		reply.Text = conciergeBusy.Resolve(session.Language)
		return reply, nil
	}

	citations := c.titles.Resolve(ctx, DedupeCitations(result.Citations))

	now := c.now().UTC()
	session.History = append(session.History,
		domain.ChatMessage{Role: domain.ChatRoleUser, Text: text, At: now},
		domain.ChatMessage{Role: domain.ChatRoleModel, Text: result.Text, Citations: citations, At: now},
	)
	session.History = trimHistory(session.History, constants.AIInputLimits.MaxHistoryTurns)
	session.UpdatedAt = now

	c.metrics.ObserveConciergeReply(meta.Provider, meta.UsedFallback)

	reply.Text = result.Text
	reply.Citations = citations
	reply.Provider = meta.Provider
	reply.Fallback = meta.UsedFallback
	return reply, nil
}

func (c *Concierge) systemPrompt(lang domain.Language) (string, error) {
	portfolio := "[]"
	if c.portfolio != nil {
		summary, err := c.portfolio.PromptSummary(lang)
		if err != nil {
			return "", err
		}
		portfolio = summary
	}
	return c.prompts.BuildConciergeSystem(c.cfg.SiteName, portfolio, c.cfg.Contact, lang)
}

func (c *Concierge) SaveSession(ctx context.Context, session *domain.ChatSession) error {
	if c.store == nil {
		return errors.NewServiceError("session store unavailable", "concierge", "save_session", nil)
	}
	return c.store.Set(ctx, constants.CacheKeys.ChatPrefix+session.ID, session, constants.CacheTTL.ChatSession)
}

func (c *Concierge) LoadSession(ctx context.Context, id string) (*domain.ChatSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.NewValidationError("invalid session id", "id", id)
	}
	if c.store == nil {
		return nil, errors.NewServiceError("session store unavailable", "concierge", "load_session", nil)
	}

	var session domain.ChatSession
	found, err := c.store.Get(ctx, constants.CacheKeys.ChatPrefix+id, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("chat session", id)
	}
	return &session, nil
}

// WantsImage reports whether the message asks to see something.
func WantsImage(message string) bool {
	return util.ContainsAnyFold(message, imageKeywords)
}

// historyTurns keeps the last limit messages and drops leading model
// messages, since a conversation replayed to the model opens with the user.
func historyTurns(history []domain.ChatMessage, limit int) []ChatTurn {
	history = trimHistory(history, limit)
	start := 0
	for start < len(history) && history[start].Role != domain.ChatRoleUser {
		start++
	}

	turns := make([]ChatTurn, 0, len(history)-start)
	for _, msg := range history[start:] {
		turns = append(turns, ChatTurn{Role: msg.Role, Text: msg.Text})
	}
	return turns
}

func trimHistory(history []domain.ChatMessage, limit int) []domain.ChatMessage {
	if limit <= 0 || len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
