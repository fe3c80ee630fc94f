package lead

import (
	"context"
	stderrors "errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/scoring"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/diagnosis"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const (
	maxNameRunes        = 120
	maxPhoneRunes       = 40
	maxDestinationRunes = 200
	defaultListLimit    = 50
	maxListLimit        = 200
)

// ErrBriefsDisabled is the cause returned by GenerateBrief when no model
// provider is configured.
var ErrBriefsDisabled = stderrors.New("advisor briefs disabled")

// CaptureInput is the public lead form, optionally carrying the wizard
// answers. Answers is the single-respondent shortcut; Respondents wins when
// both are set.
type CaptureInput struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Destination string              `json:"destination"`
	PackageSlug string              `json:"packageSlug"`
	Language    string              `json:"language"`
	Modality    domain.Modality     `json:"modality"`
	Answers     map[string]string   `json:"emotionalAnswers"`
	Respondents []domain.Respondent `json:"respondents"`
	AgeBands    []domain.AgeBand    `json:"ageBands"`
}

type Diagnoser interface {
	Diagnose(ctx context.Context, req diagnosis.Request) (*domain.ScoringResult, error)
}

type PackageLookup interface {
	BySlug(slug string) (*domain.TravelPackage, error)
}

// BriefEnqueuer schedules advisor brief generation for a stored lead.
type BriefEnqueuer interface {
	EnqueueAdvisorBrief(ctx context.Context, leadID int64) error
}

type Briefer interface {
	Enabled() bool
	Brief(ctx context.Context, lead *domain.Lead, profile *domain.EmotionalProfile) (*domain.AdvisorBrief, error)
}

type Service struct {
	repo      Repository
	diagnoser Diagnoser
	packages  PackageLookup
	enqueuer  BriefEnqueuer
	briefer   Briefer
	newID     func() int64
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

type Deps struct {
	Repo      Repository
	Diagnoser Diagnoser
	Packages  PackageLookup
	Enqueuer  BriefEnqueuer
	Briefer   Briefer
	Node      *snowflake.Node
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func NewService(deps Deps) *Service {
	s := &Service{
		repo:      deps.Repo,
		diagnoser: deps.Diagnoser,
		packages:  deps.Packages,
		enqueuer:  deps.Enqueuer,
		briefer:   deps.Briefer,
		now:       time.Now,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
	}
	if deps.Node != nil {
		s.newID = func() int64 { return deps.Node.Generate().Int64() }
	}
	return s
}

// Capture validates and stores a lead, stamps its emotional profile when
// wizard answers are attached, and schedules the advisor brief. Enqueue
// failures are logged; the lead is already stored.
func (s *Service) Capture(ctx context.Context, in CaptureInput) (*domain.Lead, error) {
	lead, err := s.buildLead(in)
	if err != nil {
		return nil, err
	}

	if err := s.stampProfile(ctx, lead, in); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, lead); err != nil {
		return nil, errors.NewServiceError("failed to store lead", "lead", "capture", err)
	}
	s.metrics.IncLeadCaptured(string(lead.Modality))

	s.logger.Info("Lead captured",
		zap.Int64("id", lead.ID),
		zap.String("modality", string(lead.Modality)),
		zap.String("profile", string(lead.EmotionalProfileID)),
		zap.String("package", lead.PackageSlug),
	)

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueAdvisorBrief(ctx, lead.ID); err != nil {
			s.logger.Warn("Failed to enqueue advisor brief", zap.Int64("id", lead.ID), zap.Error(err))
		}
	}
	return lead, nil
}

func (s *Service) buildLead(in CaptureInput) (*domain.Lead, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameRunes {
		return nil, errors.NewValidationError("name is required", "name", in.Name)
	}

	email := strings.TrimSpace(in.Email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, errors.NewValidationError("invalid email", "email", in.Email)
	}

	phone := strings.TrimSpace(in.Phone)
	if utf8.RuneCountInString(phone) > maxPhoneRunes {
		return nil, errors.NewValidationError("phone is too long", "phone", in.Phone)
	}
	destination := strings.TrimSpace(in.Destination)
	if utf8.RuneCountInString(destination) > maxDestinationRunes {
		return nil, errors.NewValidationError("destination is too long", "destination", in.Destination)
	}

	slug := strings.TrimSpace(in.PackageSlug)
	if slug != "" && s.packages != nil {
		pkg, err := s.packages.BySlug(slug)
		if err != nil {
			return nil, errors.NewValidationError("unknown package", "packageSlug", in.PackageSlug)
		}
		if destination == "" {
			destination = pkg.Destination.ES
		}
	}

	if in.Modality != "" && !in.Modality.IsValid() {
		return nil, errors.NewValidationError("invalid modality", "modality", in.Modality)
	}

	if s.newID == nil {
		return nil, errors.NewServiceError("id generator not configured", "lead", "capture", nil)
	}

	return &domain.Lead{
		ID:          s.newID(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Destination: destination,
		Status:      domain.LeadNew,
		CreatedAt:   s.now().UTC().Truncate(time.Microsecond),
		Modality:    in.Modality,
		PackageSlug: slug,
		Language:    domain.ParseLanguage(in.Language),
	}, nil
}

// stampProfile runs the diagnosis for attached answers. A result that still
// needs a tie-breaker leaves the profile empty.
func (s *Service) stampProfile(ctx context.Context, lead *domain.Lead, in CaptureInput) error {
	respondents := in.Respondents
	if len(respondents) == 0 && len(in.Answers) > 0 {
		respondents = []domain.Respondent{{
			ID:      "r1",
			Role:    domain.RoleLeader,
			Weight:  domain.RoleLeader.DefaultWeight(),
			Answers: in.Answers,
		}}
	}
	if len(respondents) == 0 {
		return nil
	}
	lead.EmotionalAnswers = respondents[0].Answers

	if lead.Modality == "" || s.diagnoser == nil {
		return nil
	}

	result, err := s.diagnoser.Diagnose(ctx, diagnosis.Request{
		Modality:    lead.Modality,
		Respondents: respondents,
		AgeBands:    in.AgeBands,
	})
	if err != nil {
		return err
	}
	if result.Diagnosis != nil {
		lead.EmotionalProfileID = result.Diagnosis.ProfileID
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Lead, error) {
	return s.repo.Get(ctx, id)
}

// List returns leads newest first. limit is clamped to [1, 200] with 50 as
// the default.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*domain.Lead, error) {
	filter := ListFilter{Status: domain.LeadStatus(strings.TrimSpace(status)), Limit: limit, Offset: offset}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.NewValidationError("invalid status", "status", status)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status", "status", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info("Lead status updated", zap.Int64("id", id), zap.String("status", string(status)))
	return s.repo.Get(ctx, id)
}

// GenerateBrief writes the advisor brief of a stored lead. It is the body of
// the background task.
func (s *Service) GenerateBrief(ctx context.Context, id int64) (*domain.AdvisorBrief, error) {
	if s.briefer == nil || !s.briefer.Enabled() {
		return nil, errors.NewServiceError("advisor briefs disabled", "lead", "brief", ErrBriefsDisabled)
	}

	lead, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var profile *domain.EmotionalProfile
	if lead.EmotionalProfileID != "" {
		if p, ok := scoring.Profile(lead.EmotionalProfileID); ok {
			profile = p
		}
	}

	brief, err := s.briefer.Brief(ctx, lead, profile)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetAdvisorBrief(ctx, id, brief); err != nil {
		return nil, err
	}
	return brief, nil
}
