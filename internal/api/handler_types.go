package api

import (
	"time"

	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/i18n"
	"github.com/pregbuddy/pregbuddy/internal/models"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

type Handler struct {
	profiles   *services.ProfileStore
	onboarding *services.OnboardingWorkflow
	tracking   *services.TrackingStore
	tips       *services.TipService
	chat       *services.ChatResponder
	milestones []models.Milestone
	symptoms   []models.SymptomGuide
	location   *time.Location
	i18n       *i18n.Manager
	logger     *zap.Logger
}

// Dependencies carries the explicitly owned stores and services the handler
// serves. Every store is created once per process in main and passed down;
// there are no ambient singletons.
type Dependencies struct {
	Profiles   *services.ProfileStore
	Onboarding *services.OnboardingWorkflow
	Tracking   *services.TrackingStore
	Tips       *services.TipService
	Chat       *services.ChatResponder
	Location   *time.Location
	I18n       *i18n.Manager
	Logger     *zap.Logger
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Profiles == nil || deps.Onboarding == nil || deps.Tracking == nil {
		return nil, errMissingStores
	}
	if deps.Tips == nil {
		deps.Tips = services.NewTipService()
	}
	if deps.Chat == nil {
		deps.Chat = services.NewChatResponder()
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Handler{
		profiles:   deps.Profiles,
		onboarding: deps.Onboarding,
		tracking:   deps.Tracking,
		tips:       deps.Tips,
		chat:       deps.Chat,
		milestones: models.DefaultMilestones(),
		symptoms:   models.DefaultSymptomGuides(),
		location:   deps.Location,
		i18n:       deps.I18n,
		logger:     deps.Logger,
	}, nil
}
