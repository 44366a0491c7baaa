package services

import (
	"sync"
	"time"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

// ProfilePatch is a shallow-merge update: nil fields are left untouched.
type ProfilePatch struct {
	Name          *string
	DueDate       *time.Time
	CurrentWeek   *int
	Language      *models.Language
	Goals         []models.Goal
	IsTrialActive *bool
	TrialDaysLeft *int
	IsSubscribed  *bool
}

// ProfileStore owns the single session profile. Handlers run on concurrent
// request goroutines, so every access goes through the lock; reads always see
// a fully merged profile.
type ProfileStore struct {
	mu        sync.RWMutex
	profile   models.UserProfile
	onboarded bool
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profile: models.DefaultUserProfile()}
}

func (store *ProfileStore) Profile() models.UserProfile {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return cloneProfile(store.profile)
}

func (store *ProfileStore) Update(patch ProfilePatch) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if patch.Name != nil {
		store.profile.Name = *patch.Name
	}
	if patch.DueDate != nil {
		dueDate := *patch.DueDate
		store.profile.DueDate = &dueDate
	}
	if patch.CurrentWeek != nil {
		store.profile.CurrentWeek = models.ClampPregnancyWeek(*patch.CurrentWeek)
	}
	if patch.Language != nil {
		store.profile.Language = *patch.Language
	}
	if patch.Goals != nil {
		goals := make([]models.Goal, len(patch.Goals))
		copy(goals, patch.Goals)
		store.profile.Goals = goals
	}
	if patch.IsTrialActive != nil {
		store.profile.IsTrialActive = *patch.IsTrialActive
	}
	if patch.TrialDaysLeft != nil {
		store.profile.TrialDaysLeft = *patch.TrialDaysLeft
	}
	if patch.IsSubscribed != nil {
		store.profile.IsSubscribed = *patch.IsSubscribed
	}
}

func (store *ProfileStore) IsOnboarded() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.onboarded
}

func (store *ProfileStore) SetOnboarded(value bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.onboarded = value
}

// Reset returns the store to its session-start state. Used by the settings
// "start over" action and by tests.
func (store *ProfileStore) Reset() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.profile = models.DefaultUserProfile()
	store.onboarded = false
}

func cloneProfile(profile models.UserProfile) models.UserProfile {
	cloned := profile
	if profile.DueDate != nil {
		dueDate := *profile.DueDate
		cloned.DueDate = &dueDate
	}
	cloned.Goals = make([]models.Goal, len(profile.Goals))
	copy(cloned.Goals, profile.Goals)
	return cloned
}
