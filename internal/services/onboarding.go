package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

// ErrValidationFailed marks every recoverable onboarding input error. The
// workflow stays on its current step when Advance returns one of these.
var ErrValidationFailed = errors.New("validation failed")

var (
	ErrNameRequired       = fmt.Errorf("%w: name is required", ErrValidationFailed)
	ErrWeekOutOfRange     = fmt.Errorf("%w: pregnancy week must be between 1 and 40", ErrValidationFailed)
	ErrDueDateRequired    = fmt.Errorf("%w: due date is required", ErrValidationFailed)
	ErrDueDateInPast      = fmt.Errorf("%w: due date cannot be earlier than today", ErrValidationFailed)
	ErrLanguageUnsupported = fmt.Errorf("%w: unsupported language", ErrValidationFailed)
	ErrGoalsRequired      = fmt.Errorf("%w: select at least one goal", ErrValidationFailed)
	ErrGoalUnknown        = fmt.Errorf("%w: unknown goal", ErrValidationFailed)

	ErrAtFirstStep = errors.New("already at first step")
)

type OnboardingStep int

const (
	StepName OnboardingStep = iota
	StepTimeline
	StepLanguage
	StepGoals
)

type TimelineInputMethod string

const (
	TimelineByWeek    TimelineInputMethod = "by-week"
	TimelineByDueDate TimelineInputMethod = "by-due-date"
)

// OnboardingDraft collects wizard input until commit. Nothing here touches
// the profile store before the final step succeeds; abandoning the draft has
// no side effect.
type OnboardingDraft struct {
	Step              OnboardingStep
	Name              string
	InputMethod       TimelineInputMethod
	PregnancyWeekText string
	SelectedDate      time.Time
	Language          models.Language
	SelectedGoals     []models.Goal
}

func newOnboardingDraft() OnboardingDraft {
	return OnboardingDraft{
		InputMethod:   TimelineByDueDate,
		Language:      models.LanguageEnglish,
		SelectedGoals: []models.Goal{},
	}
}

// OnboardingProfileSink is the slice of the profile store the workflow needs
// to commit a finished draft.
type OnboardingProfileSink interface {
	Update(patch ProfilePatch)
	SetOnboarded(value bool)
}

// OnboardingWorkflow is the four-step wizard state machine. Transitions are
// linear: Advance moves forward only while the current step's predicate
// holds, Retreat moves back without clearing collected input, and advancing
// past the goals step commits the draft atomically into the profile store.
type OnboardingWorkflow struct {
	mu       sync.Mutex
	profiles OnboardingProfileSink
	draft    OnboardingDraft
}

func NewOnboardingWorkflow(profiles OnboardingProfileSink) *OnboardingWorkflow {
	return &OnboardingWorkflow{
		profiles: profiles,
		draft:    newOnboardingDraft(),
	}
}

func (workflow *OnboardingWorkflow) Draft() OnboardingDraft {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	return cloneDraft(workflow.draft)
}

func (workflow *OnboardingWorkflow) Step() OnboardingStep {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	return workflow.draft.Step
}

func (workflow *OnboardingWorkflow) SetName(raw string) {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	workflow.draft.Name = raw
}

func (workflow *OnboardingWorkflow) SetTimelineByWeek(weekText string) {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	workflow.draft.InputMethod = TimelineByWeek
	workflow.draft.PregnancyWeekText = weekText
}

func (workflow *OnboardingWorkflow) SetTimelineByDueDate(date time.Time) {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	workflow.draft.InputMethod = TimelineByDueDate
	workflow.draft.SelectedDate = date
}

func (workflow *OnboardingWorkflow) SetLanguage(language models.Language) error {
	if !models.IsValidLanguage(language) {
		return ErrLanguageUnsupported
	}
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	workflow.draft.Language = language
	return nil
}

// ToggleGoal adds the goal when absent and removes it when present. Toggling
// the same goal twice restores the original selection.
func (workflow *OnboardingWorkflow) ToggleGoal(goal models.Goal) error {
	if !models.IsValidGoal(goal) {
		return ErrGoalUnknown
	}

	workflow.mu.Lock()
	defer workflow.mu.Unlock()

	for index, selected := range workflow.draft.SelectedGoals {
		if selected == goal {
			workflow.draft.SelectedGoals = append(
				workflow.draft.SelectedGoals[:index],
				workflow.draft.SelectedGoals[index+1:]...,
			)
			return nil
		}
	}
	workflow.draft.SelectedGoals = append(workflow.draft.SelectedGoals, goal)
	return nil
}

// Advance validates the current step and moves forward. From the goals step
// it commits instead and reports completion; the draft is discarded after a
// successful commit.
func (workflow *OnboardingWorkflow) Advance(now time.Time) (bool, error) {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()

	if err := validateDraftStep(workflow.draft, now); err != nil {
		return false, err
	}

	if workflow.draft.Step < StepGoals {
		workflow.draft.Step++
		return false, nil
	}

	workflow.commit(now)
	return true, nil
}

func (workflow *OnboardingWorkflow) Retreat() error {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()

	if workflow.draft.Step == StepName {
		return ErrAtFirstStep
	}
	workflow.draft.Step--
	return nil
}

// Reset discards the draft, as when the flow is abandoned mid-way.
func (workflow *OnboardingWorkflow) Reset() {
	workflow.mu.Lock()
	defer workflow.mu.Unlock()
	workflow.draft = newOnboardingDraft()
}

func (workflow *OnboardingWorkflow) commit(now time.Time) {
	var dueDate time.Time
	var week int

	switch workflow.draft.InputMethod {
	case TimelineByWeek:
		week, _ = strconv.Atoi(strings.TrimSpace(workflow.draft.PregnancyWeekText))
		dueDate = DueDateFromWeek(week, now)
	default:
		dueDate = dateOnly(workflow.draft.SelectedDate)
		week = WeekFromDueDate(dueDate, now)
	}
	week = models.ClampPregnancyWeek(week)

	name := strings.TrimSpace(workflow.draft.Name)
	language := workflow.draft.Language
	goals := make([]models.Goal, len(workflow.draft.SelectedGoals))
	copy(goals, workflow.draft.SelectedGoals)

	trialActive := true
	trialDaysLeft := models.DefaultTrialDays
	subscribed := false

	workflow.profiles.Update(ProfilePatch{
		Name:          &name,
		DueDate:       &dueDate,
		CurrentWeek:   &week,
		Language:      &language,
		Goals:         goals,
		IsTrialActive: &trialActive,
		TrialDaysLeft: &trialDaysLeft,
		IsSubscribed:  &subscribed,
	})
	workflow.profiles.SetOnboarded(true)

	workflow.draft = newOnboardingDraft()
}

func validateDraftStep(draft OnboardingDraft, now time.Time) error {
	switch draft.Step {
	case StepName:
		if strings.TrimSpace(draft.Name) == "" {
			return ErrNameRequired
		}
	case StepTimeline:
		return validateTimelineInput(draft, now)
	case StepLanguage:
		if !models.IsValidLanguage(draft.Language) {
			return ErrLanguageUnsupported
		}
	case StepGoals:
		if len(draft.SelectedGoals) == 0 {
			return ErrGoalsRequired
		}
	}
	return nil
}

func validateTimelineInput(draft OnboardingDraft, now time.Time) error {
	if draft.InputMethod == TimelineByWeek {
		week, err := strconv.Atoi(strings.TrimSpace(draft.PregnancyWeekText))
		if err != nil || week < models.MinPregnancyWeek || week > models.MaxPregnancyWeek {
			return ErrWeekOutOfRange
		}
		return nil
	}

	if draft.SelectedDate.IsZero() {
		return ErrDueDateRequired
	}
	if dateOnly(draft.SelectedDate).Before(dateOnly(now)) {
		return ErrDueDateInPast
	}
	return nil
}

func cloneDraft(draft OnboardingDraft) OnboardingDraft {
	cloned := draft
	cloned.SelectedGoals = make([]models.Goal, len(draft.SelectedGoals))
	copy(cloned.SelectedGoals, draft.SelectedGoals)
	return cloned
}
