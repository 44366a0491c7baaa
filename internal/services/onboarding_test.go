package services

import (
	"errors"
	"testing"
	"time"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

func TestOnboardingEmptyNameRejected(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("   ")
	done, err := workflow.Advance(now)
	if done {
		t.Fatal("empty name must not complete onboarding")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if workflow.Step() != StepName {
		t.Fatalf("failed advance moved the step to %d", workflow.Step())
	}
}

func TestOnboardingFullFlowByWeek(t *testing.T) {
	store := NewProfileStore()
	workflow := NewOnboardingWorkflow(store)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Asha")
	if done, err := workflow.Advance(now); done || err != nil {
		t.Fatalf("name step: done=%v err=%v", done, err)
	}

	workflow.SetTimelineByWeek("20")
	if done, err := workflow.Advance(now); done || err != nil {
		t.Fatalf("timeline step: done=%v err=%v", done, err)
	}

	if err := workflow.SetLanguage(models.LanguageHindi); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if done, err := workflow.Advance(now); done || err != nil {
		t.Fatalf("language step: done=%v err=%v", done, err)
	}

	if err := workflow.ToggleGoal(models.GoalStressReduction); err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	done, err := workflow.Advance(now)
	if err != nil {
		t.Fatalf("goals step: %v", err)
	}
	if !done {
		t.Fatal("advancing past the goals step must complete onboarding")
	}

	if !store.IsOnboarded() {
		t.Fatal("commit must mark the profile onboarded")
	}

	profile := store.Profile()
	if profile.Name != "Asha" {
		t.Fatalf("profile name = %q, want Asha", profile.Name)
	}
	if profile.CurrentWeek != 20 {
		t.Fatalf("profile week = %d, want 20", profile.CurrentWeek)
	}
	if profile.DueDate == nil {
		t.Fatal("commit must set the due date")
	}
	wantDueDate := now.AddDate(0, 0, 140)
	if !profile.DueDate.Equal(wantDueDate) {
		t.Fatalf("due date = %s, want %s", profile.DueDate.Format("2006-01-02"), wantDueDate.Format("2006-01-02"))
	}
	if profile.Language != models.LanguageHindi {
		t.Fatalf("profile language = %q, want %q", profile.Language, models.LanguageHindi)
	}
	if len(profile.Goals) != 1 || profile.Goals[0] != models.GoalStressReduction {
		t.Fatalf("profile goals = %v", profile.Goals)
	}
	if !profile.IsTrialActive || profile.TrialDaysLeft != models.DefaultTrialDays || profile.IsSubscribed {
		t.Fatalf("trial defaults wrong: %+v", profile)
	}

	if workflow.Step() != StepName {
		t.Fatal("draft must reset after a successful commit")
	}
}

func TestOnboardingFullFlowByDueDate(t *testing.T) {
	store := NewProfileStore()
	workflow := NewOnboardingWorkflow(store)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Meera")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}

	dueDate := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	workflow.SetTimelineByDueDate(dueDate)
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("timeline step: %v", err)
	}
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("language step: %v", err)
	}
	if err := workflow.ToggleGoal(models.GoalNormalDelivery); err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	done, err := workflow.Advance(now)
	if !done || err != nil {
		t.Fatalf("goals step: done=%v err=%v", done, err)
	}

	profile := store.Profile()
	if profile.DueDate == nil || !profile.DueDate.Equal(dueDate) {
		t.Fatalf("due date = %v, want %s", profile.DueDate, dueDate.Format("2006-01-02"))
	}
	wantWeek := WeekFromDueDate(dueDate, now)
	if profile.CurrentWeek != wantWeek {
		t.Fatalf("profile week = %d, want %d", profile.CurrentWeek, wantWeek)
	}
	if profile.Language != models.LanguageEnglish {
		t.Fatalf("default language = %q, want %q", profile.Language, models.LanguageEnglish)
	}
}

func TestOnboardingWeekTextValidation(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	for _, weekText := range []string{"abc", "0", "41", ""} {
		workflow := NewOnboardingWorkflow(NewProfileStore())
		workflow.SetName("Asha")
		if _, err := workflow.Advance(now); err != nil {
			t.Fatalf("name step: %v", err)
		}

		workflow.SetTimelineByWeek(weekText)
		done, err := workflow.Advance(now)
		if done || !errors.Is(err, ErrWeekOutOfRange) {
			t.Errorf("week %q: done=%v err=%v, want ErrWeekOutOfRange", weekText, done, err)
		}
		if workflow.Step() != StepTimeline {
			t.Errorf("week %q: failed advance moved step to %d", weekText, workflow.Step())
		}
	}
}

func TestOnboardingPastDueDateRejected(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Asha")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}

	workflow.SetTimelineByDueDate(now.AddDate(0, 0, -1))
	if _, err := workflow.Advance(now); !errors.Is(err, ErrDueDateInPast) {
		t.Fatalf("expected ErrDueDateInPast, got %v", err)
	}

	// a due date later today is not "in the past"
	workflow.SetTimelineByDueDate(now.Add(2 * time.Hour))
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("same-day due date rejected: %v", err)
	}
}

func TestOnboardingMissingDueDateRejected(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Asha")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}
	if _, err := workflow.Advance(now); !errors.Is(err, ErrDueDateRequired) {
		t.Fatalf("expected ErrDueDateRequired, got %v", err)
	}
}

func TestOnboardingToggleGoalTwiceRestoresSelection(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())

	if err := workflow.ToggleGoal(models.GoalWeightManagement); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := workflow.ToggleGoal(models.GoalStressReduction); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if err := workflow.ToggleGoal(models.GoalWeightManagement); err != nil {
		t.Fatalf("third toggle: %v", err)
	}

	draft := workflow.Draft()
	if len(draft.SelectedGoals) != 1 || draft.SelectedGoals[0] != models.GoalStressReduction {
		t.Fatalf("selected goals = %v, want only stress reduction", draft.SelectedGoals)
	}

	if err := workflow.ToggleGoal(models.Goal("Win The Lottery")); !errors.Is(err, ErrGoalUnknown) {
		t.Fatalf("expected ErrGoalUnknown, got %v", err)
	}
}

func TestOnboardingRetreatKeepsCollectedInput(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	if err := workflow.Retreat(); !errors.Is(err, ErrAtFirstStep) {
		t.Fatalf("expected ErrAtFirstStep, got %v", err)
	}

	workflow.SetName("Asha")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}
	if err := workflow.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}

	draft := workflow.Draft()
	if draft.Step != StepName {
		t.Fatalf("step after retreat = %d, want %d", draft.Step, StepName)
	}
	if draft.Name != "Asha" {
		t.Fatalf("retreat dropped the collected name, got %q", draft.Name)
	}
}

func TestOnboardingFarFutureDueDateClampsWeek(t *testing.T) {
	store := NewProfileStore()
	workflow := NewOnboardingWorkflow(store)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Asha")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}
	workflow.SetTimelineByDueDate(now.AddDate(2, 0, 0))
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("timeline step: %v", err)
	}
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("language step: %v", err)
	}
	if err := workflow.ToggleGoal(models.GoalIncreaseHemoglobin); err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	if done, err := workflow.Advance(now); !done || err != nil {
		t.Fatalf("goals step: done=%v err=%v", done, err)
	}

	if week := store.Profile().CurrentWeek; week != models.MinPregnancyWeek {
		t.Fatalf("far-future due date stored week %d, want %d", week, models.MinPregnancyWeek)
	}
}

func TestOnboardingResetDiscardsDraft(t *testing.T) {
	workflow := NewOnboardingWorkflow(NewProfileStore())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	workflow.SetName("Asha")
	if _, err := workflow.Advance(now); err != nil {
		t.Fatalf("name step: %v", err)
	}
	workflow.Reset()

	draft := workflow.Draft()
	if draft.Step != StepName || draft.Name != "" {
		t.Fatalf("reset left draft %+v", draft)
	}
	if draft.InputMethod != TimelineByDueDate {
		t.Fatalf("reset input method = %q, want %q", draft.InputMethod, TimelineByDueDate)
	}
}
