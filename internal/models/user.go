package models

import "time"

const (
	MinPregnancyWeek = 1
	MaxPregnancyWeek = 40

	DefaultTrialDays = 14
)

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageTamil   Language = "Tamil"
	LanguageTelugu  Language = "Telugu"
	LanguageBengali Language = "Bengali"
	LanguageMarathi Language = "Marathi"
)

func SupportedLanguages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageHindi,
		LanguageTamil,
		LanguageTelugu,
		LanguageBengali,
		LanguageMarathi,
	}
}

func IsValidLanguage(value Language) bool {
	for _, language := range SupportedLanguages() {
		if language == value {
			return true
		}
	}
	return false
}

type Goal string

const (
	GoalNormalDelivery        Goal = "Normal Delivery"
	GoalWeightManagement      Goal = "Weight Management"
	GoalIncreaseHemoglobin    Goal = "Increase Hemoglobin"
	GoalManageMorningSickness Goal = "Manage Morning Sickness"
	GoalStressReduction       Goal = "Stress Reduction"
)

func SupportedGoals() []Goal {
	return []Goal{
		GoalNormalDelivery,
		GoalWeightManagement,
		GoalIncreaseHemoglobin,
		GoalManageMorningSickness,
		GoalStressReduction,
	}
}

func IsValidGoal(value Goal) bool {
	for _, goal := range SupportedGoals() {
		if goal == value {
			return true
		}
	}
	return false
}

// UserProfile is the canonical per-session profile produced by onboarding
// and read by every other screen.
type UserProfile struct {
	Name          string     `json:"name"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CurrentWeek   int        `json:"current_week"`
	Language      Language   `json:"language"`
	Goals         []Goal     `json:"goals"`
	IsTrialActive bool       `json:"is_trial_active"`
	TrialDaysLeft int        `json:"trial_days_left"`
	IsSubscribed  bool       `json:"is_subscribed"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		Language:      LanguageEnglish,
		Goals:         []Goal{},
		IsTrialActive: true,
		TrialDaysLeft: DefaultTrialDays,
	}
}

func ClampPregnancyWeek(week int) int {
	if week < MinPregnancyWeek {
		return MinPregnancyWeek
	}
	if week > MaxPregnancyWeek {
		return MaxPregnancyWeek
	}
	return week
}
