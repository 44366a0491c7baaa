package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/models"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

// OnboardingState reports the wizard position and everything collected so
// far, so a client can rebuild the screen after a reload.
func (handler *Handler) OnboardingState(c *fiber.Ctx) error {
	draft := handler.onboarding.Draft()

	selectedDate := ""
	if !draft.SelectedDate.IsZero() {
		selectedDate = draft.SelectedDate.Format("2006-01-02")
	}

	return c.JSON(fiber.Map{
		"step":           draft.Step,
		"name":           draft.Name,
		"input_method":   draft.InputMethod,
		"week":           draft.PregnancyWeekText,
		"due_date":       selectedDate,
		"language":       draft.Language,
		"selected_goals": draft.SelectedGoals,
		"languages":      models.SupportedLanguages(),
		"goals":          models.SupportedGoals(),
	})
}

func (handler *Handler) OnboardingName(c *fiber.Ctx) error {
	if ok, err := handler.requireStep(c, services.StepName); !ok {
		return err
	}

	input := onboardingNameInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid onboarding input")
	}

	handler.onboarding.SetName(input.Name)
	return handler.advanceOnboarding(c)
}

func (handler *Handler) OnboardingTimeline(c *fiber.Ctx) error {
	if ok, err := handler.requireStep(c, services.StepTimeline); !ok {
		return err
	}

	input := onboardingTimelineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid onboarding input")
	}

	switch services.TimelineInputMethod(input.Method) {
	case services.TimelineByWeek:
		handler.onboarding.SetTimelineByWeek(input.Week)
	case services.TimelineByDueDate:
		date, err := time.ParseInLocation("2006-01-02", input.DueDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid due date")
		}
		handler.onboarding.SetTimelineByDueDate(date)
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown timeline input method")
	}

	return handler.advanceOnboarding(c)
}

func (handler *Handler) OnboardingLanguage(c *fiber.Ctx) error {
	if ok, err := handler.requireStep(c, services.StepLanguage); !ok {
		return err
	}

	input := onboardingLanguageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid onboarding input")
	}

	if err := handler.onboarding.SetLanguage(models.Language(input.Language)); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return handler.advanceOnboarding(c)
}

func (handler *Handler) OnboardingToggleGoal(c *fiber.Ctx) error {
	if ok, err := handler.requireStep(c, services.StepGoals); !ok {
		return err
	}

	input := onboardingGoalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid onboarding input")
	}

	if err := handler.onboarding.ToggleGoal(models.Goal(input.Goal)); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"ok":             true,
		"selected_goals": handler.onboarding.Draft().SelectedGoals,
	})
}

func (handler *Handler) OnboardingComplete(c *fiber.Ctx) error {
	if ok, err := handler.requireStep(c, services.StepGoals); !ok {
		return err
	}
	return handler.advanceOnboarding(c)
}

func (handler *Handler) OnboardingBack(c *fiber.Ctx) error {
	if err := handler.onboarding.Retreat(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true, "step": handler.onboarding.Step()})
}

func (handler *Handler) advanceOnboarding(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	completed, err := handler.onboarding.Advance(now)
	if err != nil {
		if errors.Is(err, services.ErrValidationFailed) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to advance onboarding")
	}

	if completed {
		profile := handler.profiles.Profile()
		handler.setLanguageCookie(c, languageCodeFor(profile.Language))
		handler.logger.Info("onboarding completed",
			zap.Int("current_week", profile.CurrentWeek),
			zap.String("language", string(profile.Language)),
		)
		return c.JSON(fiber.Map{
			"ok":       true,
			"redirect": "/dashboard",
			"message":  handler.localizedMessage(c, "onboarding.completed", "You're all set!"),
		})
	}

	return c.JSON(fiber.Map{"ok": true, "step": handler.onboarding.Step()})
}

func (handler *Handler) requireStep(c *fiber.Ctx, step services.OnboardingStep) (bool, error) {
	if handler.onboarding.Step() != step {
		return false, apiError(c, fiber.StatusConflict, "unexpected onboarding step")
	}
	return true, nil
}
