package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	onboarding := api.Group("/onboarding", handler.NotOnboardedOnly)
	onboarding.Get("", handler.OnboardingState)
	onboarding.Post("/name", handler.OnboardingName)
	onboarding.Post("/timeline", handler.OnboardingTimeline)
	onboarding.Post("/language", handler.OnboardingLanguage)
	onboarding.Post("/goals/toggle", handler.OnboardingToggleGoal)
	onboarding.Post("/complete", handler.OnboardingComplete)
	onboarding.Post("/back", handler.OnboardingBack)

	api.Get("/dashboard", handler.OnboardingRequired, handler.Dashboard)
	api.Post("/tips/next", handler.OnboardingRequired, handler.NextTip)

	tracker := api.Group("/tracker", handler.OnboardingRequired)
	tracker.Get("", handler.GetTracking)
	tracker.Get("/:metric", handler.GetMetric)
	tracker.Post("/:metric", handler.UpdateMetric)

	api.Get("/symptoms", handler.OnboardingRequired, handler.GetSymptomGuide)

	api.Get("/chat", handler.OnboardingRequired, handler.ChatIntro)
	api.Post("/chat", handler.OnboardingRequired, handler.Chat)

	api.Get("/profile", handler.OnboardingRequired, handler.GetProfile)
	api.Post("/settings/language", handler.OnboardingRequired, handler.UpdateLanguageSettings)
	api.Post("/settings/reset", handler.OnboardingRequired, handler.ResetProfile)

	api.Get("/export/json", handler.OnboardingRequired, handler.ExportJSON)
}
