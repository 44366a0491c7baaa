package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pregbuddy/pregbuddy/internal/i18n"
	"github.com/pregbuddy/pregbuddy/internal/models"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	i18nManager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	profiles := services.NewProfileStore()
	handler, err := NewHandler(Dependencies{
		Profiles:   profiles,
		Onboarding: services.NewOnboardingWorkflow(profiles),
		Tracking:   services.NewTrackingStore(),
		Location:   time.UTC,
		I18n:       i18nManager,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

// onboardTestSession commits a finished profile directly into the stores so
// gated routes open up without driving the wizard endpoints.
func onboardTestSession(t *testing.T, handler *Handler) {
	t.Helper()

	name := "Asha"
	week := 20
	dueDate := time.Now().UTC().AddDate(0, 0, 140)
	handler.profiles.Update(services.ProfilePatch{
		Name:        &name,
		CurrentWeek: &week,
		DueDate:     &dueDate,
		Goals:       []models.Goal{models.GoalNormalDelivery},
	})
	handler.profiles.SetOnboarded(true)
}

func jsonRequest(method string, target string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	payload := map[string]any{}
	if err := json.Unmarshal(content, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", content, err)
	}
	return response, payload
}

func readAPIError(t *testing.T, payload map[string]any) string {
	t.Helper()

	errorValue, _ := payload["error"].(string)
	return errorValue
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
