package api

type onboardingNameInput struct {
	Name string `json:"name" form:"name"`
}

type onboardingTimelineInput struct {
	Method  string `json:"method" form:"method"`
	Week    string `json:"week" form:"week"`
	DueDate string `json:"due_date" form:"due_date"`
}

type onboardingLanguageInput struct {
	Language string `json:"language" form:"language"`
}

type onboardingGoalInput struct {
	Goal string `json:"goal" form:"goal"`
}

type languageSettingsInput struct {
	Language string `json:"language" form:"language"`
}

type trackingWriteInput struct {
	Value string `json:"value" form:"value"`
}

type chatInput struct {
	Message string `json:"message" form:"message"`
}
