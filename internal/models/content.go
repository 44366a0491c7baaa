package models

type Tip struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

func DefaultDailyTips() []Tip {
	return []Tip{
		{
			Title:    "Boost Your Iron Intake",
			Content:  "Try adding spinach, beans and fortified grains to your diet. Pair with vitamin C-rich foods like orange juice to enhance absorption.",
			Category: "Nutrition",
			Image:    "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
		},
		{
			Title:    "Stay Hydrated",
			Content:  "Aim for 8-10 glasses of water daily to support increased blood volume and amniotic fluid. Add a slice of lemon for flavor!",
			Category: "Health",
		},
		{
			Title:    "Gentle Morning Exercise",
			Content:  "A 10-minute morning stretching routine can help reduce nausea and boost your energy for the day.",
			Category: "Exercise",
			Image:    "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
		},
	}
}

type SymptomGuide struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Severity string   `json:"severity"`
	Advice   []string `json:"advice"`
}

func DefaultSymptomGuides() []SymptomGuide {
	return []SymptomGuide{
		{
			ID:       1,
			Name:     "Morning Sickness",
			Icon:     "🤢",
			Severity: "moderate",
			Advice: []string{
				"Eat small, frequent meals",
				"Avoid strong odors",
				"Try ginger tea or candies",
				"Consult doctor if severe",
			},
		},
		{
			ID:       2,
			Name:     "Backache",
			Icon:     "🔄",
			Severity: "mild",
			Advice: []string{
				"Practice good posture",
				"Use heating pads",
				"Gentle stretching exercises",
				"Avoid heavy lifting",
			},
		},
		{
			ID:       3,
			Name:     "Headache",
			Icon:     "🤕",
			Severity: "mild",
			Advice: []string{
				"Rest in a dark room",
				"Stay hydrated",
				"Practice relaxation techniques",
				"Contact doctor if severe or persistent",
			},
		},
		{
			ID:       4,
			Name:     "Fatigue",
			Icon:     "😴",
			Severity: "moderate",
			Advice: []string{
				"Take short naps when possible",
				"Prioritize sleep",
				"Light exercise for energy",
				"Eat iron-rich foods",
			},
		},
	}
}

// ChatTopic routes a user question to a canned answer by keyword.
type ChatTopic struct {
	Name     string
	Keywords []string
	Response string
}

const ChatGreeting = "Hello! I'm your PregBuddy AI assistant. How can I help you with your pregnancy journey today?"

const ChatDisclaimer = "Disclaimer: I'm an AI assistant, not a medical professional. Always consult with your healthcare provider for medical advice."

func DefaultChatTopics() []ChatTopic {
	return []ChatTopic{
		{
			Name:     "nausea",
			Keywords: []string{"nausea", "sick", "sickness", "vomiting", "queasy"},
			Response: "According to medical guidelines, it's completely normal to experience morning sickness during the first trimester. Try having small, frequent meals and staying hydrated to help manage symptoms. Ginger tea or candies can also provide relief.",
		},
		{
			Name:     "exercise",
			Keywords: []string{"exercise", "workout", "yoga", "walking", "swimming"},
			Response: "Moderate exercise is generally safe and beneficial during pregnancy. Walking, swimming, and prenatal yoga are excellent options. Always consult with your healthcare provider before starting any new exercise routine.",
		},
		{
			Name:     "nutrition",
			Keywords: []string{"eat", "food", "diet", "calories", "nutrition"},
			Response: "It's recommended that pregnant women consume about 300 additional calories per day during the second and third trimesters. Focus on nutrient-dense foods like fruits, vegetables, lean proteins, and whole grains.",
		},
		{
			Name:     "sleep",
			Keywords: []string{"sleep", "rest", "tired", "insomnia", "sleeping"},
			Response: "Getting adequate rest is important during pregnancy. Try sleeping on your left side with a pillow between your knees for better comfort, especially in later stages of pregnancy.",
		},
		{
			Name:     "vitamins",
			Keywords: []string{"folic", "vitamin", "vitamins", "supplement", "iron"},
			Response: "Folic acid is a crucial nutrient during pregnancy, especially in the first trimester. It helps prevent neural tube defects. Good sources include leafy greens, fortified grains, and prenatal vitamins.",
		},
	}
}

// GeneralChatResponses back the fallback pool when no topic matches.
func GeneralChatResponses() []string {
	responses := make([]string, 0, len(DefaultChatTopics()))
	for _, topic := range DefaultChatTopics() {
		responses = append(responses, topic.Response)
	}
	return responses
}
