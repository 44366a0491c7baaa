package services

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/pregbuddy/pregbuddy/internal/models"
)

const (
	maxKeywordDistance = 2
	minFuzzyTokenLen   = 4
)

// ChatResponder picks a scripted answer for a user question. Known topics are
// matched by keyword, tolerating small typos; anything else gets a response
// from the general pool.
type ChatResponder struct {
	topics    []models.ChatTopic
	fallbacks []string
}

func NewChatResponder() *ChatResponder {
	return &ChatResponder{
		topics:    models.DefaultChatTopics(),
		fallbacks: models.GeneralChatResponses(),
	}
}

// Reply returns the scripted response and the matched topic name, or an
// empty topic name when the question fell through to the general pool.
func (responder *ChatResponder) Reply(question string) (string, string) {
	tokens := tokenizeQuestion(question)

	for _, topic := range responder.topics {
		if matchesTopicExact(tokens, topic) {
			return topic.Response, topic.Name
		}
	}
	for _, topic := range responder.topics {
		if matchesTopicFuzzy(tokens, topic) {
			return topic.Response, topic.Name
		}
	}

	return responder.fallbacks[rand.Intn(len(responder.fallbacks))], ""
}

func matchesTopicExact(tokens []string, topic models.ChatTopic) bool {
	for _, token := range tokens {
		for _, keyword := range topic.Keywords {
			if token == keyword {
				return true
			}
		}
	}
	return false
}

func matchesTopicFuzzy(tokens []string, topic models.ChatTopic) bool {
	for _, token := range tokens {
		if len(token) < minFuzzyTokenLen {
			continue
		}
		for _, keyword := range topic.Keywords {
			if len(keyword) < minFuzzyTokenLen {
				continue
			}
			if levenshtein.ComputeDistance(token, keyword) <= maxKeywordDistance {
				return true
			}
		}
	}
	return false
}

func tokenizeQuestion(question string) []string {
	lowered := strings.ToLower(question)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
