package domain

import "strings"

// Sentiment is the overall tone bucket on a very_negative..very_positive scale
type Sentiment string

// sentiment values, closed set
const (
	SentimentVeryPositive Sentiment = "very_positive"
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentNegative     Sentiment = "negative"
	SentimentVeryNegative Sentiment = "very_negative"
)

// ParseSentiment normalizes a free-form label into the closed sentiment set.
// Unknown labels map to neutral with ok=false so callers can log the miss.
func ParseSentiment(s string) (sentiment Sentiment, ok bool) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentVeryPositive:
		return SentimentVeryPositive, true
	case SentimentPositive:
		return SentimentPositive, true
	case SentimentNeutral:
		return SentimentNeutral, true
	case SentimentNegative:
		return SentimentNegative, true
	case SentimentVeryNegative:
		return SentimentVeryNegative, true
	}
	return SentimentNeutral, false
}

// EmotionLevel is the intensity of a single emotion
type EmotionLevel string

// emotion intensity levels, closed set
const (
	EmotionHigh   EmotionLevel = "high"
	EmotionMedium EmotionLevel = "medium"
	EmotionLow    EmotionLevel = "low"
	EmotionNone   EmotionLevel = "none"
)

// EmotionNames is the fixed NRC-style emotion vocabulary
var EmotionNames = []string{"anger", "anticipation", "disgust", "fear", "joy", "sadness", "surprise", "trust"}

// ValidEmotion reports whether name belongs to the fixed emotion vocabulary
func ValidEmotion(name string) bool {
	for _, n := range EmotionNames {
		if n == name {
			return true
		}
	}
	return false
}

// ParseEmotionLevel normalizes a free-form level into the closed set,
// defaulting to none for unknown labels
func ParseEmotionLevel(s string) EmotionLevel {
	switch EmotionLevel(strings.ToLower(strings.TrimSpace(s))) {
	case EmotionHigh:
		return EmotionHigh
	case EmotionMedium:
		return EmotionMedium
	case EmotionLow:
		return EmotionLow
	}
	return EmotionNone
}
