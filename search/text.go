package search

import "strings"

// Filler words that describe the medium rather than a topic. A topic
// phrase consisting only of these contributes nothing to scoring.
var stopWords = map[string]bool{
	"message": true, "messages": true, "sermon": true, "sermons": true,
	"preaching": true, "preached": true, "series": true, "audio": true,
	"mp3": true, "living": true, "walking": true,
}

// splitTopics breaks a topic phrase into individual lowercase topics.
// The phrase is split on commas and the literal word "and"; entries are
// trimmed, and stop words and empties are dropped.
func splitTopics(phrase string) []string {
	phrase = strings.ToLower(phrase)
	phrase = strings.ReplaceAll(phrase, " and ", ",")

	parts := strings.Split(phrase, ",")
	topics := make([]string, 0, len(parts))
	for _, part := range parts {
		topic := strings.TrimSpace(part)
		if topic == "" || stopWords[topic] {
			continue
		}
		topics = append(topics, topic)
	}
	return topics
}
