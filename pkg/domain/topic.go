package domain

// Topic selects one canned response block of the menu.
type Topic int

const (
	TopicAbout Topic = iota
	TopicSpecialization
	TopicProjects
	TopicContact

	topicCount
)

const NumTopics = int(topicCount)

// MainMenuCallback restores the top-level inline menu. It is not a Topic.
const MainMenuCallback = "main_menu"

var topicCallbacks = [topicCount]string{
	TopicAbout:          "about",
	TopicSpecialization: "specialization",
	TopicProjects:       "projects",
	TopicContact:        "contact",
}

// Topics returns every topic in menu order.
func Topics() []Topic {
	topics := make([]Topic, 0, topicCount)
	for t := Topic(0); t < topicCount; t++ {
		topics = append(topics, t)
	}
	return topics
}

// CallbackData is the identifier carried by inline buttons for the topic.
func (t Topic) CallbackData() string {
	if !t.Valid() {
		return ""
	}
	return topicCallbacks[t]
}

func (t Topic) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return topicCallbacks[t]
}

func (t Topic) Valid() bool {
	return t >= 0 && t < topicCount
}

// ParseTopic maps callback data back to a topic.
func ParseTopic(data string) (Topic, bool) {
	for t, cb := range topicCallbacks {
		if cb == data {
			return Topic(t), true
		}
	}
	return 0, false
}
