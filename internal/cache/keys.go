package cache

// Key layout: <entity>:<id> for single rows, <entity>:list for collections.
const (
	QuestionListKey = "questions:list"
	TopicListKey    = "topics:list"

	questionKeyPrefix = "questions:"
	topicKeyPrefix    = "topics:"
)

func QuestionKey(id string) string {
	return questionKeyPrefix + id
}

func TopicKey(id string) string {
	return topicKeyPrefix + id
}

// QuestionPattern matches every question cache entry, list included.
func QuestionPattern() string {
	return questionKeyPrefix + "*"
}

func TopicPattern() string {
	return topicKeyPrefix + "*"
}
