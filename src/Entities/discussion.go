package Entities

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ItemType string

const (
	TypeLecture    ItemType = "lecture"
	TypeWorkshop   ItemType = "workshop"
	TypeAssignment ItemType = "assignment"
)

// Sentiment labels come from the upstream classification pipeline.
type Sentiment string

const (
	SentimentAcademicDesperation Sentiment = "ACADEMIC_DESPERATION"
	SentimentProductiveStruggle  Sentiment = "PRODUCTIVE_STRUGGLE"
	SentimentConfusion           Sentiment = "CONFUSION"
	SentimentTechnostress        Sentiment = "TECHNOSTRESS"
	SentimentBoredom             Sentiment = "BOREDOM"
	SentimentHostility           Sentiment = "HOSTILITY"
	SentimentEpistemicCuriosity  Sentiment = "EPISTEMIC_CURIOSITY"
)

type Level string

const (
	LevelTopic Level = "topic"
	LevelPost  Level = "post"
	LevelReply Level = "reply"
)

// DiscussionItem is one node of the topic -> post -> reply hierarchy
// exported from Canvas. ReplyCount is the counter recorded at export
// time, not the number of child rows that made it into the dataset.
type DiscussionItem struct {
	Id             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorEmail    string    `json:"authorEmail"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
	Priority       Priority  `json:"priority"`
	Type           ItemType  `json:"type"`
	Sentiment      Sentiment `json:"sentiment"`
	Level          Level     `json:"level"`
	ParentId       string    `json:"parentId,omitempty"`
	ParentTitle    string    `json:"parentTitle,omitempty"`
	Link           string    `json:"link"`
	ReplyCount     int       `json:"replyCount"`
	SuggestedReply string    `json:"suggestedReply,omitempty"`
}
