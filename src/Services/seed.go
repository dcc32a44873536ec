package Services

import (
	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

// seedAccounts are the accounts provisioned on a fresh store. The
// passwords are hashed at seed time.
var seedAccounts = []struct {
	id       string
	username string
	password string
	email    string
	role     Entities.Role
}{
	{"1", "admin", "admin123", "admin@university.edu", Entities.RoleAdmin},
	{"2", "user", "user123", "user@university.edu", Entities.RoleUser},
}

// SeedStore loads the Canvas discussion export and the default
// accounts into the store.
func SeedStore(store *Store) error {
	for _, seed := range seedAccounts {
		account := Entities.LoginAccount{
			Id:        seed.id,
			Username:  seed.username,
			Email:     seed.email,
			Role:      seed.role,
			CreatedAt: "2024-01-15T08:00:00Z",
		}
		if err := account.HashPassword(seed.password); err != nil {
			return err
		}
		notification := Entities.EmailNotification{
			Id:             "notif-" + seed.id,
			LoginAccountId: seed.id,
			Email:          seed.email,
			Enabled:        true,
			CreatedAt:      "2024-01-15T08:00:00Z",
		}
		if err := store.CreateAccount(account, notification); err != nil {
			return err
		}
	}

	store.SetItems(seedDiscussionItems())
	return nil
}

func NewSeededStore() (*Store, error) {
	store := NewStore()
	if err := SeedStore(store); err != nil {
		return nil, err
	}
	return store, nil
}

// seedDiscussionItems mirrors the Canvas export shape: topics at the
// root, posts under topics, replies under posts. ReplyCount is the
// counter recorded by Canvas at export time and may exceed the number
// of child rows included in the extract.
func seedDiscussionItems() []Entities.DiscussionItem {
	return []Entities.DiscussionItem{
		{
			Id:             "1",
			Title:          "Machine learning fundamentals discussion",
			Content:        "Please share your understanding of the basic machine learning concepts, especially the difference between supervised and unsupervised learning.",
			Author:         "Prof. Zhang",
			AuthorEmail:    "zhang.prof@university.edu",
			CreatedAt:      "2024-09-20T10:30:00Z",
			UpdatedAt:      "2024-09-20T10:30:00Z",
			Priority:       Entities.PriorityHigh,
			Type:           Entities.TypeLecture,
			Sentiment:      Entities.SentimentEpistemicCuriosity,
			Level:          Entities.LevelTopic,
			Link:           "https://canvas.university.edu/courses/123/discussion_topics/1",
			ReplyCount:     15,
			SuggestedReply: "Good question, try approaching the distinction from the angle of data labeling.",
		},
		{
			Id:          "2",
			Title:       "Understanding supervised learning",
			Content:     "I think supervised learning means we have a labeled dataset and can train a model to predict new data.",
			Author:      "Li (student)",
			AuthorEmail: "li.student@university.edu",
			CreatedAt:   "2024-09-20T11:15:00Z",
			UpdatedAt:   "2024-09-20T11:15:00Z",
			Priority:    Entities.PriorityMedium,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentProductiveStruggle,
			Level:       Entities.LevelPost,
			ParentId:    "1",
			ParentTitle: "Machine learning fundamentals discussion",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/1#entry-2",
			ReplyCount:  2,
		},
		{
			Id:          "3",
			Title:       "Data structures assignment discussion",
			Content:     "Is anyone stuck on the binary tree traversal assignment? We can work through it together here.",
			Author:      "Wang (TA)",
			AuthorEmail: "wang.ta@university.edu",
			CreatedAt:   "2024-09-19T14:20:00Z",
			UpdatedAt:   "2024-09-19T14:20:00Z",
			Priority:    Entities.PriorityHigh,
			Type:        Entities.TypeAssignment,
			Sentiment:   Entities.SentimentConfusion,
			Level:       Entities.LevelTopic,
			Link:        "https://canvas.university.edu/courses/124/discussion_topics/3",
			ReplyCount:  8,
			SuggestedReply: "Suggest approaching tree traversal from the recursive definition first.",
		},
		{
			Id:             "4",
			Title:          "Preorder traversal implementation",
			Content:        "I ran into trouble implementing preorder traversal, the recursive part does not click for me.",
			Author:         "Chen (student)",
			AuthorEmail:    "chen.student@university.edu",
			CreatedAt:      "2024-09-19T15:10:00Z",
			UpdatedAt:      "2024-09-19T15:10:00Z",
			Priority:       Entities.PriorityMedium,
			Type:           Entities.TypeAssignment,
			Sentiment:      Entities.SentimentTechnostress,
			Level:          Entities.LevelPost,
			ParentId:       "3",
			ParentTitle:    "Data structures assignment discussion",
			Link:           "https://canvas.university.edu/courses/124/discussion_topics/3#entry-4",
			ReplyCount:     2,
			SuggestedReply: "Drawing the call tree helps: visit the root, then recurse left, then right.",
		},
		{
			Id:          "5",
			Title:       "Python workshop feedback",
			Content:     "Today's Python workshop covered a lot, especially the data analysis part.",
			Author:      "Liu (student)",
			AuthorEmail: "liu.student@university.edu",
			CreatedAt:   "2024-09-18T16:45:00Z",
			UpdatedAt:   "2024-09-18T16:45:00Z",
			Priority:    Entities.PriorityLow,
			Type:        Entities.TypeWorkshop,
			Sentiment:   Entities.SentimentBoredom,
			Level:       Entities.LevelTopic,
			Link:        "https://canvas.university.edu/courses/125/discussion_topics/5",
			ReplyCount:  12,
		},
		{
			Id:          "6",
			Title:       "On using the pandas library",
			Content:     "The pandas library from the workshop is powerful, but the syntax is overwhelming at first.",
			Author:      "Wu (student)",
			AuthorEmail: "wu.student@university.edu",
			CreatedAt:   "2024-09-18T17:30:00Z",
			UpdatedAt:   "2024-09-18T17:30:00Z",
			Priority:    Entities.PriorityMedium,
			Type:        Entities.TypeWorkshop,
			Sentiment:   Entities.SentimentTechnostress,
			Level:       Entities.LevelPost,
			ParentId:    "5",
			ParentTitle: "Python workshop feedback",
			Link:        "https://canvas.university.edu/courses/125/discussion_topics/5#entry-6",
			ReplyCount:  1,
		},
		{
			Id:          "7",
			Title:       "Algorithm complexity analysis",
			Content:     "How can we build a better intuition for time complexity and space complexity?",
			Author:      "Zhao (student)",
			AuthorEmail: "zhao.student@university.edu",
			CreatedAt:   "2024-09-17T09:15:00Z",
			UpdatedAt:   "2024-09-17T09:15:00Z",
			Priority:    Entities.PriorityHigh,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentProductiveStruggle,
			Level:       Entities.LevelTopic,
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/7",
			ReplyCount:  6,
		},
		{
			Id:          "8",
			Title:       "Lost on the gradient descent notation",
			Content:     "The lecture notes lost me halfway through, the exam is in two weeks and I cannot follow any of the derivations.",
			Author:      "Zhou (student)",
			AuthorEmail: "zhou.student@university.edu",
			CreatedAt:   "2024-09-20T13:05:00Z",
			UpdatedAt:   "2024-09-20T13:05:00Z",
			Priority:    Entities.PriorityHigh,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentAcademicDesperation,
			Level:       Entities.LevelPost,
			ParentId:    "1",
			ParentTitle: "Machine learning fundamentals discussion",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/1#entry-8",
			ReplyCount:  1,
			SuggestedReply: "Office hours on Thursday walk through the derivation step by step, please come by.",
		},
		{
			Id:          "9",
			Title:       "Re: Understanding supervised learning",
			Content:     "Thanks, thinking about it through labeling finally made it click for me.",
			Author:      "Sun (student)",
			AuthorEmail: "sun.student@university.edu",
			CreatedAt:   "2024-09-20T12:02:00Z",
			UpdatedAt:   "2024-09-20T12:02:00Z",
			Priority:    Entities.PriorityLow,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentEpistemicCuriosity,
			Level:       Entities.LevelReply,
			ParentId:    "2",
			ParentTitle: "Understanding supervised learning",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/1#entry-9",
			ReplyCount:  0,
		},
		{
			Id:          "10",
			Title:       "Re: Understanding supervised learning",
			Content:     "I still do not see how clustering decides the groups without labels.",
			Author:      "Qian (student)",
			AuthorEmail: "qian.student@university.edu",
			CreatedAt:   "2024-09-20T12:40:00Z",
			UpdatedAt:   "2024-09-20T12:40:00Z",
			Priority:    Entities.PriorityMedium,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentConfusion,
			Level:       Entities.LevelReply,
			ParentId:    "2",
			ParentTitle: "Understanding supervised learning",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/1#entry-10",
			ReplyCount:  0,
		},
		{
			Id:          "11",
			Title:       "Re: Lost on the gradient descent notation",
			Content:     "Same here, the chain rule steps go by too fast in the recording.",
			Author:      "Feng (student)",
			AuthorEmail: "feng.student@university.edu",
			CreatedAt:   "2024-09-20T14:11:00Z",
			UpdatedAt:   "2024-09-20T14:11:00Z",
			Priority:    Entities.PriorityMedium,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentAcademicDesperation,
			Level:       Entities.LevelReply,
			ParentId:    "8",
			ParentTitle: "Lost on the gradient descent notation",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/1#entry-11",
			ReplyCount:  0,
		},
		{
			Id:          "12",
			Title:       "Re: Preorder traversal implementation",
			Content:     "The autograder rejected my solution three times with no useful message. This setup is a waste of everyone's time.",
			Author:      "Han (student)",
			AuthorEmail: "han.student@university.edu",
			CreatedAt:   "2024-09-19T16:30:00Z",
			UpdatedAt:   "2024-09-19T16:30:00Z",
			Priority:    Entities.PriorityHigh,
			Type:        Entities.TypeAssignment,
			Sentiment:   Entities.SentimentHostility,
			Level:       Entities.LevelReply,
			ParentId:    "4",
			ParentTitle: "Preorder traversal implementation",
			Link:        "https://canvas.university.edu/courses/124/discussion_topics/3#entry-12",
			ReplyCount:  0,
			SuggestedReply: "Sorry about the friction, the grader output was fixed this morning. Please resubmit.",
		},
		{
			Id:          "13",
			Title:       "Re: On using the pandas library",
			Content:     "Working through the exercises a second time helped, the indexing rules start to make sense.",
			Author:      "Yang (student)",
			AuthorEmail: "yang.student@university.edu",
			CreatedAt:   "2024-09-18T18:20:00Z",
			UpdatedAt:   "2024-09-18T18:20:00Z",
			Priority:    Entities.PriorityLow,
			Type:        Entities.TypeWorkshop,
			Sentiment:   Entities.SentimentProductiveStruggle,
			Level:       Entities.LevelReply,
			ParentId:    "6",
			ParentTitle: "On using the pandas library",
			Link:        "https://canvas.university.edu/courses/125/discussion_topics/5#entry-13",
			ReplyCount:  0,
		},
		{
			Id:          "14",
			Title:       "Why constant factors are dropped",
			Content:     "We covered big-O three times already across courses, is there anything new this week?",
			Author:      "Gao (student)",
			AuthorEmail: "gao.student@university.edu",
			CreatedAt:   "2024-09-17T10:45:00Z",
			UpdatedAt:   "2024-09-17T10:45:00Z",
			Priority:    Entities.PriorityLow,
			Type:        Entities.TypeLecture,
			Sentiment:   Entities.SentimentBoredom,
			Level:       Entities.LevelPost,
			ParentId:    "7",
			ParentTitle: "Algorithm complexity analysis",
			Link:        "https://canvas.university.edu/courses/123/discussion_topics/7#entry-14",
			ReplyCount:  0,
		},
	}
}
