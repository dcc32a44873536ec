package Services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

const (
	SortByCreatedAt  = "createdAt"
	SortByReplyCount = "replyCount"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterOptions are independent field filters composed with AND.
// Priority, Type, Sentiment and Level match exactly; Author and Id are
// case-insensitive substring matches.
type FilterOptions struct {
	Priority  string
	Type      string
	Sentiment string
	Level     string
	Author    string
	Id        string
}

type SortOptions struct {
	Field string
	Order string
}

type ItemQuery struct {
	Search  string
	Filters FilterOptions
	Sort    SortOptions
}

func DefaultQuery() ItemQuery {
	return ItemQuery{Sort: SortOptions{Field: SortByCreatedAt, Order: SortDesc}}
}

// SingleFilterQuery is the chart/card selection contract: picking a
// segment replaces the whole filter set with one equality filter and
// clears the search term.
func SingleFilterQuery(field, value string) (ItemQuery, bool) {
	q := DefaultQuery()
	switch field {
	case "priority":
		q.Filters.Priority = value
	case "type":
		q.Filters.Type = value
	case "sentiment":
		q.Filters.Sentiment = value
	case "level":
		q.Filters.Level = value
	default:
		return ItemQuery{}, false
	}
	return q, true
}

// QueryItems derives the visible row set: free-text search first, then
// the field filters, then a stable sort so equal keys keep their
// original relative order.
func QueryItems(items []Entities.DiscussionItem, q ItemQuery) []Entities.DiscussionItem {
	result := make([]Entities.DiscussionItem, 0, len(items))

	term := strings.ToLower(q.Search)
	for _, item := range items {
		if term != "" && !matchesSearch(item, term) {
			continue
		}
		if !matchesFilters(item, q.Filters) {
			continue
		}
		result = append(result, item)
	}

	sortItems(result, q.Sort)
	return result
}

func matchesSearch(item Entities.DiscussionItem, term string) bool {
	return strings.Contains(strings.ToLower(item.Id), term) ||
		strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Content), term) ||
		strings.Contains(strings.ToLower(item.Author), term)
}

func matchesFilters(item Entities.DiscussionItem, f FilterOptions) bool {
	if f.Priority != "" && string(item.Priority) != f.Priority {
		return false
	}
	if f.Type != "" && string(item.Type) != f.Type {
		return false
	}
	if f.Sentiment != "" && string(item.Sentiment) != f.Sentiment {
		return false
	}
	if f.Level != "" && string(item.Level) != f.Level {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(item.Author), strings.ToLower(f.Author)) {
		return false
	}
	if f.Id != "" && !strings.Contains(strings.ToLower(item.Id), strings.ToLower(f.Id)) {
		return false
	}
	return true
}

func sortItems(items []Entities.DiscussionItem, s SortOptions) {
	field := s.Field
	if field == "" {
		field = SortByCreatedAt
	}
	desc := s.Order != SortAsc

	sort.SliceStable(items, func(i, j int) bool {
		var a, b int64
		if field == SortByReplyCount {
			a, b = int64(items[i].ReplyCount), int64(items[j].ReplyCount)
		} else {
			a, b = parseEpochMs(items[i].CreatedAt), parseEpochMs(items[j].CreatedAt)
		}
		if desc {
			return a > b
		}
		return a < b
	})
}

// parseEpochMs parses an ISO-8601 timestamp to epoch milliseconds.
// Unparseable values sort as zero.
func parseEpochMs(iso string) int64 {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// Topics is the top drill-down level: every topic-level item.
func Topics(store *Store) []Entities.DiscussionItem {
	topics := make([]Entities.DiscussionItem, 0)
	for _, item := range store.ListItems() {
		if item.Level == Entities.LevelTopic {
			topics = append(topics, item)
		}
	}
	return topics
}

// PostsOfTopic is the middle drill-down level: the direct post
// children of one topic.
func PostsOfTopic(store *Store, topicId string) ([]Entities.DiscussionItem, error) {
	topic, ok := store.GetItem(topicId)
	if !ok || topic.Level != Entities.LevelTopic {
		return nil, ErrItemNotFound
	}

	posts := make([]Entities.DiscussionItem, 0)
	for _, item := range store.ChildrenOf(topicId) {
		if item.Level == Entities.LevelPost {
			posts = append(posts, item)
		}
	}
	return posts, nil
}

// RepliesOfPost is the leaf drill-down level: the direct reply
// children of one post under the given topic. There is no further
// level below it.
func RepliesOfPost(store *Store, topicId, postId string) ([]Entities.DiscussionItem, error) {
	post, ok := store.GetItem(postId)
	if !ok || post.Level != Entities.LevelPost || post.ParentId != topicId {
		return nil, ErrItemNotFound
	}

	replies := make([]Entities.DiscussionItem, 0)
	for _, item := range store.ChildrenOf(postId) {
		if item.Level == Entities.LevelReply {
			replies = append(replies, item)
		}
	}
	return replies, nil
}

// QueryTopics applies the query to the topic level.
func QueryTopics(ctx context.Context, store *Store, q ItemQuery) ([]Entities.DiscussionItem, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}
	return QueryItems(Topics(store), q), nil
}

// QueryPosts applies the query to the posts under one topic.
func QueryPosts(ctx context.Context, store *Store, topicId string, q ItemQuery) ([]Entities.DiscussionItem, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}
	posts, err := PostsOfTopic(store, topicId)
	if err != nil {
		return nil, err
	}
	return QueryItems(posts, q), nil
}

// QueryReplies applies the query to the replies under one post.
func QueryReplies(ctx context.Context, store *Store, topicId, postId string, q ItemQuery) ([]Entities.DiscussionItem, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}
	replies, err := RepliesOfPost(store, topicId, postId)
	if err != nil {
		return nil, err
	}
	return QueryItems(replies, q), nil
}

// GetDiscussionItem fetches a single item for the detail view.
func GetDiscussionItem(ctx context.Context, store *Store, id string) (Entities.DiscussionItem, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.DiscussionItem{}, err
	}
	item, ok := store.GetItem(id)
	if !ok {
		return Entities.DiscussionItem{}, ErrItemNotFound
	}
	return item, nil
}
