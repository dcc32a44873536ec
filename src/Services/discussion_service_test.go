package Services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	SetSimulatedLatency(0)
	store, err := NewSeededStore()
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return store
}

func ids(items []Entities.DiscussionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Id)
	}
	return out
}

func assertIds(t *testing.T, got []Entities.DiscussionItem, want ...string) {
	t.Helper()
	gotIds := ids(got)
	if len(gotIds) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIds, want)
	}
	for i := range want {
		if gotIds[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIds, want)
		}
	}
}

func TestTopicsAreExactlyTopLevelItems(t *testing.T) {
	store := newTestStore(t)

	topics := Topics(store)
	for _, item := range topics {
		if item.Level != Entities.LevelTopic {
			t.Fatalf("item %s has level %s, want topic", item.Id, item.Level)
		}
		if item.ParentId != "" {
			t.Fatalf("topic %s has parent %s", item.Id, item.ParentId)
		}
	}
	if len(topics) != 4 {
		t.Fatalf("got %d topics, want 4", len(topics))
	}
}

func TestPostsOfTopicAreDirectChildrenOnly(t *testing.T) {
	store := newTestStore(t)

	posts, err := PostsOfTopic(store, "1")
	if err != nil {
		t.Fatalf("PostsOfTopic: %v", err)
	}
	for _, post := range posts {
		if post.ParentId != "1" {
			t.Fatalf("post %s has parent %s, want 1", post.Id, post.ParentId)
		}
		if post.Level != Entities.LevelPost {
			t.Fatalf("post %s has level %s", post.Id, post.Level)
		}
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts under topic 1, want 2", len(posts))
	}
}

func TestPostsOfUnknownTopic(t *testing.T) {
	store := newTestStore(t)

	if _, err := PostsOfTopic(store, "no-such-topic"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
	// A post id is not a valid topic id even though the item exists.
	if _, err := PostsOfTopic(store, "2"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound for post id", err)
	}
}

func TestRepliesOfPostValidatesTheFullPath(t *testing.T) {
	store := newTestStore(t)

	replies, err := RepliesOfPost(store, "1", "2")
	if err != nil {
		t.Fatalf("RepliesOfPost: %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("got %d replies under post 2, want 2", len(replies))
	}
	for _, reply := range replies {
		if reply.ParentId != "2" || reply.Level != Entities.LevelReply {
			t.Fatalf("unexpected reply %s (parent %s, level %s)", reply.Id, reply.ParentId, reply.Level)
		}
	}

	// Post 2 belongs to topic 1; reaching it through topic 3 is a miss.
	if _, err := RepliesOfPost(store, "3", "2"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound for mismatched topic", err)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)

	q := DefaultQuery()
	q.Search = "PANDAS"
	got := QueryItems(store.ListItems(), q)
	if len(got) != 2 {
		t.Fatalf("search PANDAS matched %v, want items 6 and 13", ids(got))
	}
	for _, item := range got {
		if item.Id != "6" && item.Id != "13" {
			t.Fatalf("search PANDAS matched unexpected item %s", item.Id)
		}
	}
}

func TestFiltersCompose(t *testing.T) {
	store := newTestStore(t)

	q := DefaultQuery()
	q.Filters.Priority = string(Entities.PriorityHigh)
	q.Filters.Type = string(Entities.TypeLecture)
	got := QueryItems(store.ListItems(), q)
	assertIds(t, got, "8", "1", "7") // createdAt desc

	// Adding a third filter narrows further, never widens.
	q.Filters.Sentiment = string(Entities.SentimentAcademicDesperation)
	got = QueryItems(store.ListItems(), q)
	assertIds(t, got, "8")
}

func TestSearchAndFiltersIntersect(t *testing.T) {
	store := newTestStore(t)

	q := DefaultQuery()
	q.Search = "traversal"
	q.Filters.Priority = string(Entities.PriorityHigh)
	got := QueryItems(store.ListItems(), q)
	// "traversal" appears in items 3, 4 and 12; only 3 and 12 are high priority.
	assertIds(t, got, "12", "3")
}

func TestSortByCreatedAtOrders(t *testing.T) {
	store := newTestStore(t)

	desc := QueryItems(Topics(store), DefaultQuery())
	assertIds(t, desc, "1", "3", "5", "7")

	q := DefaultQuery()
	q.Sort.Order = SortAsc
	asc := QueryItems(Topics(store), q)
	assertIds(t, asc, "7", "5", "3", "1")
}

func TestSortByReplyCount(t *testing.T) {
	store := newTestStore(t)

	q := DefaultQuery()
	q.Sort.Field = SortByReplyCount
	got := QueryItems(Topics(store), q)
	assertIds(t, got, "1", "5", "3", "7") // 15, 12, 8, 6
}

func TestSortIsStableOnTies(t *testing.T) {
	store := newTestStore(t)

	replies, err := RepliesOfPost(store, "1", "2")
	if err != nil {
		t.Fatalf("RepliesOfPost: %v", err)
	}

	// Both replies have ReplyCount 0, so either direction keeps the
	// original relative order.
	q := DefaultQuery()
	q.Sort.Field = SortByReplyCount
	q.Sort.Order = SortAsc
	assertIds(t, QueryItems(replies, q), "9", "10")
	q.Sort.Order = SortDesc
	assertIds(t, QueryItems(replies, q), "9", "10")
}

func TestSingleFilterQueryReplacesEverything(t *testing.T) {
	q, ok := SingleFilterQuery("sentiment", string(Entities.SentimentConfusion))
	if !ok {
		t.Fatalf("SingleFilterQuery rejected sentiment")
	}
	if q.Search != "" {
		t.Fatalf("selection query kept search %q", q.Search)
	}
	if q.Filters.Priority != "" || q.Filters.Type != "" || q.Filters.Level != "" || q.Filters.Author != "" || q.Filters.Id != "" {
		t.Fatalf("selection query kept extra filters: %+v", q.Filters)
	}
	if q.Filters.Sentiment != string(Entities.SentimentConfusion) {
		t.Fatalf("got sentiment filter %q", q.Filters.Sentiment)
	}
	if q.Sort.Field != SortByCreatedAt || q.Sort.Order != SortDesc {
		t.Fatalf("selection query lost the default sort: %+v", q.Sort)
	}

	if _, ok := SingleFilterQuery("author", "Prof. Zhang"); ok {
		t.Fatalf("author is not a selectable chart dimension")
	}
}

func TestUnparseableTimestampsSortLast(t *testing.T) {
	items := []Entities.DiscussionItem{
		{Id: "a", CreatedAt: "not-a-date"},
		{Id: "b", CreatedAt: "2024-09-20T10:30:00Z"},
	}
	got := QueryItems(items, DefaultQuery())
	assertIds(t, got, "b", "a")
}

func TestQueryCancelledContext(t *testing.T) {
	store := newTestStore(t)
	SetSimulatedLatency(50 * time.Millisecond)
	t.Cleanup(func() { SetSimulatedLatency(0) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := QueryTopics(ctx, store, DefaultQuery()); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestGetDiscussionItem(t *testing.T) {
	store := newTestStore(t)

	item, err := GetDiscussionItem(context.Background(), store, "4")
	if err != nil {
		t.Fatalf("GetDiscussionItem: %v", err)
	}
	if item.Title != "Preorder traversal implementation" {
		t.Fatalf("got title %q", item.Title)
	}
	if _, err := GetDiscussionItem(context.Background(), store, "999"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
}

func TestChildCountIsDerivedNotSnapshot(t *testing.T) {
	store := newTestStore(t)

	// Topic 1 carries the Canvas export counter 15, but only two post
	// rows made it into the extract.
	topic, _ := store.GetItem("1")
	if topic.ReplyCount != 15 {
		t.Fatalf("got stored reply count %d, want 15", topic.ReplyCount)
	}
	if got := store.ChildCount("1"); got != 2 {
		t.Fatalf("got derived child count %d, want 2", got)
	}
}
