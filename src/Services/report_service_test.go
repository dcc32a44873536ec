package Services

import (
	"context"
	"testing"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

func TestDashboardStatsCountLevels(t *testing.T) {
	store := newTestStore(t)

	stats, err := GetDashboardStats(context.Background(), store)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalTopics != 4 || stats.TotalPosts != 5 || stats.TotalReplies != 5 {
		t.Fatalf("got %+v, want 4 topics, 5 posts, 5 replies", stats)
	}
}

func TestChartCountsSumToItemTotal(t *testing.T) {
	store := newTestStore(t)

	byPriority, byType, bySentiment, err := ChartCounts(context.Background(), store)
	if err != nil {
		t.Fatalf("ChartCounts: %v", err)
	}

	total := len(store.ListItems())
	for name, counts := range map[string]int{
		"priority":  sumCounts(byPriority),
		"type":      sumCounts(byType),
		"sentiment": sumCounts(bySentiment),
	} {
		if counts != total {
			t.Fatalf("%s counts sum to %d, want %d", name, counts, total)
		}
	}

	if byPriority[Entities.PriorityHigh] != 5 {
		t.Fatalf("got %d high-priority items, want 5", byPriority[Entities.PriorityHigh])
	}
	if bySentiment[Entities.SentimentHostility] != 1 {
		t.Fatalf("got %d hostility items, want 1", bySentiment[Entities.SentimentHostility])
	}
}

func sumCounts[K comparable](m map[K]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
