package Services

import (
	"context"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

// GetDashboardStats counts items per hierarchy level.
func GetDashboardStats(ctx context.Context, store *Store) (Entities.DashboardStats, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.DashboardStats{}, err
	}

	var stats Entities.DashboardStats
	for _, item := range store.ListItems() {
		switch item.Level {
		case Entities.LevelTopic:
			stats.TotalTopics++
		case Entities.LevelPost:
			stats.TotalPosts++
		case Entities.LevelReply:
			stats.TotalReplies++
		}
	}
	return stats, nil
}

// ChartCounts aggregates the three chart dimensions in one pass over
// a consistent snapshot of the item table.
func ChartCounts(ctx context.Context, store *Store) (map[Entities.Priority]int, map[Entities.ItemType]int, map[Entities.Sentiment]int, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, nil, nil, err
	}

	byPriority := make(map[Entities.Priority]int)
	byType := make(map[Entities.ItemType]int)
	bySentiment := make(map[Entities.Sentiment]int)
	for _, item := range store.ListItems() {
		byPriority[item.Priority]++
		byType[item.Type]++
		bySentiment[item.Sentiment]++
	}
	return byPriority, byType, bySentiment, nil
}
