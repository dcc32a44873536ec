package Controllers

import (
	"net/http"
	"strings"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

// Chart display names and colors live here, on the presentation side.
// The data side only knows the enum values.
var priorityDisplay = []struct {
	value Entities.Priority
	name  string
}{
	{Entities.PriorityLow, "Low Priority"},
	{Entities.PriorityMedium, "Medium Priority"},
	{Entities.PriorityHigh, "High Priority"},
}

var typeDisplay = []struct {
	value Entities.ItemType
	name  string
}{
	{Entities.TypeLecture, "Lecture"},
	{Entities.TypeWorkshop, "Workshop"},
	{Entities.TypeAssignment, "Assignment"},
}

var sentimentDisplay = []struct {
	value Entities.Sentiment
	name  string
	color string
}{
	{Entities.SentimentAcademicDesperation, "Academic Desperation", "#ef4444"},
	{Entities.SentimentProductiveStruggle, "Productive Struggle", "#10b981"},
	{Entities.SentimentConfusion, "Confusion", "#f59e0b"},
	{Entities.SentimentTechnostress, "Technostress", "#8b5cf6"},
	{Entities.SentimentBoredom, "Boredom", "#6b7280"},
	{Entities.SentimentHostility, "Hostility", "#b91c1c"},
	{Entities.SentimentEpistemicCuriosity, "Epistemic Curiosity", "#3b82f6"},
}

func GetDashboardStats(c *gin.Context, store *Services.Store) {
	stats, err := Services.GetDashboardStats(c.Request.Context(), store)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetChartData(c *gin.Context, store *Services.Store) {
	byPriority, byType, bySentiment, err := Services.ChartCounts(c.Request.Context(), store)
	if err != nil {
		serviceError(c, err)
		return
	}

	data := Entities.ChartData{
		PriorityData:  make([]Entities.ChartPoint, 0, len(priorityDisplay)),
		TypeData:      make([]Entities.ChartPoint, 0, len(typeDisplay)),
		SentimentData: make([]Entities.SentimentChartPoint, 0, len(sentimentDisplay)),
	}
	for _, d := range priorityDisplay {
		data.PriorityData = append(data.PriorityData, Entities.ChartPoint{Value: byPriority[d.value], Name: d.name})
	}
	for _, d := range typeDisplay {
		data.TypeData = append(data.TypeData, Entities.ChartPoint{Value: byType[d.value], Name: d.name})
	}
	for _, d := range sentimentDisplay {
		data.SentimentData = append(data.SentimentData, Entities.SentimentChartPoint{Value: bySentiment[d.value], Name: d.name, Color: d.color})
	}

	c.JSON(http.StatusOK, data)
}

// mapDisplayNameToValue resolves a chart segment's display name back
// to the enum value for the given dimension. Unknown names fall back
// the way the chart component did: lowercased for the closed
// three-value dimensions, verbatim for sentiment.
func mapDisplayNameToValue(dimension, name string) string {
	switch dimension {
	case "priority":
		for _, d := range priorityDisplay {
			if d.name == name {
				return string(d.value)
			}
		}
		return strings.ToLower(name)
	case "type":
		for _, d := range typeDisplay {
			if d.name == name {
				return string(d.value)
			}
		}
		return strings.ToLower(name)
	case "sentiment":
		for _, d := range sentimentDisplay {
			if d.name == name {
				return string(d.value)
			}
		}
		return name
	case "level":
		return strings.ToLower(name)
	}
	return name
}
