package Controllers

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

// TableRow is one visible row plus the link to its next drill-down
// level. Replies carry no link; they are the leaf level.
type TableRow struct {
	Entities.DiscussionItem
	NextLink string `json:"nextLink,omitempty"`
}

type TableResponse struct {
	Level Entities.Level `json:"level"`
	Items []TableRow     `json:"items"`
	Total int            `json:"total"`
}

// queryFromParams builds the item query from the request. A chart or
// card selection (chart + segment) replaces the whole filter set with
// a single equality filter and clears the search term.
func queryFromParams(c *gin.Context) Services.ItemQuery {
	if dim := c.Query("chart"); dim != "" {
		value := mapDisplayNameToValue(dim, c.Query("segment"))
		if q, ok := Services.SingleFilterQuery(dim, value); ok {
			return q
		}
	}

	q := Services.DefaultQuery()
	q.Search = c.Query("search")
	q.Filters = Services.FilterOptions{
		Priority:  c.Query("priority"),
		Type:      c.Query("type"),
		Sentiment: c.Query("sentiment"),
		Level:     c.Query("level"),
		Author:    c.Query("author"),
		Id:        c.Query("id"),
	}
	if field := c.Query("sort_field"); field != "" {
		q.Sort.Field = field
	}
	if order := c.Query("sort_order"); order != "" {
		q.Sort.Order = order
	}
	return q
}

func GetTopics(c *gin.Context, store *Services.Store) {
	items, err := Services.QueryTopics(c.Request.Context(), store, queryFromParams(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	rows := make([]TableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, TableRow{DiscussionItem: item, NextLink: "/table/" + item.Id})
	}
	c.JSON(http.StatusOK, TableResponse{Level: Entities.LevelTopic, Items: rows, Total: len(rows)})
}

func GetPosts(c *gin.Context, store *Services.Store) {
	topicId := c.Param("topicId")
	items, err := Services.QueryPosts(c.Request.Context(), store, topicId, queryFromParams(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	rows := make([]TableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, TableRow{DiscussionItem: item, NextLink: "/table/" + topicId + "/" + item.Id})
	}
	c.JSON(http.StatusOK, TableResponse{Level: Entities.LevelPost, Items: rows, Total: len(rows)})
}

func GetReplies(c *gin.Context, store *Services.Store) {
	items, err := Services.QueryReplies(c.Request.Context(), store, c.Param("topicId"), c.Param("postId"), queryFromParams(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	rows := make([]TableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, TableRow{DiscussionItem: item})
	}
	c.JSON(http.StatusOK, TableResponse{Level: Entities.LevelReply, Items: rows, Total: len(rows)})
}

func GetDiscussionItem(c *gin.Context, store *Services.Store) {
	item, err := Services.GetDiscussionItem(c.Request.Context(), store, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":       item,
		"childCount": store.ChildCount(item.Id),
	})
}
