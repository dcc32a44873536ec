package Entities

type DashboardStats struct {
	TotalTopics  int `json:"totalTopics"`
	TotalPosts   int `json:"totalPosts"`
	TotalReplies int `json:"totalReplies"`
}

type ChartPoint struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

type SentimentChartPoint struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ChartData struct {
	PriorityData  []ChartPoint          `json:"priorityData"`
	TypeData      []ChartPoint          `json:"typeData"`
	SentimentData []SentimentChartPoint `json:"sentimentData"`
}
