package Services

import (
	"sync"
	"time"
)

// ViewerActivity records which drill-down page a connected dashboard
// viewer is currently looking at.
type ViewerActivity struct {
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	CurrentPageType string    `json:"current_page_type"`
	CurrentPageId   string    `json:"current_page_id"`
	LastActive      time.Time `json:"last_active"`
}

type ViewerActivityStorage struct {
	viewers map[string]*ViewerActivity
	mu      sync.RWMutex
}

var ActivityStorage = ViewerActivityStorage{
	viewers: make(map[string]*ViewerActivity),
}

func (s *ViewerActivityStorage) AddViewer(userID string, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.viewers[userID]; !exists {
		s.viewers[userID] = &ViewerActivity{
			UserID:     userID,
			Username:   username,
			LastActive: time.Now(),
		}
	} else {
		s.viewers[userID].LastActive = time.Now()
	}
}

func (s *ViewerActivityStorage) RemoveViewer(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.viewers, userID)
}

func (s *ViewerActivityStorage) UpdateViewerLocation(userID string, pageType string, pageId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if viewer, exists := s.viewers[userID]; exists {
		viewer.CurrentPageType = pageType
		viewer.CurrentPageId = pageId
		viewer.LastActive = time.Now()
	}
}

func (s *ViewerActivityStorage) GetActiveViewers() []*ViewerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]*ViewerActivity, 0, len(s.viewers))
	for _, viewer := range s.viewers {
		active = append(active, viewer)
	}
	return active
}

func (s *ViewerActivityStorage) GetViewersOnPage(pageType string, pageId string) []*ViewerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	onPage := make([]*ViewerActivity, 0)
	for _, viewer := range s.viewers {
		if viewer.CurrentPageType == pageType && viewer.CurrentPageId == pageId {
			onPage = append(onPage, viewer)
		}
	}
	return onPage
}
