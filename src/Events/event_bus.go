package Events

import (
	"sync"
)

type EventType string

const (
	AccountCreated      EventType = "AccountCreated"
	AccountUpdated      EventType = "AccountUpdated"
	AccountDeleted      EventType = "AccountDeleted"
	NotificationToggled EventType = "NotificationToggled"
)

type EventData interface{}

type AccountEvent struct {
	AccountId string
	Username  string
}

type NotificationEvent struct {
	AccountId string
	Email     string
	Enabled   bool
}

type EventHandler func(data EventData)

var (
	subscribers = make(map[EventType][]EventHandler)
	mu          sync.RWMutex
)

func Subscribe(eventType EventType, handler EventHandler) {
	mu.Lock()
	defer mu.Unlock()
	subscribers[eventType] = append(subscribers[eventType], handler)
}

func Publish(eventType EventType, data EventData) {
	mu.RLock()
	defer mu.RUnlock()
	if handlers, found := subscribers[eventType]; found {
		for _, handler := range handlers {
			// Run handlers in a goroutine to avoid blocking the main request
			go handler(data)
		}
	}
}
