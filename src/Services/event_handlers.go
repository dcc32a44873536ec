package Services

import (
	"github.com/ChungBound/canvasAnalytics/src/Events"
	"github.com/ChungBound/canvasAnalytics/src/Logger"
	"github.com/ChungBound/canvasAnalytics/src/Websockets"
)

// RefreshMessage is pushed to connected dashboards when the data
// behind an open page has changed.
type RefreshMessage struct {
	Event string `json:"event"`
}

func RegisterEventHandlers(log *Logger.Logger) {
	audit := log.With("component", "audit")

	// Subscriber 1: audit trail for account lifecycle changes
	Events.Subscribe(Events.AccountCreated, func(data Events.EventData) {
		event, ok := data.(Events.AccountEvent)
		if !ok {
			return
		}
		audit.Info("login account created", "account_id", event.AccountId, "username", event.Username)
	})
	Events.Subscribe(Events.AccountUpdated, func(data Events.EventData) {
		event, ok := data.(Events.AccountEvent)
		if !ok {
			return
		}
		audit.Info("login account updated", "account_id", event.AccountId, "username", event.Username)
	})
	Events.Subscribe(Events.AccountDeleted, func(data Events.EventData) {
		event, ok := data.(Events.AccountEvent)
		if !ok {
			return
		}
		audit.Info("login account deleted", "account_id", event.AccountId, "username", event.Username)
	})
	Events.Subscribe(Events.NotificationToggled, func(data Events.EventData) {
		event, ok := data.(Events.NotificationEvent)
		if !ok {
			return
		}
		audit.Info("email notification toggled", "account_id", event.AccountId, "enabled", event.Enabled)
	})

	// Subscriber 2: nudge open dashboards to refetch
	Events.Subscribe(Events.AccountCreated, broadcastRefresh("accounts_changed"))
	Events.Subscribe(Events.AccountUpdated, broadcastRefresh("accounts_changed"))
	Events.Subscribe(Events.AccountDeleted, broadcastRefresh("accounts_changed"))
	Events.Subscribe(Events.NotificationToggled, broadcastRefresh("notifications_changed"))
}

func broadcastRefresh(event string) Events.EventHandler {
	return func(data Events.EventData) {
		Websockets.MainHub.Broadcast(RefreshMessage{Event: event})
	}
}
