package Services

import (
	"context"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Events"
)

func ListEmailNotifications(ctx context.Context, store *Store) ([]Entities.EmailNotification, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}
	return store.ListNotifications(), nil
}

// UpdateEmailNotification sets the delivery address for an account,
// lazily creating an enabled record when the account has none yet.
func UpdateEmailNotification(ctx context.Context, store *Store, loginAccountId, email string, enabled *bool) (Entities.EmailNotification, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.EmailNotification{}, err
	}

	candidate := Entities.EmailNotification{
		Id:             newNotificationId(),
		LoginAccountId: loginAccountId,
		Email:          email,
		Enabled:        true,
		CreatedAt:      nowISO(),
	}
	if enabled != nil {
		candidate.Enabled = *enabled
	}

	return store.UpsertNotification(loginAccountId, email, enabled, candidate), nil
}

// ToggleEmailNotification flips delivery on or off for an account.
func ToggleEmailNotification(ctx context.Context, store *Store, loginAccountId string) (Entities.EmailNotification, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.EmailNotification{}, err
	}

	notification, err := store.ToggleNotification(loginAccountId)
	if err != nil {
		return Entities.EmailNotification{}, err
	}
	Events.Publish(Events.NotificationToggled, Events.NotificationEvent{
		AccountId: notification.LoginAccountId,
		Email:     notification.Email,
		Enabled:   notification.Enabled,
	})
	return notification, nil
}
