package Services

import (
	"context"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Events"
)

func ListLoginAccounts(ctx context.Context, store *Store) ([]Entities.LoginAccount, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}
	return store.ListAccounts(), nil
}

// CreateLoginAccount registers a new account together with its enabled
// notification record defaulting to the account's email. Role defaults
// to user.
func CreateLoginAccount(ctx context.Context, store *Store, username, password, email string, role Entities.Role) (Entities.LoginAccount, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.LoginAccount{}, err
	}

	if role == "" {
		role = Entities.RoleUser
	}

	account := Entities.LoginAccount{
		Id:        newId(),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: nowISO(),
	}
	if err := account.HashPassword(password); err != nil {
		return Entities.LoginAccount{}, err
	}

	notification := Entities.EmailNotification{
		Id:             newNotificationId(),
		LoginAccountId: account.Id,
		Email:          email,
		Enabled:        true,
		CreatedAt:      nowISO(),
	}

	if err := store.CreateAccount(account, notification); err != nil {
		return Entities.LoginAccount{}, err
	}
	publishAccountEvent(Events.AccountCreated, account)
	return account, nil
}

// UpdateLoginAccount merges the provided fields into an account. The
// empty password means "keep the current password". Unlike a profile
// edit, an admin edit does not touch the notification email.
func UpdateLoginAccount(ctx context.Context, store *Store, id string, username, password, email string, role Entities.Role) (Entities.LoginAccount, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.LoginAccount{}, err
	}

	patch := AccountPatch{Username: username, Email: email, Role: role}
	if password != "" {
		var hasher Entities.LoginAccount
		if err := hasher.HashPassword(password); err != nil {
			return Entities.LoginAccount{}, err
		}
		patch.Password = hasher.Password
	}

	account, err := store.UpdateAccount(id, patch, false)
	if err != nil {
		return Entities.LoginAccount{}, err
	}
	publishAccountEvent(Events.AccountUpdated, account)
	return account, nil
}

// DeleteLoginAccount removes the account and its paired notification.
func DeleteLoginAccount(ctx context.Context, store *Store, id string) error {
	if err := simulateLatency(ctx); err != nil {
		return err
	}

	account, _ := store.GetAccount(id)
	if err := store.DeleteAccount(id); err != nil {
		return err
	}
	publishAccountEvent(Events.AccountDeleted, account)
	return nil
}

func publishAccountEvent(eventType Events.EventType, account Entities.LoginAccount) {
	Events.Publish(eventType, Events.AccountEvent{
		AccountId: account.Id,
		Username:  account.Username,
	})
}
