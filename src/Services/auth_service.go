package Services

import (
	"context"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Events"
)

// Login checks the credentials against the account table. Unknown
// username and wrong password produce the same error so the response
// never reveals which half was wrong.
func Login(ctx context.Context, store *Store, username, password string) (Entities.AuthUser, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.AuthUser{}, err
	}

	account, ok := store.FindAccountByUsername(username)
	if !ok {
		return Entities.AuthUser{}, ErrInvalidCredentials
	}
	if err := account.CheckPassword(password); err != nil {
		return Entities.AuthUser{}, ErrInvalidCredentials
	}
	return account.AuthUser(), nil
}

// GetCurrentUser fetches the full account backing a session, used to
// re-project the AuthUser after profile edits.
func GetCurrentUser(ctx context.Context, store *Store, id string) (Entities.LoginAccount, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.LoginAccount{}, err
	}

	account, ok := store.GetAccount(id)
	if !ok {
		return Entities.LoginAccount{}, ErrAccountNotFound
	}
	return account, nil
}

// UpdateCurrentUser applies a profile edit. An empty password keeps
// the stored one; an email change is mirrored onto the paired
// notification record. Role is not editable through the profile.
func UpdateCurrentUser(ctx context.Context, store *Store, id string, username, password, email string) (Entities.LoginAccount, error) {
	if err := simulateLatency(ctx); err != nil {
		return Entities.LoginAccount{}, err
	}

	patch := AccountPatch{Username: username, Email: email}
	if password != "" {
		var hasher Entities.LoginAccount
		if err := hasher.HashPassword(password); err != nil {
			return Entities.LoginAccount{}, err
		}
		patch.Password = hasher.Password
	}

	account, err := store.UpdateAccount(id, patch, true)
	if err != nil {
		return Entities.LoginAccount{}, err
	}
	publishAccountEvent(Events.AccountUpdated, account)
	return account, nil
}
