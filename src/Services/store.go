package Services

import (
	"errors"
	"sync"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
)

var (
	ErrInvalidCredentials   = errors.New("Invalid username or password")
	ErrUsernameExists       = errors.New("Username already exists")
	ErrAccountNotFound      = errors.New("Account not found")
	ErrNotificationNotFound = errors.New("Email notification not found")
	ErrItemNotFound         = errors.New("Item not found")
)

// AccountPatch is a partial account update. Empty fields are left
// untouched; Password must already be hashed when set.
type AccountPatch struct {
	Username string
	Password string
	Email    string
	Role     Entities.Role
}

// Store owns the discussion items, login accounts and email
// notifications. One lock guards all three tables, so compound
// mutations (cascade delete, toggle) are atomic as a unit and the
// read-modify-write races of unguarded shared slices cannot occur.
type Store struct {
	mu            sync.RWMutex
	accounts      []Entities.LoginAccount
	notifications []Entities.EmailNotification
	items         []Entities.DiscussionItem
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ListAccounts() []Entities.LoginAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entities.LoginAccount, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) GetAccount(id string) (Entities.LoginAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.Id == id {
			return acc, true
		}
	}
	return Entities.LoginAccount{}, false
}

func (s *Store) FindAccountByUsername(username string) (Entities.LoginAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.Username == username {
			return acc, true
		}
	}
	return Entities.LoginAccount{}, false
}

// CreateAccount appends the account together with its paired
// notification record. Nothing is written when the username collides.
func (s *Store) CreateAccount(account Entities.LoginAccount, notification Entities.EmailNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Username == account.Username {
			return ErrUsernameExists
		}
	}
	s.accounts = append(s.accounts, account)
	s.notifications = append(s.notifications, notification)
	return nil
}

// UpdateAccount merges the provided patch fields into the account.
// When syncNotificationEmail is set, an email change is mirrored onto
// the paired notification record (the profile-update contract).
func (s *Store) UpdateAccount(id string, patch AccountPatch, syncNotificationEmail bool) (Entities.LoginAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, acc := range s.accounts {
		if acc.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Entities.LoginAccount{}, ErrAccountNotFound
	}

	if patch.Username != "" && patch.Username != s.accounts[idx].Username {
		for _, acc := range s.accounts {
			if acc.Username == patch.Username && acc.Id != id {
				return Entities.LoginAccount{}, ErrUsernameExists
			}
		}
		s.accounts[idx].Username = patch.Username
	}
	if patch.Password != "" {
		s.accounts[idx].Password = patch.Password
	}
	if patch.Email != "" {
		s.accounts[idx].Email = patch.Email
		if syncNotificationEmail {
			for i, notif := range s.notifications {
				if notif.LoginAccountId == id {
					s.notifications[i].Email = patch.Email
					break
				}
			}
		}
	}
	if patch.Role != "" {
		s.accounts[idx].Role = patch.Role
	}

	return s.accounts[idx], nil
}

// DeleteAccount removes the account and cascades the paired
// notification in the same locked step.
func (s *Store) DeleteAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, acc := range s.accounts {
		if acc.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrAccountNotFound
	}
	s.accounts = append(s.accounts[:idx], s.accounts[idx+1:]...)

	for i, notif := range s.notifications {
		if notif.LoginAccountId == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListNotifications() []Entities.EmailNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entities.EmailNotification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) FindNotificationByAccount(loginAccountId string) (Entities.EmailNotification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, notif := range s.notifications {
		if notif.LoginAccountId == loginAccountId {
			return notif, true
		}
	}
	return Entities.EmailNotification{}, false
}

// UpsertNotification updates the record for the account in place, or
// appends candidate when none exists yet (lazy creation).
func (s *Store) UpsertNotification(loginAccountId string, email string, enabled *bool, candidate Entities.EmailNotification) Entities.EmailNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notif := range s.notifications {
		if notif.LoginAccountId == loginAccountId {
			s.notifications[i].Email = email
			if enabled != nil {
				s.notifications[i].Enabled = *enabled
			}
			return s.notifications[i]
		}
	}

	s.notifications = append(s.notifications, candidate)
	return candidate
}

// ToggleNotification flips Enabled under the write lock, so two
// overlapping toggles serialize instead of losing an update.
func (s *Store) ToggleNotification(loginAccountId string) (Entities.EmailNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notif := range s.notifications {
		if notif.LoginAccountId == loginAccountId {
			s.notifications[i].Enabled = !s.notifications[i].Enabled
			return s.notifications[i], nil
		}
	}
	return Entities.EmailNotification{}, ErrNotificationNotFound
}

func (s *Store) ListItems() []Entities.DiscussionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entities.DiscussionItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) GetItem(id string) (Entities.DiscussionItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Id == id {
			return item, true
		}
	}
	return Entities.DiscussionItem{}, false
}

func (s *Store) ChildrenOf(parentId string) []Entities.DiscussionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	children := make([]Entities.DiscussionItem, 0)
	for _, item := range s.items {
		if item.ParentId == parentId {
			children = append(children, item)
		}
	}
	return children
}

// ChildCount is the derived child count. It may differ from the stored
// ReplyCount, which is a snapshot imported from the Canvas export.
func (s *Store) ChildCount(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		if item.ParentId == id {
			count++
		}
	}
	return count
}

func (s *Store) SetItems(items []Entities.DiscussionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}
