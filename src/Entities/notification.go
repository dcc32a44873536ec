package Entities

// EmailNotification controls notification delivery for one login
// account. At most one record exists per LoginAccountId.
type EmailNotification struct {
	Id             string `json:"id"`
	LoginAccountId string `json:"loginAccountId"`
	Email          string `json:"email"`
	Enabled        bool   `json:"enabled"`
	CreatedAt      string `json:"createdAt"`
}
