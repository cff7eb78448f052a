package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	Phone        string
	Gender       string
	City         string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate carries the optional profile fields. Nil means leave
// the stored value untouched.
type ProfileUpdate struct {
	Username  *string
	Phone     *string
	Gender    *string
	City      *string
	AvatarURL *string
}

// IsEmpty reports whether the update would change nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.Phone == nil && p.Gender == nil &&
		p.City == nil && p.AvatarURL == nil
}
