package response

import "github.com/cldprgm/Network-vibe/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Slug     string `json:"slug"`
}

func NewUserFromDomain(u domain.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Slug:     u.Slug,
	}
}

// nullable 空游标返回 null
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
