package service

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// DeleteResult is the confirmation payload returned by every delete operation
type DeleteResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
