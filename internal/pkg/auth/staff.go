package auth

import "crypto/subtle"

// StaffCredentials holds the single configured staff login pair.
type StaffCredentials struct {
	Username string
	Password string
}

// Match compares supplied credentials in constant time.
func (s StaffCredentials) Match(username, password string) bool {
	if s.Username == "" || s.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(s.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(s.Password), []byte(password)) == 1
	return userOK && passOK
}
