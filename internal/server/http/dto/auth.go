package dto

// RegisterRequest describes customer registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffLoginRequest describes staff username/password payload.
type StaffLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public part of a customer account.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// StaffResponse describes the logged in staff member.
type StaffResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// StaffAuthResponse is returned after successful staff login.
type StaffAuthResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Staff   StaffResponse `json:"staff"`
}

// VerifyResponse reports the identity behind a valid token.
type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
