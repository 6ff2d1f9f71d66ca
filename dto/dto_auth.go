package dto

// ===== Request =====

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ===== Response =====

// AuthResponse matches the existing front end: Success is `true` on the
// happy path but the strings "user"/"email" on duplicate registration.
type AuthResponse struct {
	Success any    `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type UsernameResponse struct {
	Username string `json:"username"`
}

type ProfilePictureResponse struct {
	Success        bool   `json:"success,omitempty"`
	Message        string `json:"message,omitempty"`
	ProfilePicture string `json:"profilePicture"`
}
