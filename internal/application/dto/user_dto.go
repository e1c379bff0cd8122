package dto

import (
	"time"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
)

// SignupRequest entrada para signup (password en texto, se hashea en el use case).
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login: el identificador puede ser username o email.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// UserResponse salida pública de un usuario (el hash jamás sale del dominio).
// Los timestamps cruzan la frontera como strings ISO-8601.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SignupResult envelope de respuesta para signup.
type SignupResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// LoginResult envelope de respuesta para login.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ToUserResponse proyecta la entidad a su forma pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
