package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/dto"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/repository"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens. La vigencia es fija
// (jwt.TokenTTL): no se configura por entorno.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: signup y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Signup crea un usuario: valida campos obligatorios, chequea existencia
// combinada por username O email (sin distinguir cuál colisionó), hashea el
// password con bcrypt (costo 10) y persiste con timestamps actuales.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrSignupFieldsEmpty
	}
	exists, err := uc.userRepo.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login busca por username O email, verifica el password contra el hash y
// emite un JWT con el id del usuario y expiración fija de una hora.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByUsernameOrEmail(in.UsernameOrEmail)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer)
}
