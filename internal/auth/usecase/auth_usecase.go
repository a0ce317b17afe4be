package usecase

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	authdomain "journal-backend/internal/auth/domain"
	authdto "journal-backend/internal/auth/dto"
	"journal-backend/internal/auth/repository"
	"journal-backend/pkg/config"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	now      func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		now:      time.Now,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.SessionResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrUserAlreadyExists
	}

	digest, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	sessionToken, err := generateToken()
	if err != nil {
		return nil, err
	}
	updateToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:             req.Email,
		PasswordDigest:    digest,
		SessionToken:      sessionToken,
		SessionExpiration: u.now().Add(u.config.SessionValidity),
		UpdateToken:       updateToken,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return sessionResponse(user), nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.SessionResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password fail identically.
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.PasswordDigest) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return sessionResponse(user), nil
}

func (u *authUsecase) RenewSession(updateToken string) (*authdto.SessionResponse, error) {
	if updateToken == "" {
		return nil, authdomain.ErrInvalidUpdateToken
	}

	sessionToken, err := generateToken()
	if err != nil {
		return nil, err
	}
	newUpdateToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.RenewSession(updateToken, sessionToken, newUpdateToken, u.now().Add(u.config.SessionValidity))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrInvalidUpdateToken
	}

	return sessionResponse(user), nil
}

func (u *authUsecase) ValidateSession(sessionToken string) (*authdomain.User, error) {
	// Tombstoned rows hold empty tokens; an empty bearer token must never
	// match one of them.
	if sessionToken == "" {
		return nil, authdomain.ErrInvalidSessionToken
	}

	user, err := u.userRepo.FindBySessionToken(sessionToken)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.SessionActive(u.now()) {
		return nil, authdomain.ErrInvalidSessionToken
	}
	return user, nil
}

func (u *authUsecase) Logout(user *authdomain.User) error {
	return u.userRepo.InvalidateSession(user.ID, u.now())
}

func sessionResponse(user *authdomain.User) *authdto.SessionResponse {
	return &authdto.SessionResponse{
		SessionToken:      user.SessionToken,
		SessionExpiration: user.SessionExpiration,
		UpdateToken:       user.UpdateToken,
	}
}

// generateToken draws 64 bytes from the platform CSPRNG and digests them, so
// tokens are unpredictable and collision-resistant.
func generateToken() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
