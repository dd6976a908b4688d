package db

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService is the identity gate: it registers accounts, exchanges
// credentials for opaque bearer tokens, and resolves tokens back to users.
// Everything else in the system only ever sees the resulting owner id.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates an auth service on top of an open database handle.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// RegisterRequest holds the fields for a new account. Alamat is optional.
type RegisterRequest struct {
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
	Alamat      string `json:"alamat"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// LoginRequest accepts either an email address or a username.
type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

// ProfileUpdateRequest holds the mutable profile fields. Empty fields are
// left unchanged.
type ProfileUpdateRequest struct {
	NamaLengkap string `json:"nama_lengkap"`
	Alamat      string `json:"alamat"`
	Username    string `json:"username"`
}

// Register creates a new account and returns its profile.
func (s *AuthService) Register(req RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.NamaLengkap == "" || req.Username == "" || req.Password == "" {
		return nil, validationf("required fields: email, nama_lengkap, username, password")
	}
	if !emailRe.MatchString(req.Email) {
		return nil, validationf("invalid email format")
	}
	if !isStrongPassword(req.Password) {
		return nil, validationf("password must be at least 8 characters with at least one uppercase, one lowercase, and one number")
	}

	if taken, err := s.exists("email = ?", req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, conflictf("email already registered")
	}
	if taken, err := s.exists("username = ?", req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, conflictf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		NamaLengkap:  req.NamaLengkap,
		Alamat:       req.Alamat,
		PasswordHash: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflictf("email or username already taken")
		}
		return nil, err
	}

	return &user, nil
}

// Login verifies credentials and issues a fresh bearer token.
func (s *AuthService) Login(req LoginRequest) (string, *models.User, error) {
	if req.EmailOrUsername == "" || req.Password == "" {
		return "", nil, validationf("email/username and password are required")
	}

	column := "username = ?"
	if emailRe.MatchString(req.EmailOrUsername) {
		column = "email = ?"
	}

	var user models.User
	err := s.db.Where(column, req.EmailOrUsername).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := models.AuthToken{
		Token:  uuid.NewString(),
		UserID: user.ID,
	}
	if err := s.db.Create(&token).Error; err != nil {
		return "", nil, err
	}

	return token.Token, &user, nil
}

// Logout revokes a bearer token. Revoking an unknown token is not an error.
func (s *AuthService) Logout(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.AuthToken{}).Error
}

// UserFromToken resolves a bearer token to the account that owns it.
func (s *AuthService) UserFromToken(token string) (*models.User, error) {
	var row models.AuthToken
	err := s.db.Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", row.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return &user, nil
}

// Profile returns the account with the given id.
func (s *AuthService) Profile(userID string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the mutable profile fields, keeping usernames unique.
func (s *AuthService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != user.Username {
		if taken, err := s.exists("username = ? AND id <> ?", req.Username, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, conflictf("username already taken")
		}
		user.Username = req.Username
	}
	if req.NamaLengkap != "" {
		user.NamaLengkap = req.NamaLengkap
	}
	if req.Alamat != "" {
		user.Alamat = req.Alamat
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) exists(query string, args ...any) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// isStrongPassword requires length >= 8 with upper, lower, and digit.
func isStrongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
