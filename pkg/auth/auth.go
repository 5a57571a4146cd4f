package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arnavshah/flight-assigner-go/pkg/database"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidToken is returned for an expired, malformed or forged JWT
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidKey is returned for an API key with a bad format or signature
	ErrInvalidKey = errors.New("invalid api key")
)

var jwtAlgorithm = jwt.SigningMethodHS256

// TokenTTL is how long an admin token stays valid
const TokenTTL = 24 * time.Hour

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Auth signs admin tokens and API keys with the configured secrets
type Auth struct {
	jwtSecret    []byte
	masterSecret []byte
	bcryptCost   int
}

// New creates an Auth from the JWT and API master secrets
func New(jwtSecret, masterSecret string) *Auth {
	return &Auth{
		jwtSecret:    []byte(jwtSecret),
		masterSecret: []byte(masterSecret),
		bcryptCost:   14,
	}
}

// WithBcryptCost overrides the hashing cost, mostly for tests
func (a *Auth) WithBcryptCost(cost int) *Auth {
	a.bcryptCost = cost
	return a
}

// HashPassword hashes a password using bcrypt
func (a *Auth) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateToken creates a new JWT token for an admin user
func (a *Auth) CreateToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwtAlgorithm, claims).SignedString(a.jwtSecret)
}

// VerifyToken verifies a JWT token and returns its claims
func (a *Auth) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtAlgorithm {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateHMACKey creates a signed API key of the form <userID>.<hex signature>
func (a *Auth) GenerateHMACKey(userID string) string {
	return userID + "." + a.sign(userID)
}

// VerifyHMACKey validates an HMAC-signed API key and returns its user id
func (a *Auth) VerifyHMACKey(key string) (string, error) {
	i := strings.LastIndex(key, ".")
	if i <= 0 || i == len(key)-1 {
		return "", fmt.Errorf("%w: bad format", ErrInvalidKey)
	}
	userID, provided := key[:i], key[i+1:]

	// constant-time comparison
	if !hmac.Equal([]byte(provided), []byte(a.sign(userID))) {
		return "", fmt.Errorf("%w: bad signature", ErrInvalidKey)
	}
	return userID, nil
}

func (a *Auth) sign(userID string) string {
	h := hmac.New(sha256.New, a.masterSecret)
	h.Write([]byte(userID))
	return hex.EncodeToString(h.Sum(nil))
}

// EnsureAdminExists creates the first admin user when the table is empty
func (a *Auth) EnsureAdminExists(db *gorm.DB, username, password string, log *slog.Logger) error {
	var count int64
	if err := db.Model(&database.MasterUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := a.HashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&database.MasterUser{Username: username, PasswordHash: hash}).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Info("default admin user created", slog.String("username", username))
	return nil
}
