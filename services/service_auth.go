package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
)

const tokenTTL = time.Hour

type AuthService struct {
	Users  repository.UserRepository
	secret []byte
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{Users: users, secret: []byte(secret)}
}

// Register stores a new user with a bcrypt-hashed password and returns a
// signed token. Username and email collisions are reported as distinct
// errors because the front end shows different messages for them.
func (s *AuthService) Register(ctx context.Context, username, email, password, gender string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: username, email, password", ErrValidation)
	}

	if _, err := s.Users.FindByUsername(ctx, username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("check username: %w", err)
	}
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Users.Insert(ctx, model.User{
		Username:       username,
		Email:          email,
		Password:       string(hash),
		Gender:         gender,
		ProfilePicture: model.DefaultProfilePicture,
	})
	if err != nil {
		// The unique indexes are the authority; the lookups above only
		// give friendlier errors without a race-free guarantee.
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	return s.GenerateToken(user.ID)
}

// Login matches the username case-insensitively, the way the existing
// clients expect.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Users.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrBadLogin
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrBadLogin
	}
	return s.GenerateToken(user.ID)
}

func (s *AuthService) GenerateToken(userID bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
