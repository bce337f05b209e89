package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`

	jwtlib.RegisteredClaims
}

// Pair is what login and signup hand out. Clients of this API keep only the
// access token.
type Pair struct {
	Access  string
	Refresh string
}

type Service interface {
	IssuePair(userID int64, email string) (Pair, error)
	ValidateAccessToken(tokenString string) (Claims, error)
}

type HMACService struct {
	accessSecret  []byte
	refreshSecret []byte

	accessExpiresIn  time.Duration
	refreshExpiresIn time.Duration

	now func() time.Time
}

// NewHMACService signs both token kinds with HS256. The refresh secret is
// derived from the access secret when empty.
func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	if refreshSecret == "" {
		refreshSecret = accessSecret + ":refresh"
	}
	return &HMACService{
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		accessExpiresIn:  accessExpiresIn,
		refreshExpiresIn: refreshExpiresIn,
		now:              time.Now,
	}
}

func (s *HMACService) IssuePair(userID int64, email string) (Pair, error) {
	access, err := s.generate(TokenTypeAccess, userID, email)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.generate(TokenTypeRefresh, userID, "")
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (s *HMACService) ValidateAccessToken(tokenString string) (Claims, error) {
	c, err := s.validateWithSecret(tokenString, s.accessSecret)
	if err != nil {
		return Claims{}, err
	}
	if c.TokenType != TokenTypeAccess {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func (s *HMACService) generate(tokenType string, userID int64, email string) (string, error) {
	now := s.now().UTC()
	secret, expIn, err := s.secretAndExpiry(tokenType)
	if err != nil {
		return "", err
	}

	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expIn)),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(secret)
}

func (s *HMACService) validateWithSecret(tokenString string, secret []byte) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.UserID <= 0 {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func (s *HMACService) secretAndExpiry(tokenType string) ([]byte, time.Duration, error) {
	switch tokenType {
	case TokenTypeAccess:
		if len(s.accessSecret) == 0 || s.accessExpiresIn <= 0 {
			return nil, 0, ErrTokenInvalid
		}
		return s.accessSecret, s.accessExpiresIn, nil
	case TokenTypeRefresh:
		if len(s.refreshSecret) == 0 || s.refreshExpiresIn <= 0 {
			return nil, 0, ErrTokenInvalid
		}
		return s.refreshSecret, s.refreshExpiresIn, nil
	default:
		return nil, 0, ErrTokenInvalid
	}
}

var _ Service = (*HMACService)(nil)
