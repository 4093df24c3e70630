package jwt

import (
	"errors"
	"time"

	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	jwtgo "github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken = errors.New("jwt: invalid token")
	ErrExpired      = errors.New("jwt: token is expired")
)

type Claims struct {
	UserID entityid.ID[domain.User] `json:"userId"`
	Email  string                   `json:"email"`
	jwtgo.StandardClaims
}

// Signer issues and verifies HS256 tokens carrying a typed user id.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Signer) Sign(user entityid.Identified[domain.User]) (string, error) {
	c := Claims{
		UserID: user.ID(),
		Email:  user.Entity().Email,
		StandardClaims: jwtgo.StandardClaims{
			IssuedAt:  s.now().Unix(),
			ExpiresAt: s.now().Add(s.ttl).Unix(),
		},
	}
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry. A userId claim holding an id of
// another kind fails to decode and the token is rejected.
func (s *Signer) Verify(raw string) (Claims, error) {
	token, err := jwtgo.ParseWithClaims(
		raw,
		&Claims{},
		func(token *jwtgo.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
	)
	if err != nil {
		var verr *jwtgo.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwtgo.ValidationErrorExpired != 0 {
			return Claims{}, ErrExpired
		}
		return Claims{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.ExpiresAt < s.now().UTC().Unix() {
		return Claims{}, ErrExpired
	}
	if claims.UserID.IsZero() {
		return Claims{}, ErrInvalidToken
	}

	return *claims, nil
}
