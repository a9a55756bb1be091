package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventhub/internal/domain"
)

type snapshotClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTSnapshots signs and verifies persisted session snapshots with HS256.
// Signing keeps a hand-edited or truncated storage file from restoring as a
// session: anything that fails verification is treated as absent. Snapshots
// carry no expiry.
type JWTSnapshots struct {
	secret []byte
}

// NewJWTSnapshots returns a snapshot signer/verifier using the given secret.
func NewJWTSnapshots(secret string) *JWTSnapshots {
	return &JWTSnapshots{secret: []byte(secret)}
}

func (j *JWTSnapshots) Sign(snapshot *domain.SessionSnapshot) (string, error) {
	claims := snapshotClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  snapshot.UserID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Name:  snapshot.Name,
		Email: snapshot.Email,
		Role:  string(snapshot.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign snapshot: %w", err)
	}
	return signed, nil
}

func (j *JWTSnapshots) Verify(signed string) (*domain.SessionSnapshot, error) {
	var claims snapshotClaims
	token, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid snapshot")
	}
	return &domain.SessionSnapshot{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}
