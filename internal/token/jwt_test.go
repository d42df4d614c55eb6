package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestJWT_GenerateAndParse(t *testing.T) {
	m := NewJWT(testSecret)
	userID := uuid.New()

	tokenString, err := m.Generate(userID, "ann@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := m.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	m := NewJWT(testSecret)
	tokenString, err := m.Generate(uuid.New(), "ann@example.com")
	require.NoError(t, err)

	other := NewJWT("other-secret")
	_, err = other.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_Malformed(t *testing.T) {
	m := NewJWT(testSecret)

	_, err := m.Parse("not-a-token")
	require.Error(t, err)

	_, err = m.Parse("")
	require.Error(t, err)
}

func TestJWT_Parse_MissingUserID(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	m := NewJWT(testSecret)
	_, err = m.Parse(tokenString)
	require.Error(t, err)
}

// signAt issues a token as if it were generated at the given time.
func signAt(t *testing.T, userID uuid.UUID, issuedAt time.Time) string {
	t.Helper()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
		UserID: userID,
		Email:  "ann@example.com",
	})
	tokenString, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tokenString
}

func TestJWT_Parse_ExpiryWindow(t *testing.T) {
	m := NewJWT(testSecret)
	userID := uuid.New()

	// Issued 59 minutes ago: still inside the one-hour window.
	fresh := signAt(t, userID, time.Now().Add(-59*time.Minute))
	parsedID, err := m.Parse(fresh)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)

	// Issued 61 minutes ago: expired.
	stale := signAt(t, userID, time.Now().Add(-61*time.Minute))
	_, err = m.Parse(stale)
	require.Error(t, err)
}
