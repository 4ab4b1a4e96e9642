package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/session"
	"github.com/jhoicas/inventory-command/internal/domain"
	pkgjwt "github.com/jhoicas/inventory-command/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUC(t *testing.T) *session.UseCase {
	t.Helper()
	uc, err := session.NewUseCase(session.Config{
		Password:   "equipo-2025",
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventory-command-test",
	})
	require.NoError(t, err)
	return uc
}

func TestOpen_ContrasenaCorrecta(t *testing.T) {
	uc := newUC(t)
	res, err := uc.Open(dto.OpenSessionRequest{Password: "equipo-2025"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	_, err = uuid.Parse(res.SessionID)
	assert.NoError(t, err, "el id de sesión es un UUID")
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), res.ExpiresAt, time.Minute)

	s, err := uc.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, s.ID)
}

func TestOpen_CadaSesionTieneIDPropio(t *testing.T) {
	uc := newUC(t)
	a, err := uc.Open(dto.OpenSessionRequest{Password: "equipo-2025"})
	require.NoError(t, err)
	b, err := uc.Open(dto.OpenSessionRequest{Password: "equipo-2025"})
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestOpen_ContrasenaIncorrecta(t *testing.T) {
	uc := newUC(t)
	_, err := uc.Open(dto.OpenSessionRequest{Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Open(dto.OpenSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewUseCase_ConHashPrecalculado(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3creta"), bcrypt.MinCost)
	require.NoError(t, err)
	uc, err := session.NewUseCase(session.Config{PasswordHash: string(hash), Secret: testSecret, ExpMinutes: 5})
	require.NoError(t, err)

	_, err = uc.Open(dto.OpenSessionRequest{Password: "s3creta"})
	assert.NoError(t, err)
}

func TestNewUseCase_ConfiguracionInvalida(t *testing.T) {
	_, err := session.NewUseCase(session.Config{Secret: testSecret})
	assert.Error(t, err, "sin contraseña")

	_, err = session.NewUseCase(session.Config{Password: "x"})
	assert.Error(t, err, "sin secreto")

	_, err = session.NewUseCase(session.Config{PasswordHash: "no-es-bcrypt", Secret: testSecret})
	assert.Error(t, err)
}

func TestValidate_TokenAjeno(t *testing.T) {
	uc := newUC(t)
	tok, err := pkgjwt.Generate("otro-secreto", "sid", "x", 5)
	require.NoError(t, err)
	_, err = uc.Validate(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired, err := pkgjwt.Generate(testSecret, "sid", "x", -5)
	require.NoError(t, err)
	_, err = uc.Validate(expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
