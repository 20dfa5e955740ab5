package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/config"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Secret:       "segredo-de-teste",
		Email:        " Operador@Empresa.com ",
		PasswordHash: string(hash),
		TokenTTL:     time.Hour,
	})
}

func TestService_LoginUser(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "Login com sucesso", email: "operador@empresa.com", password: "senha-forte"},
		{name: "Email com maiúsculas e espaços", email: "  OPERADOR@empresa.com", password: "senha-forte"},
		{name: "Senha incorreta", email: "operador@empresa.com", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Email desconhecido", email: "outro@empresa.com", password: "senha-forte", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)
			claims, err := s.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "operador@empresa.com", claims.UserEmail)
		})
	}
}

func TestService_LoginUser_NaoConfigurado(t *testing.T) {
	s := NewService(config.Auth{Email: "operador@empresa.com"})

	_, err := s.LoginUser("operador@empresa.com", "qualquer")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	s := newTestService(t)
	token, err := s.LoginUser("operador@empresa.com", "senha-forte")
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		expired := *s
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := expired.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		other := *s
		other.secret = []byte("outro-segredo")

		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Algoritmo não HMAC", func(t *testing.T) {
		unsigned, err := jwt.New(jwt.SigningMethodNone).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := s.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
