package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bakery-ledger-api/internal/config"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: mockUserRepo,
		cfg: &config.Config{
			Auth: config.Auth{
				Secret:        "segredo-de-teste",
				TokenTTLHours: 24,
			},
		},
	}

	return service, mockUserRepo
}

func registrationInput() *domain.User {
	return &domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        " Maria.Silva@Example.com ",
		PasswordHash: "senha-forte-123",
	}
}

func TestService_CreateUser(t *testing.T) {
	t.Run("normaliza o email e grava o hash da senha", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("maria.silva@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "maria.silva@example.com", user.Email)
				assert.True(t, user.Active)

				err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte-123"))
				assert.NoError(t, err)

				user.ID = 7
				return user, nil
			})

		user, err := service.CreateUser(registrationInput())
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria.silva@example.com").
			Return(&domain.User{ID: 3}, nil)

		_, err := service.CreateUser(registrationInput())
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha curta é rejeitada", func(t *testing.T) {
		service, _ := newAuthTestService(t)

		input := registrationInput()
		input.PasswordHash = "curta"

		_, err := service.CreateUser(input)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("campos obrigatórios ausentes", func(t *testing.T) {
		service, _ := newAuthTestService(t)

		input := registrationInput()
		input.Email = ""

		_, err := service.CreateUser(input)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_LoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte-123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           7,
			Email:        "maria.silva@example.com",
			PasswordHash: string(hash),
			Active:       true,
		}
	}

	t.Run("credenciais válidas emitem um token verificável", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("maria.silva@example.com").Return(activeUser(), nil)

		token, err := service.LoginUser("Maria.Silva@Example.com", "senha-forte-123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "maria.silva@example.com", claims.Email)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("maria.silva@example.com").Return(activeUser(), nil)

		_, err := service.LoginUser("maria.silva@example.com", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("maria.silva@example.com").Return(nil, nil)

		_, err := service.LoginUser("maria.silva@example.com", "senha-forte-123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		service, mockUserRepo := newAuthTestService(t)

		user := activeUser()
		user.Active = false
		mockUserRepo.EXPECT().GetUserByEmail("maria.silva@example.com").Return(user, nil)

		_, err := service.LoginUser("maria.silva@example.com", "senha-forte-123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ValidateToken_invalidInputs(t *testing.T) {
	service, _ := newAuthTestService(t)

	_, err := service.ValidateToken("não-é-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token assinado com outro segredo
	other := &Service{cfg: &config.Config{Auth: config.Auth{Secret: "outro-segredo", TokenTTLHours: 1}}}
	token, err := other.generateJWT(&domain.User{ID: 7, Email: "maria.silva@example.com"})
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_GetUserProfile_clearsPasswordHash(t *testing.T) {
	service, mockUserRepo := newAuthTestService(t)

	mockUserRepo.EXPECT().
		GetUserByID(7).
		Return(&domain.User{ID: 7, Email: "maria.silva@example.com", PasswordHash: "hash"}, nil)

	user, err := service.GetUserProfile(7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
