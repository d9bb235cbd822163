//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gleamshop/internal/domain/user"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/pkg/jwt"
	"gleamshop/internal/pkg/password"
	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"
	"gleamshop/tests/common/builder"
	commandsmock "gleamshop/tests/mock/commands"
	queriesmock "gleamshop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testRawPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUserRepo  *commandsmock.MockUserRepository
	mockReadStore *queriesmock.MockUserReadStore
	jwtService    *jwt.Service
	auth          commands.AuthCommands

	passwordHash string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword(testRawPassword)
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)

	s.auth = commands.NewAuthCommands(s.mockUserRepo, s.mockReadStore, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) userView() *queries.AuthorizedUserView {
	return builder.NewUserBuilder().BuildReadModel()
}

func (s *AuthCommandsTestSuite) roleOf(view *queries.AuthorizedUserView) user.Role {
	role, err := user.NewRole(view.Role)
	s.Require().NoError(err)
	return role
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("creates a customer and returns its id", func() {
		var createdID uuid.UUID
		s.mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				s.Equal(user.RoleCustomer, u.Role())
				createdID = u.ID()
				return nil
			})

		result, err := s.auth.Register(context.Background(), "new@example.com", testRawPassword)

		s.NoError(err)
		s.Equal(createdID, result.UserID)
	})

	s.Run("maps a unique violation to email taken", func() {
		s.mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate email", errs.New("23505"), infra.KindConflict))

		_, err := s.auth.Register(context.Background(), "dup@example.com", testRawPassword)

		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("rejects a malformed email before storage", func() {
		_, err := s.auth.Register(context.Background(), "not-an-email", testRawPassword)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("rejects a short password before storage", func() {
		_, err := s.auth.Register(context.Background(), "new@example.com", "short")

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("marks other storage failures", func() {
		s.mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errs.New("connection reset"))

		_, err := s.auth.Register(context.Background(), "new@example.com", testRawPassword)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("issues an access and refresh token pair", func() {
		view := s.userView()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.passwordHash, nil)
		s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(nil)

		result, err := s.auth.Login(context.Background(), view.Email, testRawPassword)

		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)

		claims, err := s.jwtService.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)

		claims, err = s.jwtService.ValidateToken(result.TokenPair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	})

	s.Run("succeeds even when recording last login fails", func() {
		view := s.userView()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.passwordHash, nil)
		s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(errs.New("timeout"))

		_, err := s.auth.Login(context.Background(), view.Email, testRawPassword)

		s.NoError(err)
	})

	s.Run("hides lookup failures behind invalid credentials", func() {
		s.mockReadStore.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", errs.New("no rows"))

		_, err := s.auth.Login(context.Background(), "ghost@example.com", testRawPassword)

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("returns user not found for an absent account", func() {
		s.mockReadStore.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", nil)

		_, err := s.auth.Login(context.Background(), "ghost@example.com", testRawPassword)

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})

	s.Run("rejects an inactive account", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.passwordHash, nil)

		_, err := s.auth.Login(context.Background(), view.Email, testRawPassword)

		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("rejects a wrong password", func() {
		view := s.userView()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.passwordHash, nil)

		_, err := s.auth.Login(context.Background(), view.Email, "wrongpassword")

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("rotates the pair for an active user", func() {
		view := s.userView()
		refreshToken := s.generateRefreshToken(view)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := s.auth.RefreshToken(context.Background(), refreshToken)

		s.Require().NoError(err)

		claims, err := s.jwtService.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Equal(view.ID, claims.UserID)

		claims, err = s.jwtService.ValidateToken(pair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	})

	s.Run("rejects an access token presented as refresh", func() {
		view := s.userView()
		role := s.roleOf(view)
		accessToken, err := s.jwtService.GenerateAccessToken(view.ID, role)
		s.Require().NoError(err)

		_, err = s.auth.RefreshToken(context.Background(), accessToken)

		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("rejects garbage tokens", func() {
		_, err := s.auth.RefreshToken(context.Background(), "not.a.token")

		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("rejects a token for a deleted user", func() {
		view := s.userView()
		refreshToken := s.generateRefreshToken(view)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, errs.New("no rows"))

		_, err := s.auth.RefreshToken(context.Background(), refreshToken)

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})

	s.Run("rejects a token for a deactivated user", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refreshToken := s.generateRefreshToken(view)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.auth.RefreshToken(context.Background(), refreshToken)

		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}

func (s *AuthCommandsTestSuite) generateRefreshToken(view *queries.AuthorizedUserView) string {
	token, err := s.jwtService.GenerateRefreshToken(view.ID, s.roleOf(view))
	s.Require().NoError(err)
	return token
}
