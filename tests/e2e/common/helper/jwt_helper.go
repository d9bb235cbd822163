//go:build e2e

package helper

import (
	"testing"

	"gleamshop/internal/domain/user"
	"gleamshop/internal/pkg/config"
	"gleamshop/tests/common/authtest"
	"gleamshop/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JWTTestHelper bundles the shared auth helpers with the suite's pool so e2e
// tests can mint users and tokens in one call.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	jwt  *authtest.JWTHelper
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, jwt: authtest.NewJWTHelper(cfg)}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	return dbtest.CreateTestUser(t, h.pool, email, role)
}

func (h *JWTTestHelper) CreateTestUserWithDB(t *testing.T, db dbtest.DBLike, email, role string) uuid.UUID {
	return dbtest.CreateTestUser(t, db, email, role)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	return authtest.LoginUser(t, router, email, password)
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	return authtest.CreateAndLogin(t, h.pool, router, email, role)
}

func (h *JWTTestHelper) CreateAndLoginWithDB(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	return authtest.CreateAndLogin(t, db, router, email, role)
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	return h.jwt.GenerateToken(t, userID, role)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	return h.jwt.CreateExpiredToken(t, userID, role)
}
