package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/satyasudipta98-dot/Foodie-we/services"
)

func newAuthSvc(env *testEnv) *services.AuthService {
	return services.NewAuthService(env.userRepo, "test-secret", time.Hour)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthSvc(env)

	user, err := svc.Register("Ravi", "9000000002", "secret99")
	require.NoError(t, err)

	assert.NotEqual(t, "secret99", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret99")))
}

func TestRegisterRejectsDuplicateMobile(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthSvc(env)

	_, err := svc.Register("Ravi", "9000000002", "secret99")
	require.NoError(t, err)

	_, err = svc.Register("Another Ravi", "9000000002", "other")
	assert.ErrorIs(t, err, services.ErrMobileRegistered)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthSvc(env)

	_, err := svc.Register("Ravi", "9000000002", "secret99")
	require.NoError(t, err)

	token, user, err := svc.Login("9000000002", "secret99")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ravi", user.Name)

	_, _, err = svc.Login("9000000002", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredential)

	_, _, err = svc.Login("9999999999", "secret99")
	assert.ErrorIs(t, err, services.ErrInvalidCredential)
}
