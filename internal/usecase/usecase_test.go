package usecase

import (
	"context"
	"io"
	"testing"

	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/repository/repositorytest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, store *repositorytest.Store, email string) uint {
	t.Helper()
	user := &entity.User{Name: "User", Email: email, Password: "x"}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user.ID
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
