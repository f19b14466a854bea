package queries_test

import (
	"testing"

	"ridetrack/internal/core/application/usecases/queries"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserQuery_Valid(t *testing.T) {
	query, err := queries.NewGetUserQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetUserQuery_ZeroID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetUserQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListUsersQuery_DefaultsPagination(t *testing.T) {
	query, err := queries.NewListUsersQuery("", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 10, query.PageSize())
	assert.Empty(t, query.Role())
}

func TestNewListUsersQuery_InvalidRole_ReturnsError(t *testing.T) {
	_, err := queries.NewListUsersQuery("pilot", 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListUsersQuery_PageSizeAboveCap_ReturnsError(t *testing.T) {
	_, err := queries.NewListUsersQuery("driver", 1, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewLoginQuery_Valid(t *testing.T) {
	query, err := queries.NewLoginQuery("rider@example.com", "s3cret!")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "rider@example.com", query.Email())
	assert.Equal(t, "s3cret!", query.Password())
}

func TestNewLoginQuery_MissingFields_ReturnsError(t *testing.T) {
	_, err := queries.NewLoginQuery("", "s3cret!")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewLoginQuery("rider@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewLoginQuery_MalformedEmail_ReturnsError(t *testing.T) {
	_, err := queries.NewLoginQuery("not-an-email", "s3cret!")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoginQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.LoginQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLoginQueryIsNotConstructed)
}
