package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectCustomer = regexp.QuoteMeta("SELECT id, name, city, email") + `\s+FROM customers\s+WHERE id = \$1`

func TestCustomerRepository_GetByID(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(selectCustomer).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "email"}).
			AddRow(7, "Ada", "London", "ada@x.io"))

	repo := &CustomerRepository{DB: conn}
	c, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, 7, c.ID)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, "London", c.City)
	assert.Equal(t, "ada@x.io", c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByID_NotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(selectCustomer).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "email"}))

	c, err := (&CustomerRepository{DB: conn}).GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByID_QueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(selectCustomer).WithArgs(1).WillReturnError(boom)

	_, err = (&CustomerRepository{DB: conn}).GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
