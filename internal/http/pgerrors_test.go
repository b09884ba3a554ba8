package httpserver

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPGErrorMessage_NonPGError(t *testing.T) {
	status, msg := PGErrorMessage(errors.New("boom"), "fallback")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "fallback", msg)
}

func TestPGErrorMessage_PartInUse(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "used_parts_part_id_fkey"}
	status, msg := PGErrorMessage(err, "fallback")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Part is used on a service task and cannot be removed.", msg)
}

func TestPGErrorMessage_DuplicateUsername(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	status, msg := PGErrorMessage(err, "fallback")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A user with this username already exists.", msg)
}

func TestPGErrorMessage_QuantityCheck(t *testing.T) {
	err := &pgconn.PgError{Code: "23514", ConstraintName: "used_parts_quantity_check"}
	status, msg := PGErrorMessage(err, "fallback")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Quantity must be positive.", msg)
}
