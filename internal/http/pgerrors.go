package httpserver

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGErrorMessage maps common Postgres errors to user-friendly HTTP status + message.
// If err is not a pg error, returns 500 with the provided fallback message.
func PGErrorMessage(err error, fallback string) (int, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Unknown error type; hide details
		return http.StatusInternalServerError, fallback
	}

	status := http.StatusBadRequest
	msg := fallback

	switch pgErr.Code {
	case "23505": // unique_violation
		status = http.StatusConflict
		switch pgErr.ConstraintName {
		case "users_username_key":
			msg = "A user with this username already exists."
		default:
			msg = "Duplicate value violates a unique constraint."
		}
	case "23503": // foreign_key_violation
		switch pgErr.ConstraintName {
		case "used_parts_part_id_fkey":
			msg = "Part is used on a service task and cannot be removed."
		case "vehicles_customer_id_fkey":
			msg = "Customer does not exist."
		case "service_orders_vehicle_id_fkey":
			msg = "Vehicle does not exist."
		case "service_orders_mechanic_id_fkey":
			msg = "Mechanic does not exist."
		case "service_tasks_service_order_id_fkey", "comments_service_order_id_fkey":
			msg = "Service order does not exist."
		case "used_parts_service_task_id_fkey":
			msg = "Service task does not exist."
		default:
			msg = "Referenced record not found."
		}
	case "23514": // check_violation
		switch pgErr.ConstraintName {
		case "used_parts_quantity_check":
			msg = "Quantity must be positive."
		case "service_orders_status_check":
			msg = "Unknown order status."
		default:
			msg = "Value violates a check constraint."
		}
	case "23502": // not_null_violation
		msg = "Missing required field."
	case "22P02": // invalid_text_representation
		msg = "Invalid value format."
	case "22007": // invalid_datetime_format
		msg = "Invalid date/time format."
	case "22001": // string_data_right_truncation
		msg = "Value is too long."
	case "22003": // numeric_value_out_of_range
		msg = "Numeric value out of range."
	default:
		// For any other PG error, avoid leaking internals
		msg = fallback
	}

	return status, msg
}
