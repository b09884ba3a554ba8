package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/models"
)

var testDay = time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC)

func TestCustomerReportFilename(t *testing.T) {
	c := models.Customer{FirstName: "Jan", LastName: "Kowalski"}
	assert.Equal(t, "raport_klienta_Kowalski_Jan_20250307.pdf",
		CustomerReportFilename(c, testDay))
}

func TestCustomerReportFilename_SpacesBecomeUnderscores(t *testing.T) {
	c := models.Customer{FirstName: "Anna Maria", LastName: "Nowak Kowalska"}
	assert.Equal(t, "raport_klienta_Nowak_Kowalska_Anna_Maria_20250307.pdf",
		CustomerReportFilename(c, testDay))
}

func TestVehicleReportFilename(t *testing.T) {
	v := models.Vehicle{Make: "Toyota", Model: "Corolla", RegistrationNumber: "KR 12345"}
	assert.Equal(t, "raport_pojazdu_Toyota_Corolla_KR_12345_20250307.pdf",
		VehicleReportFilename(v, testDay))
}

func TestMonthlyReportFilename_PolishMonthName(t *testing.T) {
	assert.Equal(t, "raport_miesięczny_marzec_2025.pdf",
		MonthlyReportFilename(time.March, 2025))
	assert.Equal(t, "raport_miesięczny_październik_2024.pdf",
		MonthlyReportFilename(time.October, 2024))
}

func TestActiveOrdersReportFilename(t *testing.T) {
	assert.Equal(t, "aktywne_zlecenia_20250307.pdf", ActiveOrdersReportFilename(testDay))
}
