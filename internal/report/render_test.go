package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/models"
)

var renderNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleOrder(id int64, status models.OrderStatus, created time.Time) models.ServiceOrder {
	veh := &models.Vehicle{
		Make: "Skoda", Model: "Octavia", RegistrationNumber: "WA 98765",
		Customer: &models.Customer{FirstName: "Jan", LastName: "Kowalski"},
	}
	return models.ServiceOrder{
		ID: id, Status: status, CreatedAt: created,
		Description: "Wymiana oleju",
		Vehicle:     veh,
		Tasks: []models.ServiceTask{
			{
				Description: "Robocizna",
				LaborCost:   100,
				UsedParts: []models.UsedPart{
					{Quantity: 2, Part: &models.Part{Name: "Filtr", UnitPrice: 50}},
				},
			},
		},
	}
}

func TestRenderCustomerReport_TotalsAndHeader(t *testing.T) {
	c := models.Customer{
		FirstName: "Jan", LastName: "Kowalski", PhoneNumber: "600100200",
		Vehicles: []models.Vehicle{
			{
				Make: "Skoda", Model: "Octavia", RegistrationNumber: "WA 98765",
				Orders: []models.ServiceOrder{sampleOrder(1, models.StatusCompleted, renderNow.AddDate(0, 0, -10))},
			},
		},
	}

	html := RenderCustomerReport(c, nil, nil, renderNow)
	assert.Contains(t, html, "Raport napraw klienta: Jan Kowalski")
	assert.Contains(t, html, "Skoda Octavia (WA 98765)")
	// labor 100 plus 2 x 50 parts
	assert.Contains(t, html, "200.00 zł")
	assert.Contains(t, html, "Suma końcowa")
}

func TestRenderCustomerReport_NoVehicles(t *testing.T) {
	c := models.Customer{FirstName: "Jan", LastName: "Kowalski", PhoneNumber: "600100200"}
	html := RenderCustomerReport(c, nil, nil, renderNow)
	assert.Contains(t, html, "Klient nie ma zarejestrowanych pojazdów.")
}

func TestRenderCustomerReport_EscapesHTML(t *testing.T) {
	c := models.Customer{FirstName: "<script>", LastName: "Kowalski", PhoneNumber: "1"}
	html := RenderCustomerReport(c, nil, nil, renderNow)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderVehicleReport_UnknownOwnerPlaceholder(t *testing.T) {
	v := models.Vehicle{Make: "Fiat", Model: "Panda", RegistrationNumber: "KR 11111", Year: 2015}
	html := RenderVehicleReport(v, nil, nil, renderNow)
	assert.Contains(t, html, UnknownCustomerLabel)
	assert.Contains(t, html, "Brak zleceń w wybranym okresie.")
}

func TestRenderVehicleReport_DateRangeLine(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	v := models.Vehicle{Make: "Fiat", Model: "Panda", RegistrationNumber: "KR 11111"}
	html := RenderVehicleReport(v, &from, &to, renderNow)
	assert.Contains(t, html, "od 01.01.2025")
	assert.Contains(t, html, "do 31.01.2025")
}

func TestRenderMonthlyReport_StatusPercentages(t *testing.T) {
	orders := []models.ServiceOrder{
		sampleOrder(1, models.StatusNew, renderNow),
		sampleOrder(2, models.StatusCompleted, renderNow),
		sampleOrder(3, models.StatusCompleted, renderNow),
	}
	html := RenderMonthlyReport(orders, time.June, 2025, renderNow)

	assert.Contains(t, html, "Raport miesięczny: czerwiec 2025")
	// every status shows up, zero counts included
	assert.Contains(t, html, "Anulowane")
	assert.Contains(t, html, "33.3%")
	assert.Contains(t, html, "66.7%")
	assert.Contains(t, html, "0.0%")
}

func TestRenderMonthlyReport_NoOrders(t *testing.T) {
	html := RenderMonthlyReport(nil, time.January, 2025, renderNow)
	assert.Contains(t, html, "Brak zleceń w tym miesiącu.")
	assert.Contains(t, html, "Przychód: 0.00 zł")
}

func TestRenderActiveOrdersReport_GroupsAndUrgent(t *testing.T) {
	assigned := sampleOrder(1, models.StatusInProgress, renderNow.AddDate(0, 0, -2))
	assigned.Mechanic = &models.User{FirstName: "Anna", LastName: "Nowak"}
	stale := sampleOrder(2, models.StatusNew, renderNow.AddDate(0, 0, -9))

	html := RenderActiveOrdersReport([]models.ServiceOrder{assigned, stale}, renderNow)
	assert.Contains(t, html, "Łącznie: 2 | Nowe: 1 | W realizacji: 1")
	assert.Contains(t, html, "Anna Nowak")
	assert.Contains(t, html, UnassignedLabel)
	assert.Contains(t, html, "Zlecenia pilne")
	// only the 9-day order is urgent
	urgentSection := html[strings.Index(html, "Zlecenia pilne"):]
	assert.Contains(t, urgentSection, "<td>2</td>")
	assert.NotContains(t, urgentSection, "<td>1</td>")
}

func TestRenderActiveOrdersReport_Empty(t *testing.T) {
	html := RenderActiveOrdersReport(nil, renderNow)
	assert.Contains(t, html, "Brak aktywnych zleceń.")
}
