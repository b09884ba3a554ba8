package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/clock"
	"warsztat/internal/mailer"
	"warsztat/internal/models"
	"warsztat/internal/repo"
)

// stubRepo overrides only the selectors the report service touches.
type stubRepo struct {
	repo.Repo
	customer models.Customer
	vehicle  models.Vehicle
	orders   []models.ServiceOrder
	err      error
}

func (s *stubRepo) CustomerWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Customer, error) {
	return s.customer, s.err
}

func (s *stubRepo) VehicleWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Vehicle, error) {
	return s.vehicle, s.err
}

func (s *stubRepo) OrdersForMonth(ctx context.Context, month time.Month, year int) ([]models.ServiceOrder, error) {
	return s.orders, s.err
}

func (s *stubRepo) ActiveOrders(ctx context.Context) ([]models.ServiceOrder, error) {
	return s.orders, s.err
}

// fakeConverter records the HTML it saw and returns canned bytes.
type fakeConverter struct {
	html string
	err  error
}

func (f *fakeConverter) Convert(html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

// fakeSender records the one message it was asked to deliver.
type fakeSender struct {
	recipient  string
	subject    string
	body       string
	attachment *mailer.Attachment
	err        error
}

func (f *fakeSender) Send(recipient, subject, body string, attachment *mailer.Attachment) error {
	f.recipient = recipient
	f.subject = subject
	f.body = body
	f.attachment = attachment
	return f.err
}

var serviceNow = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

func newTestService(r repo.Repo, conv *fakeConverter, sender *fakeSender) *Service {
	return NewService(r, conv, sender, clock.Fixed(serviceNow), "szef@warsztat.pl")
}

func TestCustomerReport_ReturnsBytesAndFilename(t *testing.T) {
	r := &stubRepo{customer: models.Customer{FirstName: "Jan", LastName: "Kowalski", PhoneNumber: "1"}}
	conv := &fakeConverter{}
	svc := newTestService(r, conv, &fakeSender{})

	buf, filename, err := svc.CustomerReport(context.Background(), 7, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), buf)
	assert.Equal(t, "raport_klienta_Kowalski_Jan_20250615.pdf", filename)
	assert.Contains(t, conv.html, "Jan Kowalski")
}

func TestCustomerReport_PropagatesNotFound(t *testing.T) {
	r := &stubRepo{err: models.ErrCustomerNotFound}
	svc := newTestService(r, &fakeConverter{}, &fakeSender{})

	_, _, err := svc.CustomerReport(context.Background(), 7, nil, nil)
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestVehicleReport_ConverterFailurePropagates(t *testing.T) {
	r := &stubRepo{vehicle: models.Vehicle{Make: "Fiat", Model: "Panda", RegistrationNumber: "KR 1"}}
	conv := &fakeConverter{err: errors.New("wkhtmltopdf not found")}
	svc := newTestService(r, conv, &fakeSender{})

	_, _, err := svc.VehicleReport(context.Background(), 3, nil, nil)
	assert.ErrorContains(t, err, "convert vehicle report")
}

func TestMonthlyReport_Filename(t *testing.T) {
	svc := newTestService(&stubRepo{}, &fakeConverter{}, &fakeSender{})
	_, filename, err := svc.MonthlyReport(context.Background(), time.June, 2025)
	assert.NoError(t, err)
	assert.Equal(t, "raport_miesięczny_czerwiec_2025.pdf", filename)
}

func TestEmailActiveOrdersReport_SendsAttachment(t *testing.T) {
	r := &stubRepo{orders: []models.ServiceOrder{{ID: 1, Status: models.StatusNew, CreatedAt: serviceNow}}}
	sender := &fakeSender{}
	svc := newTestService(r, &fakeConverter{}, sender)

	err := svc.EmailActiveOrdersReport(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "szef@warsztat.pl", sender.recipient)
	assert.Equal(t, "Raport dzienny - aktywne zlecenia (15.06.2025)", sender.subject)
	if assert.NotNil(t, sender.attachment) {
		assert.Equal(t, "aktywne_zlecenia_20250615.pdf", sender.attachment.Filename)
		assert.Equal(t, []byte("%PDF-fake"), sender.attachment.Content)
	}
}

func TestEmailActiveOrdersReport_SenderFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: mailer.ErrIncompleteConfig}
	svc := newTestService(&stubRepo{}, &fakeConverter{}, sender)

	err := svc.EmailActiveOrdersReport(context.Background())
	assert.ErrorIs(t, err, mailer.ErrIncompleteConfig)
}
