// Package report selects order graphs, renders them to HTML and hands the
// result to the PDF converter and, for scheduled reports, the mailer.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"warsztat/internal/clock"
	"warsztat/internal/mailer"
	"warsztat/internal/pdf"
	"warsztat/internal/repo"
)

type Service struct {
	repo       repo.Repo
	converter  pdf.Converter
	sender     mailer.Sender
	clock      clock.Clock
	adminEmail string
}

func NewService(r repo.Repo, conv pdf.Converter, sender mailer.Sender, clk clock.Clock, adminEmail string) *Service {
	return &Service{repo: r, converter: conv, sender: sender, clock: clk, adminEmail: adminEmail}
}

// CustomerReport builds the PDF for one customer, optionally limited to
// orders created within [from, to]. Returns the bytes and the filename.
func (s *Service) CustomerReport(ctx context.Context, customerID int64, from, to *time.Time) ([]byte, string, error) {
	c, err := s.repo.CustomerWithOrders(ctx, customerID, from, to)
	if err != nil {
		return nil, "", err
	}
	now := s.clock.Now()
	buf, err := s.converter.Convert(RenderCustomerReport(c, from, to, now))
	if err != nil {
		slog.ErrorContext(ctx, "customer report conversion failed", "customer_id", customerID, "err", err)
		return nil, "", fmt.Errorf("convert customer report: %w", err)
	}
	return buf, CustomerReportFilename(c, now), nil
}

// VehicleReport builds the PDF for one vehicle's order history.
func (s *Service) VehicleReport(ctx context.Context, vehicleID int64, from, to *time.Time) ([]byte, string, error) {
	v, err := s.repo.VehicleWithOrders(ctx, vehicleID, from, to)
	if err != nil {
		return nil, "", err
	}
	now := s.clock.Now()
	buf, err := s.converter.Convert(RenderVehicleReport(v, from, to, now))
	if err != nil {
		slog.ErrorContext(ctx, "vehicle report conversion failed", "vehicle_id", vehicleID, "err", err)
		return nil, "", fmt.Errorf("convert vehicle report: %w", err)
	}
	return buf, VehicleReportFilename(v, now), nil
}

// MonthlyReport builds the PDF covering one calendar month.
func (s *Service) MonthlyReport(ctx context.Context, month time.Month, year int) ([]byte, string, error) {
	orders, err := s.repo.OrdersForMonth(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	buf, err := s.converter.Convert(RenderMonthlyReport(orders, month, year, s.clock.Now()))
	if err != nil {
		slog.ErrorContext(ctx, "monthly report conversion failed", "month", int(month), "year", year, "err", err)
		return nil, "", fmt.Errorf("convert monthly report: %w", err)
	}
	return buf, MonthlyReportFilename(month, year), nil
}

// ActiveOrdersReport builds the open-orders PDF as of now.
func (s *Service) ActiveOrdersReport(ctx context.Context) ([]byte, string, error) {
	orders, err := s.repo.ActiveOrders(ctx)
	if err != nil {
		return nil, "", err
	}
	now := s.clock.Now()
	buf, err := s.converter.Convert(RenderActiveOrdersReport(orders, now))
	if err != nil {
		slog.ErrorContext(ctx, "active orders report conversion failed", "err", err)
		return nil, "", fmt.Errorf("convert active orders report: %w", err)
	}
	return buf, ActiveOrdersReportFilename(now), nil
}

// EmailActiveOrdersReport generates the open-orders PDF and mails it to
// the configured admin address. Called by the schedulers.
func (s *Service) EmailActiveOrdersReport(ctx context.Context) error {
	buf, filename, err := s.ActiveOrdersReport(ctx)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	subject := fmt.Sprintf("Raport dzienny - aktywne zlecenia (%s)", now.Format(dateLayout))
	body := fmt.Sprintf(
		"W załączniku raport aktywnych zleceń wygenerowany %s.\n\nWiadomość wysłana automatycznie.",
		now.Format(dateLayout+" 15:04"))
	if err := s.sender.Send(s.adminEmail, subject, body, &mailer.Attachment{
		Filename: filename,
		Content:  buf,
	}); err != nil {
		slog.ErrorContext(ctx, "active orders report email failed", "recipient", s.adminEmail, "err", err)
		return fmt.Errorf("send active orders report: %w", err)
	}
	slog.InfoContext(ctx, "active orders report emailed",
		"recipient", s.adminEmail, "filename", filename, "bytes", len(buf))
	return nil
}
