package report

import (
	"fmt"
	"strings"
	"time"

	"warsztat/internal/models"
)

// Polish month names used in monthly report titles and filenames.
var monthNames = [...]string{
	"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
	"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
}

// MonthName returns the Polish name of the month.
func MonthName(m time.Month) string { return monthNames[m-1] }

func sanitize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}

// CustomerReportFilename builds raport_klienta_<lastname>_<firstname>_<yyyyMMdd>.pdf.
func CustomerReportFilename(c models.Customer, now time.Time) string {
	return fmt.Sprintf("raport_klienta_%s_%s_%s.pdf",
		sanitize(c.LastName), sanitize(c.FirstName), now.Format("20060102"))
}

// VehicleReportFilename builds raport_pojazdu_<make>_<model>_<reg>_<yyyyMMdd>.pdf.
func VehicleReportFilename(v models.Vehicle, now time.Time) string {
	return fmt.Sprintf("raport_pojazdu_%s_%s_%s_%s.pdf",
		sanitize(v.Make), sanitize(v.Model), sanitize(v.RegistrationNumber),
		now.Format("20060102"))
}

// MonthlyReportFilename builds raport_miesięczny_<monthname>_<year>.pdf.
func MonthlyReportFilename(month time.Month, year int) string {
	return fmt.Sprintf("raport_miesięczny_%s_%d.pdf", MonthName(month), year)
}

// ActiveOrdersReportFilename builds aktywne_zlecenia_<yyyyMMdd>.pdf.
func ActiveOrdersReportFilename(now time.Time) string {
	return fmt.Sprintf("aktywne_zlecenia_%s.pdf", now.Format("20060102"))
}
