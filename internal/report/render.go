package report

import (
	"fmt"
	"html"
	"strings"
	"time"

	"warsztat/internal/models"
	"warsztat/internal/pricing"
)

// Renderers build the HTML handed to the PDF converter. All labels are
// Polish to match the generated documents the workshop hands out.

// UnknownCustomerLabel substitutes for a missing customer reference.
const UnknownCustomerLabel = "Nieznany klient"

const dateLayout = "02.01.2006"

func money(v float64) string { return fmt.Sprintf("%.2f zł", v) }

func esc(s string) string { return html.EscapeString(s) }

func htmlHeader(b *strings.Builder, title string) {
	b.WriteString(`<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
h1 { font-size: 20px; border-bottom: 2px solid #444; padding-bottom: 6px; }
h2 { font-size: 16px; margin-top: 24px; }
h3 { font-size: 13px; margin-bottom: 4px; }
table { width: 100%; border-collapse: collapse; margin: 8px 0 16px 0; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background: #eee; }
td.num, th.num { text-align: right; }
p.empty { font-style: italic; color: #666; }
p.total { font-size: 14px; font-weight: bold; }
.urgent { color: #a00; }
</style>
</head>
<body>
`)
	fmt.Fprintf(b, "<h1>%s</h1>\n", esc(title))
}

func htmlFooter(b *strings.Builder, generatedAt time.Time) {
	fmt.Fprintf(b, "<p>Wygenerowano: %s</p>\n</body>\n</html>\n",
		generatedAt.Format(dateLayout+" 15:04"))
}

func dateRangeLine(b *strings.Builder, from, to *time.Time) {
	if from == nil && to == nil {
		return
	}
	b.WriteString("<p>Zakres dat: ")
	if from != nil {
		fmt.Fprintf(b, "od %s ", from.Format(dateLayout))
	}
	if to != nil {
		fmt.Fprintf(b, "do %s", to.Format(dateLayout))
	}
	b.WriteString("</p>\n")
}

// writeOrderDetail renders one order's task and part breakdown with a subtotal.
func writeOrderDetail(b *strings.Builder, o models.ServiceOrder) {
	fmt.Fprintf(b, "<h3>Zlecenie #%d z dnia %s (%s)</h3>\n",
		o.ID, o.CreatedAt.Format(dateLayout), esc(statusLabel(o.Status)))
	if o.Description != "" {
		fmt.Fprintf(b, "<p>%s</p>\n", esc(o.Description))
	}
	fmt.Fprintf(b, "<p>Mechanik: %s</p>\n", esc(orderMechanicLabel(o)))
	if len(o.Tasks) == 0 {
		b.WriteString("<p class=\"empty\">Brak czynności w zleceniu.</p>\n")
		return
	}
	b.WriteString("<table>\n<tr><th>Czynność</th><th class=\"num\">Robocizna</th><th class=\"num\">Części</th><th class=\"num\">Razem</th></tr>\n")
	for _, t := range o.Tasks {
		fmt.Fprintf(b, "<tr><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
			esc(t.Description), money(t.LaborCost), money(pricing.PartsCost(t)), money(pricing.TaskCost(t)))
		for _, up := range t.UsedParts {
			if up.Part == nil {
				continue
			}
			fmt.Fprintf(b, "<tr><td>&nbsp;&nbsp;%s × %d</td><td class=\"num\"></td><td class=\"num\">%s</td><td class=\"num\"></td></tr>\n",
				esc(up.Part.Name), up.Quantity, money(float64(up.Quantity)*up.Part.UnitPrice))
		}
	}
	fmt.Fprintf(b, "<tr><th colspan=\"3\">Koszt zlecenia</th><th class=\"num\">%s</th></tr>\n</table>\n",
		money(pricing.OrderCost(o)))
}

func statusLabel(s models.OrderStatus) string {
	switch s {
	case models.StatusNew:
		return "Nowe"
	case models.StatusInProgress:
		return "W realizacji"
	case models.StatusCompleted:
		return "Zakończone"
	case models.StatusCancelled:
		return "Anulowane"
	}
	return string(s)
}

func orderMechanicLabel(o models.ServiceOrder) string {
	if o.Mechanic == nil {
		return UnassignedLabel
	}
	return o.Mechanic.FullName()
}

func vehicleLabel(v models.Vehicle) string {
	return fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.RegistrationNumber)
}

// RenderCustomerReport lists the customer's vehicles, a per-vehicle summary
// and every in-range order in detail, closing with a grand total.
func RenderCustomerReport(c models.Customer, from, to *time.Time, now time.Time) string {
	var b strings.Builder
	htmlHeader(&b, fmt.Sprintf("Raport napraw klienta: %s %s", c.FirstName, c.LastName))
	fmt.Fprintf(&b, "<p>Telefon: %s</p>\n", esc(c.PhoneNumber))
	if c.Email != nil {
		fmt.Fprintf(&b, "<p>E-mail: %s</p>\n", esc(*c.Email))
	}
	dateRangeLine(&b, from, to)

	if len(c.Vehicles) == 0 {
		b.WriteString("<p class=\"empty\">Klient nie ma zarejestrowanych pojazdów.</p>\n")
		htmlFooter(&b, now)
		return b.String()
	}

	b.WriteString("<h2>Podsumowanie pojazdów</h2>\n")
	b.WriteString("<table>\n<tr><th>Pojazd</th><th class=\"num\">Liczba zleceń</th><th class=\"num\">Koszt łączny</th></tr>\n")
	var grand float64
	for _, v := range c.Vehicles {
		total := pricing.OrdersTotal(v.Orders)
		grand += total
		fmt.Fprintf(&b, "<tr><td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td></tr>\n",
			esc(vehicleLabel(v)), len(v.Orders), money(total))
	}
	b.WriteString("</table>\n")

	for _, v := range c.Vehicles {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(vehicleLabel(v)))
		if len(v.Orders) == 0 {
			b.WriteString("<p class=\"empty\">Brak zleceń w wybranym okresie.</p>\n")
			continue
		}
		for _, o := range v.Orders {
			writeOrderDetail(&b, o)
		}
	}

	fmt.Fprintf(&b, "<p class=\"total\">Suma końcowa: %s</p>\n", money(grand))
	htmlFooter(&b, now)
	return b.String()
}

// RenderVehicleReport is the single-vehicle variant of the customer report.
func RenderVehicleReport(v models.Vehicle, from, to *time.Time, now time.Time) string {
	var b strings.Builder
	htmlHeader(&b, fmt.Sprintf("Raport napraw pojazdu: %s", vehicleLabel(v)))
	owner := UnknownCustomerLabel
	if v.Customer != nil {
		owner = v.Customer.FirstName + " " + v.Customer.LastName
	}
	fmt.Fprintf(&b, "<p>Właściciel: %s</p>\n", esc(owner))
	if v.VIN != nil {
		fmt.Fprintf(&b, "<p>VIN: %s</p>\n", esc(*v.VIN))
	}
	fmt.Fprintf(&b, "<p>Rok produkcji: %d</p>\n", v.Year)
	dateRangeLine(&b, from, to)

	if len(v.Orders) == 0 {
		b.WriteString("<p class=\"empty\">Brak zleceń w wybranym okresie.</p>\n")
		htmlFooter(&b, now)
		return b.String()
	}

	fmt.Fprintf(&b, "<p>Liczba zleceń: %d</p>\n", len(v.Orders))
	for _, o := range v.Orders {
		writeOrderDetail(&b, o)
	}
	fmt.Fprintf(&b, "<p class=\"total\">Suma końcowa: %s</p>\n", money(pricing.OrdersTotal(v.Orders)))
	htmlFooter(&b, now)
	return b.String()
}

// RenderMonthlyReport covers one calendar month: revenue, status
// distribution with percentages, per-mechanic breakdown and the full
// order listing.
func RenderMonthlyReport(orders []models.ServiceOrder, month time.Month, year int, now time.Time) string {
	var b strings.Builder
	htmlHeader(&b, fmt.Sprintf("Raport miesięczny: %s %d", MonthName(month), year))

	total := pricing.OrdersTotal(orders)
	fmt.Fprintf(&b, "<p>Liczba zleceń: %d</p>\n<p>Przychód: %s</p>\n", len(orders), money(total))

	b.WriteString("<h2>Rozkład statusów</h2>\n")
	b.WriteString("<table>\n<tr><th>Status</th><th class=\"num\">Liczba</th><th class=\"num\">Udział</th></tr>\n")
	for _, sc := range StatusDistribution(orders) {
		pct := 0.0
		if len(orders) > 0 {
			pct = float64(sc.Count) / float64(len(orders)) * 100
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td class=\"num\">%d</td><td class=\"num\">%.1f%%</td></tr>\n",
			esc(statusLabel(sc.Status)), sc.Count, pct)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Mechanicy</h2>\n")
	breakdown := MechanicBreakdown(orders)
	if len(breakdown) == 0 {
		b.WriteString("<p class=\"empty\">Brak zleceń w tym miesiącu.</p>\n")
	} else {
		b.WriteString("<table>\n<tr><th>Mechanik</th><th class=\"num\">Zlecenia</th><th class=\"num\">Przychód</th><th class=\"num\">Średnia wartość</th></tr>\n")
		for _, m := range breakdown {
			fmt.Fprintf(&b, "<tr><td>%s</td><td class=\"num\">%d</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
				esc(m.Name), m.Orders, money(m.Revenue), money(m.AverageValue))
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("<h2>Lista zleceń</h2>\n")
	if len(orders) == 0 {
		b.WriteString("<p class=\"empty\">Brak zleceń w tym miesiącu.</p>\n")
	} else {
		b.WriteString("<table>\n<tr><th>#</th><th>Data</th><th>Pojazd</th><th>Mechanik</th><th>Status</th><th class=\"num\">Koszt</th></tr>\n")
		var running float64
		for _, o := range orders {
			cost := pricing.OrderCost(o)
			running += cost
			veh := ""
			if o.Vehicle != nil {
				veh = vehicleLabel(*o.Vehicle)
			}
			fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class=\"num\">%s</td></tr>\n",
				o.ID, o.CreatedAt.Format(dateLayout), esc(veh),
				esc(orderMechanicLabel(o)), esc(statusLabel(o.Status)), money(cost))
		}
		fmt.Fprintf(&b, "<tr><th colspan=\"5\">Razem</th><th class=\"num\">%s</th></tr>\n</table>\n", money(running))
	}

	htmlFooter(&b, now)
	return b.String()
}

// RenderActiveOrdersReport lists open orders grouped by mechanic, with an
// urgent section for orders older than a week.
func RenderActiveOrdersReport(orders []models.ServiceOrder, now time.Time) string {
	var b strings.Builder
	htmlHeader(&b, fmt.Sprintf("Aktywne zlecenia na dzień %s", now.Format(dateLayout)))

	var newCount, inProgressCount int
	for _, o := range orders {
		switch o.Status {
		case models.StatusNew:
			newCount++
		case models.StatusInProgress:
			inProgressCount++
		}
	}
	fmt.Fprintf(&b, "<p>Łącznie: %d | Nowe: %d | W realizacji: %d</p>\n",
		len(orders), newCount, inProgressCount)

	if len(orders) == 0 {
		b.WriteString("<p class=\"empty\">Brak aktywnych zleceń.</p>\n")
		htmlFooter(&b, now)
		return b.String()
	}

	names, groups := GroupByMechanic(orders)
	for _, name := range names {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(name))
		b.WriteString("<table>\n<tr><th>#</th><th>Data</th><th>Pojazd</th><th>Klient</th><th>Status</th><th class=\"num\">Wiek (dni)</th></tr>\n")
		for _, o := range groups[name] {
			veh, cust := "", UnknownCustomerLabel
			if o.Vehicle != nil {
				veh = vehicleLabel(*o.Vehicle)
				if o.Vehicle.Customer != nil {
					cust = o.Vehicle.Customer.FirstName + " " + o.Vehicle.Customer.LastName
				}
			}
			fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class=\"num\">%d</td></tr>\n",
				o.ID, o.CreatedAt.Format(dateLayout), esc(veh), esc(cust),
				esc(statusLabel(o.Status)), OrderAgeDays(o, now))
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("<h2 class=\"urgent\">Zlecenia pilne (powyżej 7 dni)</h2>\n")
	urgent := UrgentOrders(orders, now)
	if len(urgent) == 0 {
		b.WriteString("<p class=\"empty\">Brak zleceń pilnych.</p>\n")
	} else {
		b.WriteString("<table>\n<tr><th>#</th><th>Data</th><th>Pojazd</th><th>Mechanik</th><th class=\"num\">Wiek (dni)</th></tr>\n")
		for _, o := range urgent {
			veh := ""
			if o.Vehicle != nil {
				veh = vehicleLabel(*o.Vehicle)
			}
			fmt.Fprintf(&b, "<tr class=\"urgent\"><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td class=\"num\">%d</td></tr>\n",
				o.ID, o.CreatedAt.Format(dateLayout), esc(veh),
				esc(orderMechanicLabel(o)), OrderAgeDays(o, now))
		}
		b.WriteString("</table>\n")
	}

	htmlFooter(&b, now)
	return b.String()
}
