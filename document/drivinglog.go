// Package document renders the school's printable forms as PDF byte
// buffers. Layouts are deterministic: fixed page sizes, literal
// coordinates, no external resources. Nothing here touches the network
// or the filesystem; callers decide what to do with the bytes.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"autoskola_dashboard/models"
)

// The daily driving log always covers six one-hour slots starting at
// 08:00, regardless of how many are actually booked.
const (
	drivingLogSlots     = 6
	drivingLogFirstHour = 8
	slotMinutes         = 60
)

// GenerateDrivingLog renders the daily driving-log sheet for one
// instructor and date, and returns the PDF bytes, a deterministic
// download filename and the summary record the caller is expected to
// persist.
func GenerateDrivingLog(instructor models.Instructor, date string) ([]byte, string, models.DailyReport, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, Latinize("KNJIGA DNEVNIH VOŽNJI"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Metadata lines
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, Latinize(fmt.Sprintf("Autoškola: %s, %s", instructor.SchoolName, instructor.SchoolAddress)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, Latinize(fmt.Sprintf("Instruktor: %s %s", instructor.FirstName, instructor.LastName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Datum: %s", date), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"R.br.", "Datum", "Početak", "Kraj", "Trajanje", "Potpis instruktora", "Potpis kandidata"}
	widths := []float64{12, 40, 35, 35, 35, 55, 55}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, Latinize(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	report := models.DailyReport{
		InstructorID: instructor.ID,
		Date:         date,
		TotalHours:   drivingLogSlots,
	}

	pdf.SetFont("Helvetica", "", 9)
	for i := 0; i < drivingLogSlots; i++ {
		start := fmt.Sprintf("%02d:00", drivingLogFirstHour+i)
		end := fmt.Sprintf("%02d:00", drivingLogFirstHour+i+1)
		report.Activities = append(report.Activities, models.ActivitySlot{
			Start:           start,
			End:             end,
			DurationMinutes: slotMinutes,
		})

		cells := []string{fmt.Sprintf("%d.", i+1), date, start, end, fmt.Sprintf("%d min", slotMinutes), "", ""}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 12, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(130, 6, Latinize("Potpis instruktora: ___________________________"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, Latinize("Potpis ovlaštene osobe: ___________________________"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", models.DailyReport{}, fmt.Errorf("driving log: %w", err)
	}

	filename := fmt.Sprintf("knjiga-voznje-%s-%s.pdf", slug(instructor.LastName), date)
	return buf.Bytes(), filename, report, nil
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(Latinize(s), " ", "-"))
}
