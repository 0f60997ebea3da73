package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"autoskola_dashboard/models"
)

// ErrIncompleteData is returned when a form is requested before all of
// its input records are resolved. No partial document is ever produced.
var ErrIncompleteData = errors.New("document: incomplete input data")

// GenerateRegistrationForm renders the exam registration sheet
// (prijavnica) on a card-sized portrait page. Candidate, instructor and
// exam session must all be present.
func GenerateRegistrationForm(candidate *models.Candidate, instructor *models.Instructor, exam *models.ExamSession) ([]byte, string, error) {
	if candidate == nil || instructor == nil || exam == nil {
		return nil, "", ErrIncompleteData
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: 105, Ht: 148},
	})
	pdf.SetCompression(false)
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "PRIJAVNICA ZA ISPIT", "", 1, "C", false, 0, "")
	pdf.Ln(1)

	endDate := "-"
	if candidate.EndDate != nil {
		endDate = *candidate.EndDate
	}

	section(pdf, "PODACI O KANDIDATU", []string{
		fmt.Sprintf("Ime i prezime: %s %s", candidate.FirstName, candidate.LastName),
		fmt.Sprintf("Ime oca: %s", candidate.FatherName),
		fmt.Sprintf("Datum i mjesto rođenja: %s, %s", candidate.BirthDate, candidate.BirthPlace),
		fmt.Sprintf("Adresa: %s", candidate.Address),
		fmt.Sprintf("Telefon: %s", candidate.Phone),
		fmt.Sprintf("Kategorija: %s", candidate.Category),
		fmt.Sprintf("Broj upisa: %s", candidate.EnrollmentNumber),
	})
	section(pdf, "PODACI O AUTOŠKOLI", []string{
		fmt.Sprintf("Naziv: %s", instructor.SchoolName),
		fmt.Sprintf("Adresa: %s", instructor.SchoolAddress),
		fmt.Sprintf("Instruktor: %s %s", instructor.FirstName, instructor.LastName),
		fmt.Sprintf("Broj licence: %s", instructor.LicenseNumber),
		fmt.Sprintf("Broj rješenja: %s", instructor.DecisionNumber),
	})
	section(pdf, "PODACI O OBUCI", []string{
		fmt.Sprintf("Početak obuke: %s", candidate.StartDate),
		fmt.Sprintf("Kraj obuke: %s", endDate),
		fmt.Sprintf("Časova teorije: %d", candidate.TheoryHours),
		fmt.Sprintf("Časova vožnje: %d", candidate.DrivingHours),
	})
	section(pdf, "PODACI O ISPITU", []string{
		fmt.Sprintf("Vrsta ispita: %s", exam.Type),
		fmt.Sprintf("Datum i vrijeme: %s u %s", exam.Date, exam.Time),
		fmt.Sprintf("Mjesto: %s", exam.Location),
	})

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 7)
	for _, line := range []string{"Potpis kandidata", "Potpis instruktora", "Potpis ovlaštene osobe"} {
		pdf.CellFormat(0, 5, Latinize(line+": ____________________"), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("registration form: %w", err)
	}

	filename := fmt.Sprintf("prijavnica-%s-%s-%s.pdf", slug(candidate.LastName), slug(candidate.FirstName), exam.Date)
	return buf.Bytes(), filename, nil
}

func section(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(0, 5, Latinize(title), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	for _, line := range lines {
		pdf.CellFormat(0, 4, Latinize(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
}
