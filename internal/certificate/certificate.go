// Package certificate renders a license as a printable PDF document.
package certificate

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/protomem/licensing/internal/model"
)

const (
	_dateLayout = "2006-01-02"

	_pageMargin = 20.0
	_lineHeight = 7.0
	_labelWidth = 55.0
)

type Data struct {
	License     model.License
	Driver      model.Driver
	Test        *model.PsychometricTest
	GeneratedAt time.Time
}

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func Render(w io.Writer, data Data) error {
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(_pageMargin, _pageMargin, _pageMargin)
	pdf.SetAutoPageBreak(true, _pageMargin)
	pdf.SetTitle("Driver's license "+data.License.Number, true)
	pdf.SetCreator("licensing", true)
	pdf.AddPage()

	doc := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	doc.header()
	doc.driverSection(data.Driver, data.GeneratedAt)
	doc.licenseSection(data.License, data.GeneratedAt)
	if data.Test != nil {
		doc.testSection(*data.Test)
	}
	doc.footer(data.GeneratedAt)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}

	return nil
}

func WriteFile(path string, data Data) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Render(f, data)
}

func (d *document) header() {
	d.pdf.SetFillColor(0, 51, 102)
	d.pdf.SetTextColor(255, 255, 255)

	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 10, d.tr("REPUBLIC OF ECUADOR"), "", 1, "C", true, 0, "")
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.CellFormat(0, 8, d.tr("NATIONAL TRANSIT AGENCY"), "", 1, "C", true, 0, "")
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 10, d.tr("DRIVER'S LICENSE"), "", 1, "C", true, 0, "")

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(6)
}

func (d *document) section(title string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetFillColor(230, 236, 242)
	d.pdf.CellFormat(0, 8, d.tr(title), "B", 1, "L", true, 0, "")
	d.pdf.Ln(2)
}

func (d *document) row(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(_labelWidth, _lineHeight, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(0, _lineHeight, d.tr(value), "", 1, "L", false, 0, "")
}

func (d *document) driverSection(driver model.Driver, now time.Time) {
	d.section("DRIVER")

	d.row("National ID:", driver.NationalID)
	d.row("Last name:", driver.LastName)
	d.row("First name:", driver.FirstName)
	d.row("Birth date:", driver.BirthDate.Format(_dateLayout))
	d.row("Age:", fmt.Sprintf("%d years", driver.Age(now)))
	if driver.BloodType != nil {
		d.row("Blood type:", string(*driver.BloodType))
	}
	if driver.Address != nil {
		d.row("Address:", *driver.Address)
	}

	d.pdf.Ln(4)
}

func (d *document) licenseSection(license model.License, now time.Time) {
	d.section("LICENSE")

	d.row("Number:", license.Number)
	d.row("Type:", license.Type.Name())
	d.row("Issued on:", license.IssuedOn.Format(_dateLayout))
	d.row("Expires on:", license.ExpiresOn.Format(_dateLayout))
	d.row("Status:", license.StatusText(now))

	d.pdf.Ln(4)

	d.pdf.SetDrawColor(0, 51, 102)
	d.pdf.SetLineWidth(0.8)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 14, d.tr("VALID UNTIL "+license.ExpiresOn.Format(_dateLayout)), "1", 1, "C", false, 0, "")
	d.pdf.SetLineWidth(0.2)

	d.pdf.Ln(6)
}

func (d *document) testSection(test model.PsychometricTest) {
	d.section("PSYCHOMETRIC ASSESSMENT")

	d.row("Taken at:", test.TakenAt.Format(_dateLayout))
	d.row("Reaction:", score(test.Reaction))
	d.row("Attention:", score(test.Attention))
	d.row("Coordination:", score(test.Coordination))
	d.row("Perception:", score(test.Perception))
	d.row("Psychological:", score(test.Psychological))
	d.row("Average:", score(test.Average()))
	d.row("Result:", string(test.Result()))

	d.pdf.Ln(4)
}

func (d *document) footer(now time.Time) {
	d.pdf.SetY(-35)
	d.pdf.SetFont("Helvetica", "I", 8)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.CellFormat(0, 5, d.tr("This document certifies the license recorded by the National Transit Agency."), "T", 1, "C", false, 0, "")
	d.pdf.CellFormat(0, 5, d.tr("Generated on "+now.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
}

func score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
