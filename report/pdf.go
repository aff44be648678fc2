// Package report renders a composed diet into a printable A4 PDF. The
// document language is Spanish, matching the coaching front office.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lontso23/FitnessCoachApp/entity"
)

// Column widths in millimeters.
const (
	foodColWidth     = 120.0
	quantityColWidth = 50.0
	totalsColWidth   = 42.5
	rowHeight        = 8.0
	headerRowHeight  = 10.0
)

// Filename derives the download name from the client, replacing spaces
// with underscores.
func Filename(clientName string) string {
	return fmt.Sprintf("dieta_%s.pdf", strings.ReplaceAll(clientName, " ", "_"))
}

// RenderDiet produces the paginated diet document: a centered title, one
// two-column table per meal with a totals row, and a closing four-column
// daily totals table. It has no side effects beyond reading its inputs.
func RenderDiet(diet *entity.Diet, client *entity.Client) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTopMargin(20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate so the Spanish labels keep their
	// accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("DIETA %s", strings.ToUpper(client.Name))), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	for _, meal := range diet.Meals {
		renderMeal(pdf, tr, meal)
	}

	renderDailyTotals(pdf, tr, diet)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderMeal writes one meal subtitle plus its food table.
func renderMeal(pdf *fpdf.Fpdf, tr func(string) string, meal entity.Meal) {
	// Meal header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, tr(meal.MealName), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Table header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(foodColWidth, headerRowHeight, "Alimento", "1", 0, "L", true, 0, "")
	pdf.CellFormat(quantityColWidth, headerRowHeight, "Cantidad (g)", "1", 1, "L", true, 0, "")

	// One row per food item, quantities rounded to whole grams
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range meal.Foods {
		pdf.CellFormat(foodColWidth, rowHeight, tr(item.FoodName), "1", 0, "L", true, 0, "")
		pdf.CellFormat(quantityColWidth, rowHeight, fmt.Sprintf("%.0f", item.QuantityG), "1", 1, "L", true, 0, "")
	}

	// Totals row: integer kcal, macros with one decimal
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	totals := fmt.Sprintf("Kcal: %.0f | P: %.1fg | C: %.1fg | G: %.1fg",
		meal.TotalKcal, meal.TotalProtein, meal.TotalCarbs, meal.TotalFats)
	pdf.CellFormat(foodColWidth, rowHeight, "TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(quantityColWidth, rowHeight, totals, "1", 1, "L", true, 0, "")

	pdf.Ln(8)
}

// renderDailyTotals writes the closing four-column summary table.
func renderDailyTotals(pdf *fpdf.Fpdf, tr func(string) string, diet *entity.Diet) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, "TOTALES DIARIOS", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Calorías", "Proteínas", "Carbohidratos", "Grasas"}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(totalsColWidth, headerRowHeight, tr(h), "1", ln, "C", true, 0, "")
	}

	values := []string{
		fmt.Sprintf("%.0f kcal", diet.TotalKcal),
		fmt.Sprintf("%.1fg", diet.TotalProtein),
		fmt.Sprintf("%.1fg", diet.TotalCarbs),
		fmt.Sprintf("%.1fg", diet.TotalFats),
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	pdf.SetTextColor(0, 0, 0)
	for i, v := range values {
		ln := 0
		if i == len(values)-1 {
			ln = 1
		}
		pdf.CellFormat(totalsColWidth, rowHeight, v, "1", ln, "C", true, 0, "")
	}
}
