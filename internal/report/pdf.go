package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

// StatementData is everything the PDF needs, already resolved; the builder
// touches no repository.
type StatementData struct {
	Username    string
	FullName    string
	EventDate   time.Time
	StartAmount float64
	EndAmount   float64
	Rounds      []RoundTable
}

// RoundTable is one round's section, rows newest first. TeamWinner is empty
// while the round is unresolved.
type RoundTable struct {
	Round      int
	TeamWinner string
	Rows       []StatementRow
}

type StatementRow struct {
	ID              int64
	Date            time.Time
	Type            string
	Amount          float64
	PreviousBalance float64
	CurrentBalance  float64
	Team            *string
}

const (
	pageWidth     = 820.0
	pageHeight    = 1000.0
	pageMargin    = 40.0
	breakCursor   = 700.0
	rowsPerChunk  = 10
	rowHeight     = 26.0
	captionHeight = 30.0
)

func winnerLabel(team string) (string, [3]int) {
	switch team {
	case model.TeamRed:
		return "Ganador Rojo", [3]int{220, 60, 60}
	case model.TeamGreen:
		return "Ganador Verde", [3]int{70, 170, 80}
	case model.TeamDraw:
		return "Tablas", [3]int{235, 150, 40}
	default:
		return "Sin ganador", [3]int{180, 180, 180}
	}
}

// BuildStatementPDF renders the per-event account statement fully into a
// buffer. Each page gets the dark background redrawn before any content.
func BuildStatementPDF(data StatementData) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	newPage := func() {
		pdf.AddPage()
		drawBackground(pdf)
	}
	newPage()

	drawHeader(pdf, data)
	cursor := 180.0

	for _, table := range data.Rounds {
		for start := 0; start < len(table.Rows); start += rowsPerChunk {
			end := start + rowsPerChunk
			if end > len(table.Rows) {
				end = len(table.Rows)
			}
			chunk := table.Rows[start:end]

			needed := captionHeight + rowHeight*float64(len(chunk)+1)
			if cursor+needed > breakCursor {
				newPage()
				cursor = pageMargin + 20
			}

			cursor = drawRoundChunk(pdf, table, chunk, start == 0, cursor)
			cursor += 20
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawBackground(pdf *gofpdf.Fpdf) {
	pdf.LinearGradient(0, 0, pageWidth, pageHeight,
		24, 26, 34, 10, 11, 16,
		0, 0, 0, 1)
}

func drawHeader(pdf *gofpdf.Fpdf, data StatementData) {
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(212, 175, 55)
	pdf.SetXY(pageMargin, 50)
	pdf.CellFormat(pageWidth-2*pageMargin, 32, "Arte Gallera", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(230, 230, 230)

	lines := []string{
		fmt.Sprintf("Usuario: %s", data.Username),
		fmt.Sprintf("Nombre: %s", data.FullName),
		fmt.Sprintf("Fecha del evento: %s", data.EventDate.Format(dateLayout)),
		fmt.Sprintf("Saldo inicial: %.2f    Saldo final: %.2f", data.StartAmount, data.EndAmount),
	}
	y := 95.0
	for _, line := range lines {
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(pageWidth-2*pageMargin, 16, line, "", 0, "L", false, 0, "")
		y += 20
	}
}

func drawRoundChunk(pdf *gofpdf.Fpdf, table RoundTable, rows []StatementRow, first bool, cursor float64) float64 {
	if first {
		label, rgb := winnerLabel(table.TeamWinner)
		pdf.SetFont("Helvetica", "B", 15)
		pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
		pdf.SetXY(pageMargin, cursor)
		pdf.CellFormat(pageWidth-2*pageMargin, 20,
			fmt.Sprintf("Pelea %d (%s)", table.Round, label), "", 0, "L", false, 0, "")
		cursor += captionHeight
	}

	widths := []float64{90, 110, 120, 110, 130, 130, 60}
	headers := []string{"ID", "Fecha", "Tipo", "Monto", "Balance anterior", "Balance actual", "Equipo"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(212, 175, 55)
	pdf.SetDrawColor(90, 90, 100)
	pdf.SetXY(pageMargin, cursor)
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", false, 0, "")
	}
	cursor += rowHeight

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(225, 225, 225)
	for _, row := range rows {
		team := ""
		if row.Team != nil {
			team = *row.Team
		}
		cells := []string{
			fmt.Sprintf("%d", row.ID),
			row.Date.Format(dateLayout),
			row.Type,
			fmt.Sprintf("%.2f", row.Amount),
			fmt.Sprintf("%.2f", row.PreviousBalance),
			fmt.Sprintf("%.2f", row.CurrentBalance),
			team,
		}
		pdf.SetXY(pageMargin, cursor)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "C", false, 0, "")
		}
		cursor += rowHeight
	}

	return cursor
}
