package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

const dateLayout = "02/01/2006"

var transactionHeaders = []string{
	"ID Transacción", "Fecha", "Evento", "Pelea", "Usuario",
	"Tipo", "Monto", "Balance anterior", "Balance actual", "Equipo",
}

// BuildTransactionsWorkbook renders the range export entirely in memory and
// returns the xlsx bytes.
func BuildTransactionsWorkbook(txs []model.Transaction, start, end time.Time) ([]byte, error) {
	const sheet = "Transacciones"

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return nil, err
	}

	f.MergeCell(sheet, "A1", "J1")
	f.SetCellValue(sheet, "A1", "Arte Gallera")
	f.SetCellStyle(sheet, "A1", "J1", titleStyle)

	f.MergeCell(sheet, "A2", "J2")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Transacciones del %s al %s",
		start.Format(dateLayout), end.Format(dateLayout)))

	for i, h := range transactionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "J3", headerStyle)

	row := 4
	for _, tx := range txs {
		eventName := ""
		round := ""
		if tx.IDRound != nil {
			eventName = tx.Round.Event.Name
			round = fmt.Sprintf("%d", tx.Round.Round)
		}
		team := ""
		if tx.Team != nil {
			team = *tx.Team
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.CreatedAt.Format(dateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), eventName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), round)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.User.Username)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(tx.Type))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tx.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), tx.PreviousBalance)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), tx.CurrentBalance)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), team)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "C", 24)
	f.SetColWidth(sheet, "D", "D", 8)
	f.SetColWidth(sheet, "E", "E", 18)
	f.SetColWidth(sheet, "F", "F", 12)
	f.SetColWidth(sheet, "G", "I", 16)
	f.SetColWidth(sheet, "J", "J", 10)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildUsersWorkbook renders the user roster export.
func BuildUsersWorkbook(users []model.User) ([]byte, error) {
	const sheet = "Usuarios"

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Username", "Email", "First Name", "Last Name", "Balance", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	for i, u := range users {
		row := i + 2
		status := "Inactivo"
		if u.IsActive {
			status = "Activo"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), u.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), u.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), u.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), u.FirstName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), u.LastName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), u.InitialBalance)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), status)
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "E", 18)
	f.SetColWidth(sheet, "F", "F", 12)
	f.SetColWidth(sheet, "G", "G", 10)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
