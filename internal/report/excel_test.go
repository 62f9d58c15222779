package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/report"
)

func TestBuildTransactionsWorkbook(t *testing.T) {
	team := model.TeamRed
	round := int64(11)
	txs := []model.Transaction{
		{
			ID:      10,
			IDRound: &round,
			Round: model.Round{
				ID: 11, Round: 3,
				Event: model.Event{ID: 2, Name: "Derby"},
			},
			User:            model.User{ID: 1, Username: "gallero"},
			Type:            model.TxTypeBet,
			Amount:          50,
			PreviousBalance: 200,
			CurrentBalance:  150,
			Team:            &team,
			CreatedAt:       time.Date(2025, 3, 9, 18, 30, 0, 0, time.UTC),
		},
	}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	buf, err := report.BuildTransactionsWorkbook(txs, start, end)
	assert.NoError(t, err)
	assert.NotEmpty(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	assert.NoError(t, err)
	defer f.Close()

	title, _ := f.GetCellValue("Transacciones", "A1")
	assert.Equal(t, "Arte Gallera", title)

	header, _ := f.GetCellValue("Transacciones", "A3")
	assert.Equal(t, "ID Transacción", header)
	lastHeader, _ := f.GetCellValue("Transacciones", "J3")
	assert.Equal(t, "Equipo", lastHeader)

	// Dates are rendered dd/mm/yyyy.
	date, _ := f.GetCellValue("Transacciones", "B4")
	assert.Equal(t, "09/03/2025", date)

	eventName, _ := f.GetCellValue("Transacciones", "C4")
	assert.Equal(t, "Derby", eventName)
	username, _ := f.GetCellValue("Transacciones", "E4")
	assert.Equal(t, "gallero", username)
	txType, _ := f.GetCellValue("Transacciones", "F4")
	assert.Equal(t, "Apostando", txType)
}

func TestBuildUsersWorkbook(t *testing.T) {
	users := []model.User{
		{ID: 1, Username: "gallero", Email: "g@example.com", FirstName: "Juan",
			LastName: "Pérez", InitialBalance: 150, IsActive: true},
		{ID: 2, Username: "retirado", IsActive: false},
	}

	buf, err := report.BuildUsersWorkbook(users)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	assert.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("Usuarios", "A1")
	assert.Equal(t, "ID", header)

	username, _ := f.GetCellValue("Usuarios", "B2")
	assert.Equal(t, "gallero", username)
	status, _ := f.GetCellValue("Usuarios", "G2")
	assert.Equal(t, "Activo", status)
	inactive, _ := f.GetCellValue("Usuarios", "G3")
	assert.Equal(t, "Inactivo", inactive)
}
