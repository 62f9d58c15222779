package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/report"
)

func strPtr(s string) *string { return &s }

func TestBuildStatementPDF(t *testing.T) {
	base := report.StatementData{
		Username:    "gallero",
		FullName:    "Juan Pérez",
		EventDate:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		StartAmount: 200,
		EndAmount:   330,
	}

	t.Run("renders a valid document", func(t *testing.T) {
		data := base
		data.Rounds = []report.RoundTable{
			{
				Round:      1,
				TeamWinner: model.TeamRed,
				Rows: []report.StatementRow{
					{ID: 10, Date: base.EventDate, Type: "Apostando", Amount: 50,
						PreviousBalance: 200, CurrentBalance: 150, Team: strPtr(model.TeamRed)},
					{ID: 11, Date: base.EventDate, Type: "Ganancia", Amount: 180,
						PreviousBalance: 150, CurrentBalance: 330, Team: strPtr(model.TeamRed)},
				},
			},
		}

		buf, err := report.BuildStatementPDF(data)

		assert.NoError(t, err)
		assert.NotEmpty(t, buf)
		assert.Equal(t, "%PDF", string(buf[:4]))
	})

	t.Run("long statements spill onto additional pages", func(t *testing.T) {
		data := base
		rows := make([]report.StatementRow, 60)
		for i := range rows {
			rows[i] = report.StatementRow{ID: int64(i + 1), Date: base.EventDate, Type: "Apostando", Amount: 10}
		}
		data.Rounds = []report.RoundTable{{Round: 1, TeamWinner: model.TeamDraw, Rows: rows}}

		single, err := report.BuildStatementPDF(report.StatementData{
			Username: base.Username, EventDate: base.EventDate,
			Rounds: []report.RoundTable{{Round: 1, Rows: rows[:2]}},
		})
		assert.NoError(t, err)

		long, err := report.BuildStatementPDF(data)
		assert.NoError(t, err)
		assert.Greater(t, len(long), len(single))
	})

	t.Run("empty rounds still render the header", func(t *testing.T) {
		buf, err := report.BuildStatementPDF(base)

		assert.NoError(t, err)
		assert.NotEmpty(t, buf)
	})
}
