package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(Config{
		Host:     "db.local",
		Port:     "3306",
		User:     "gallera",
		Password: "secret",
		Name:     "artegallera",
	})

	assert.Equal(t,
		"gallera:secret@tcp(db.local:3306)/artegallera?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		dsn)

	t.Run("reports matched rows so no-op updates are not mistaken for missing rows", func(t *testing.T) {
		assert.Contains(t, dsn, "clientFoundRows=true")
	})
}
