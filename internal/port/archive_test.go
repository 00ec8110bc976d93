package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estatehub/internal/port"
)

func TestArchivedExport_Key(t *testing.T) {
	tests := []struct {
		file port.ArchivedExport
		want string
	}{
		{port.ArchivedExport{Kind: port.ExportKindCommission, Filename: "commission-report_2024-01-01_to_2024-01-31.pdf"}, "exports/commission/commission-report_2024-01-01_to_2024-01-31.pdf"},
		{port.ArchivedExport{Kind: port.ExportKindDaily, Filename: "daily-report_dana_2024-03-15.xlsx"}, "exports/daily/daily-report_dana_2024-03-15.xlsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.file.Key())
	}
}
