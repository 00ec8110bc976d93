package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/export"
	"estatehub/internal/port"
	"estatehub/internal/service"
	"estatehub/mocks"
)

var archiveCfg = service.ExportArchiveConfig{LinkTTL: 15 * time.Minute}

func TestExportService_CommissionExcel_ArchivesCopy(t *testing.T) {
	commission := new(mocks.MockCommissionReportService)
	daily := new(mocks.MockDailyReportService)
	archive := new(mocks.MockExportArchive)
	log, _ := logtest.NewNullLogger()
	svc := service.NewExportService(commission, daily, archive, archiveCfg, log)

	report := storedCommissionReport()
	commission.On("GetByID", mock.Anything, report.ID).Return(report, nil)
	key := "exports/commission/commission-report_2024-01-01_to_2024-01-31.xlsx"
	archive.On("Store", mock.Anything, mock.MatchedBy(func(in port.ArchivedExport) bool {
		return in.Kind == port.ExportKindCommission && in.Key() == key && in.ContentType == export.ContentTypeExcel && len(in.Data) > 0
	})).Return(key, nil)
	archive.On("DownloadURL", mock.Anything, key, 15*time.Minute).Return("https://signed.example/x", nil)

	file, err := svc.CommissionExcel(context.Background(), report.ID)

	require.NoError(t, err)
	assert.Equal(t, "commission-report_2024-01-01_to_2024-01-31.xlsx", file.Filename)
	assert.Equal(t, export.ContentTypeExcel, file.ContentType)
	assert.NotEmpty(t, file.Data)
	assert.Equal(t, "https://signed.example/x", file.ArchiveURL)
	archive.AssertExpectations(t)
}

func TestExportService_CommissionPDF_ArchiveFailureStillReturnsFile(t *testing.T) {
	commission := new(mocks.MockCommissionReportService)
	daily := new(mocks.MockDailyReportService)
	archive := new(mocks.MockExportArchive)
	log, hook := logtest.NewNullLogger()
	svc := service.NewExportService(commission, daily, archive, archiveCfg, log)

	report := storedCommissionReport()
	commission.On("GetByID", mock.Anything, report.ID).Return(report, nil)
	archive.On("Store", mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

	file, err := svc.CommissionPDF(context.Background(), report.ID)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))
	assert.Empty(t, file.ArchiveURL)
	assert.NotEmpty(t, hook.AllEntries())
	archive.AssertNotCalled(t, "DownloadURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_DailyExcel_NoStorage(t *testing.T) {
	commission := new(mocks.MockCommissionReportService)
	daily := new(mocks.MockDailyReportService)
	log, _ := logtest.NewNullLogger()
	svc := service.NewExportService(commission, daily, nil, archiveCfg, log)

	report := &domain.DailyOperationsReport{
		ID:             uuid.New(),
		OperationsName: "Dana Ops",
		ReportDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	daily.On("GetByID", mock.Anything, report.ID).Return(report, nil)

	file, err := svc.DailyExcel(context.Background(), report.ID)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Filename, "daily-report_"))
	assert.True(t, strings.HasSuffix(file.Filename, "_2024-03-15.xlsx"))
	assert.Empty(t, file.ArchiveURL)
}

func TestExportService_DailyPDF_NotFound(t *testing.T) {
	commission := new(mocks.MockCommissionReportService)
	daily := new(mocks.MockDailyReportService)
	log, _ := logtest.NewNullLogger()
	svc := service.NewExportService(commission, daily, nil, archiveCfg, log)

	id := uuid.New()
	daily.On("GetByID", mock.Anything, id).Return(nil, domain.ErrReportNotFound)

	file, err := svc.DailyPDF(context.Background(), id)

	assert.Nil(t, file)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
