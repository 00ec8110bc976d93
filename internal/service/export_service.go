package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"estatehub/internal/domain"
	"estatehub/internal/export"
	"estatehub/internal/logger"
	"estatehub/internal/port"
)

// ExportFile is a rendered report ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// ArchiveURL is a presigned link to the archived copy, empty when not archived.
	ArchiveURL string
}

// ExportArchiveConfig controls archiving of generated exports.
type ExportArchiveConfig struct {
	// LinkTTL is how long the archived copy's download link stays valid.
	LinkTTL time.Duration
}

// ExportService renders reports to Excel or PDF.
type ExportService interface {
	CommissionExcel(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	CommissionPDF(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	DailyExcel(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	DailyPDF(ctx context.Context, id uuid.UUID) (*ExportFile, error)
}

type exportService struct {
	commission CommissionReportService
	daily      DailyReportService
	archive    port.ExportArchive
	cfg        ExportArchiveConfig
	log        logrus.FieldLogger
}

// NewExportService creates a new ExportService. archive may be nil to disable archiving.
func NewExportService(
	commission CommissionReportService,
	daily DailyReportService,
	archive port.ExportArchive,
	cfg ExportArchiveConfig,
	log logrus.FieldLogger,
) ExportService {
	return &exportService{
		commission: commission,
		daily:      daily,
		archive:    archive,
		cfg:        cfg,
		log:        log,
	}
}

type commissionRenderer func(*domain.CommissionReport) ([]byte, error)

type dailyRenderer func(*domain.DailyOperationsReport) ([]byte, error)

func (s *exportService) CommissionExcel(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	return s.commissionFile(ctx, id, export.CommissionExcel, export.ExtExcel, export.ContentTypeExcel)
}

func (s *exportService) CommissionPDF(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	return s.commissionFile(ctx, id, export.CommissionPDF, export.ExtPDF, export.ContentTypePDF)
}

func (s *exportService) DailyExcel(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	return s.dailyFile(ctx, id, export.DailyExcel, export.ExtExcel, export.ContentTypeExcel)
}

func (s *exportService) DailyPDF(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	return s.dailyFile(ctx, id, export.DailyPDF, export.ExtPDF, export.ContentTypePDF)
}

func (s *exportService) commissionFile(ctx context.Context, id uuid.UUID, render commissionRenderer, ext, contentType string) (*ExportFile, error) {
	report, err := s.commission.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := render(report)
	if err != nil {
		return nil, err
	}
	file := &ExportFile{
		Filename:    export.CommissionFilename(report, ext),
		ContentType: contentType,
		Data:        data,
	}
	s.archiveCopy(ctx, port.ExportKindCommission, file)
	return file, nil
}

func (s *exportService) dailyFile(ctx context.Context, id uuid.UUID, render dailyRenderer, ext, contentType string) (*ExportFile, error) {
	report, err := s.daily.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := render(report)
	if err != nil {
		return nil, err
	}
	file := &ExportFile{
		Filename:    export.DailyFilename(report, ext),
		ContentType: contentType,
		Data:        data,
	}
	s.archiveCopy(ctx, port.ExportKindDaily, file)
	return file, nil
}

// archiveCopy stores the file under exports/<kind>/. Failures never fail the download.
func (s *exportService) archiveCopy(ctx context.Context, kind port.ExportKind, file *ExportFile) {
	if s.archive == nil {
		return
	}
	key, err := s.archive.Store(ctx, port.ArchivedExport{
		Kind:        kind,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		logger.LogError(s.log, "export", "archive", file.Filename, err)
		return
	}

	url, err := s.archive.DownloadURL(ctx, key, s.cfg.LinkTTL)
	if err != nil {
		logger.LogError(s.log, "export", "presign", key, err)
		return
	}
	file.ArchiveURL = url
}
