package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
)

// csvHeader is the fixed column order of the export document.
var csvHeader = []string{"ID", "Amount", "Date", "Description", "Type", "Category"}

type ExportService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

func NewExportService(transactionRepo portsrepo.TransactionRepository) *ExportService {
	return &ExportService{transactionRepo: transactionRepo}
}

var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

func (s *ExportService) ExportTransactionsCSV(ctx context.Context, ownerID string, w io.Writer) error {
	txns, err := s.transactionRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for export", slog.String("owner_id", ownerID))
		return fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}

	for i := range txns {
		t := &txns[i]
		record := []string{
			t.TransactionID,
			t.Amount.String(),
			t.Date.Format("2006-01-02"),
			t.Description,
			string(t.Type),
			t.CategoryName,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrExport, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		s.LogError(ctx, err, "failed to flush export stream", slog.String("owner_id", ownerID))
		return fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}

	s.LogInfo(ctx, "transactions exported",
		slog.String("owner_id", ownerID),
		slog.Int("row_count", len(txns)))
	return nil
}
