package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aperrin/gardetonor/internal/repository"
	"github.com/aperrin/gardetonor/internal/resolve"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	contracts   repository.ContractRepository
	comparisons repository.ComparisonRepository
	logger      *slog.Logger
}

func NewService(contracts repository.ContractRepository, comparisons repository.ComparisonRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, comparisons: comparisons, logger: logger}
}

// ContractsXLSX returns a workbook of every contract with its resolved
// cost and latest potential saving. Cost columns go through the
// shape-tolerant resolver, so legacy records export as cleanly as
// current ones.
func (s *Service) ContractsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contrats"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Type",
		"Fournisseur",
		"Coût",
		"Coût annuel (€)",
		"Date de début",
		"Date anniversaire",
		"Économie potentielle (€/an)",
		"Validé",
		"Simulation",
		"Fichier source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range contracts {
		cost := resolve.Cost(c.ContractType, c.ContractData)

		// Latest market analysis, if any, supplies the savings column.
		var savings float64
		comps, err := s.comparisons.ListForContract(ctx, c.ID)
		if err == nil && len(comps) > 0 {
			savings = resolve.Savings(comps[0].ComparisonResult)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.ContractType)
		write(2, c.Provider)
		write(3, cost.Display)
		if cost.AnnualEquivalent != nil {
			write(4, *cost.AnnualEquivalent)
		} else {
			write(4, "")
		}
		write(5, c.StartDate.Format("02/01/2006"))
		write(6, c.AnniversaryDate.Format("02/01/2006"))
		write(7, savings)
		write(8, boolLabel(c.Validated))
		write(9, boolLabel(c.IsSimulation))
		write(10, c.OriginalFilename)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "D", 18)
	_ = f.SetColWidth(sheet, "E", "F", 16)
	_ = f.SetColWidth(sheet, "G", "G", 22)
	_ = f.SetColWidth(sheet, "H", "I", 10)
	_ = f.SetColWidth(sheet, "J", "J", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(contracts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func boolLabel(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}
