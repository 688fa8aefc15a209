package bookings

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
)

const exportSheet = "Bookings"

var exportColumns = []string{
	"ID",
	"Camper",
	"Start date",
	"End date",
	"Days",
	"Customer",
	"Email",
	"Phone",
	"Status",
	"Payment",
	"Base price",
	"Add-ons price",
	"Total price",
	"Created at",
}

// Export выгружает бронирования в XLSX
func (s *Service) Export(ctx context.Context, req *models.ListBookingsRequest, w io.Writer) (int, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Export: invalid filter: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Export: booking repository error: %v", err)
		return 0, fmt.Errorf("%w: Export - booking repository error: %v", ErrInternal, err)
	}

	campers, err := s.camperRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("Export: camper repository error: %v", err)
		return 0, fmt.Errorf("%w: Export - camper repository error: %v", ErrInternal, err)
	}
	names := make(map[int64]string, len(campers))
	for _, c := range campers {
		names[c.ID] = c.Name
	}

	if err := writeWorkbook(w, bookings, names); err != nil {
		s.logger.Error("Export: write workbook: %v", err)
		return 0, fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d bookings", len(bookings))
	return len(bookings), nil
}

func writeWorkbook(w io.Writer, bookings []*domain.Booking, camperNames map[int64]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, col); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(exportSheet, "A1", endCell, style)
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			camperNames[b.CamperID],
			b.StartDate.String(),
			b.EndDate.String(),
			b.Range().Days(),
			b.CustomerName,
			b.CustomerEmail,
			derefOrEmpty(b.CustomerPhone),
			string(b.Status),
			string(b.PaymentStatus),
			b.BasePrice,
			b.AttributesPrice,
			b.TotalPrice,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, val); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func derefOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
