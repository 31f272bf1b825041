package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hotel-ops-backend/models/db"
)

type Provider interface {
	ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Number", "Type", "Title", "Requester", "Status", "Assignee", "Created", "Updated"}

func (i impl) ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Requests")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []dbmodels.Request, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Number"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.RequestNumber); err != nil {
			return row, err
		}

		// "Type"
		col++
		if err := writeColumn(f, sheet, col, row, item.EntityType.ToHuman()); err != nil {
			return row, err
		}

		// "Title"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Requester"
		col++
		if item.Requester != nil {
			if err := writeColumn(f, sheet, col, row, item.Requester.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Assignee"
		col++
		if item.CurrentAssignee != nil {
			if err := writeColumn(f, sheet, col, row, item.CurrentAssignee.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Created"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Updated"
		col++
		if err := writeColumn(f, sheet, col, row, item.UpdatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}
	}
	return row, nil
}
