package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	requestapimodels "hotel-ops-backend/models/api/request"
)

// GenerateDecisionSlip renders a printable summary of a decided request:
// the envelope data plus the full transition trail. Callers are expected to
// offer it only for terminal requests.
func GenerateDecisionSlip(request requestapimodels.RequestView, history []requestapimodels.HistoryView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDecisionSlip panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Decision slip %v", request.RequestNumber), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	line("Title", request.Title)
	line("Type", request.EntityType.ToHuman())
	line("Requester", request.RequesterName)
	line("Decision", request.Status.ToHuman())
	line("Created", request.CreatedAt.Format("02.01.2006 15:04"))
	line("Decided", request.UpdatedAt.Format("02.01.2006 15:04"))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Approval trail", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range history {
		entry := fmt.Sprintf("%v  %v -> %v  (%v)",
			item.Date.Format("02.01.2006 15:04"),
			item.FromStatus.ToHuman(),
			item.ToStatus.ToHuman(),
			item.ActorName)
		pdf.CellFormat(0, 7, entry, "", 1, "L", false, 0, "")
		if item.Note != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 6, "    "+item.Note, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
