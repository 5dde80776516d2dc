package infra

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"kioskopos/internal/model"
)

// GenerateShiftReportPDF renders the reconciliation report for a closed
// shift: opening float, the shift's ledger rows, expected vs counted cash
// and the resulting difference. Returned as bytes for direct HTTP download.
func GenerateShiftReportPDF(businessName string, shift *model.Shift, txs []model.CashTransaction) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, businessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Cierre de caja", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Operador: %s", shift.UserName), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Apertura: %s", shift.StartDate.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	if shift.EndDate != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Cierre: %s", shift.EndDate.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Ledger table
	colTime := contentW * 0.14
	colType := contentW * 0.12
	colCat := contentW * 0.20
	colMethod := contentW * 0.18
	colAmount := contentW * 0.16
	colDesc := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colTime, 6, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colType, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCat, 6, "Categoría", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colMethod, 6, "Método", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, 6, "Monto", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colDesc, 6, "Descripción", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for i := range txs {
		t := &txs[i]
		tipo := "Ingreso"
		amount := t.Amount.StringFixed(2)
		if t.Type == model.TxExpense {
			tipo = "Egreso"
			amount = "-" + amount
		}
		desc := t.Description
		if len(desc) > 24 {
			desc = desc[:23] + "…"
		}
		pdf.CellFormat(colTime, 5, t.CreatedAt.Format("15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colType, 5, tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(colCat, 5, t.Category, "", 0, "L", false, 0, "")
		pdf.CellFormat(colMethod, 5, t.PaymentMethod, "", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, 5, "$"+amount, "", 0, "R", false, 0, "")
		pdf.CellFormat(colDesc, 5, desc, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Reconciliation summary
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Arqueo", "T", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	line := func(label, value string) {
		pdf.CellFormat(contentW*0.5, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.5, 6, value, "", 1, "R", false, 0, "")
	}
	line("Monto inicial", "$"+shift.OpeningCash.StringFixed(2))
	if shift.ExpectedCash != nil {
		line("Efectivo esperado", "$"+shift.ExpectedCash.StringFixed(2))
	}
	if shift.ClosingCash != nil {
		line("Efectivo contado", "$"+shift.ClosingCash.StringFixed(2))
	}
	if shift.Difference != nil && shift.Reconciliation != nil {
		pdf.SetFont("Helvetica", "B", 9)
		line(fmt.Sprintf("Diferencia (%s)", *shift.Reconciliation), "$"+shift.Difference.StringFixed(2))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
