package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"kioskopos/internal/infra"
)

// StockAlertPayload is the job envelope sent to QueueStockAlert.
type StockAlertPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
}

// StockAlertWorker mails the purchasing contact when a sale leaves a
// product at or below its minimum stock.
type StockAlertWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewStockAlertWorker(mailer *infra.Mailer, to string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, to: to}
}

func (w *StockAlertWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload StockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("stock_alert: invalid payload")
		return
	}
	if !w.mailer.Configured() || w.to == "" {
		log.Debug().Str("product", payload.ProductName).Msg("stock_alert: SMTP not configured, skipping")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.ProductName)
	body := fmt.Sprintf(
		"El producto %s quedó con %d unidades (mínimo %d). Conviene reponer.",
		payload.ProductName, payload.Stock, payload.MinStock,
	)
	if err := w.mailer.Send(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("product", payload.ProductName).Msg("stock_alert: failed to send email")
		return
	}
	log.Info().Str("product", payload.ProductName).Msg("stock_alert: sent")
}
