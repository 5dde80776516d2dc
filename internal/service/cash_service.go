package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
)

type CashService interface {
	// Shifts
	OpenShift(ctx context.Context, userID uuid.UUID, req dto.OpenShiftRequest) (*dto.ShiftResponse, error)
	CloseShift(ctx context.Context, userID uuid.UUID, req dto.CloseShiftRequest) (*dto.ShiftResponse, error)
	CurrentShift(ctx context.Context, userID uuid.UUID) (*dto.ShiftResponse, error)
	ShiftHistory(ctx context.Context, limit int) ([]dto.ShiftResponse, error)

	// Ledger
	AddTransaction(ctx context.Context, userID uuid.UUID, req dto.TransactionCreate) (*dto.TransactionResponse, error)
	Ledger(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerResponse, error)
	ExportCSV(ctx context.Context, filter dto.LedgerFilter) ([]byte, error)

	// ShiftDetail returns a closed or open shift with its transactions,
	// used by the reconciliation report.
	ShiftDetail(ctx context.Context, shiftID uuid.UUID) (*model.Shift, []model.CashTransaction, error)
}

type cashService struct {
	repo     repository.CashRepository
	userRepo repository.UserRepository
	loc      *time.Location
}

func NewCashService(repo repository.CashRepository, userRepo repository.UserRepository, loc *time.Location) CashService {
	return &cashService{repo: repo, userRepo: userRepo, loc: loc}
}

func (s *cashService) OpenShift(ctx context.Context, userID uuid.UUID, req dto.OpenShiftRequest) (*dto.ShiftResponse, error) {
	if req.OpeningCash.IsNegative() {
		return nil, errInput("el monto inicial no puede ser negativo")
	}
	// One open shift per operator
	if _, err := s.repo.FindOpenShiftByUser(ctx, userID); err == nil {
		return nil, ErrInvalidState
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	shift := &model.Shift{
		UserID:      user.ID,
		UserName:    user.Name,
		OpeningCash: req.OpeningCash,
		Status:      "abierta",
		StartDate:   time.Now(),
	}
	if err := s.repo.CreateShift(ctx, shift); err != nil {
		return nil, err
	}
	resp := shiftToResponse(shift)
	return &resp, nil
}

// CloseShift records the counted drawer and the advisory reconciliation.
// The counted figure is accepted even when it disagrees with the expected
// cash; the difference is stored, never corrected.
func (s *cashService) CloseShift(ctx context.Context, userID uuid.UUID, req dto.CloseShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindOpenShiftByUser(ctx, userID)
	if err != nil {
		return nil, ErrInvalidState
	}

	txs, err := s.repo.ListByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}

	expected := ExpectedCash(shift.OpeningCash, txs)
	diff, outcome := Reconcile(expected, req.ClosingCash)

	now := time.Now()
	shift.Status = "cerrada"
	shift.EndDate = &now
	shift.ClosingCash = &req.ClosingCash
	shift.ExpectedCash = &expected
	shift.Difference = &diff
	shift.Reconciliation = &outcome

	if err := s.repo.UpdateShift(ctx, shift); err != nil {
		return nil, err
	}
	resp := shiftToResponse(shift)
	return &resp, nil
}

func (s *cashService) CurrentShift(ctx context.Context, userID uuid.UUID) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindOpenShiftByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := shiftToResponse(shift)
	return &resp, nil
}

func (s *cashService) ShiftHistory(ctx context.Context, limit int) ([]dto.ShiftResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	shifts, err := s.repo.ListShifts(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = shiftToResponse(&shifts[i])
	}
	return resp, nil
}

func (s *cashService) AddTransaction(ctx context.Context, userID uuid.UUID, req dto.TransactionCreate) (*dto.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, errInput("el monto debe ser mayor a cero")
	}
	shift, err := s.repo.FindOpenShiftByUser(ctx, userID)
	if err != nil {
		return nil, ErrInvalidState
	}

	tx := &model.CashTransaction{
		ShiftID:       shift.ID,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	resp := transactionToResponse(tx)
	return &resp, nil
}

func (s *cashService) Ledger(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerResponse, error) {
	txs, err := s.transactionsFor(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.LedgerResponse{
		Summary: dto.LedgerSummary{
			IncomeTotal:  IncomeTotal(txs),
			ExpenseTotal: ExpenseTotal(txs),
			Balance:      Balance(txs),
			CashIncome:   CashIncome(txs),
			CashExpense:  CashExpense(txs),
			InBox:        InBox(txs),
			ByMethod:     BalanceByMethod(txs),
		},
		Transactions: make([]dto.TransactionResponse, len(txs)),
	}
	for i := range txs {
		resp.Transactions[i] = transactionToResponse(&txs[i])
	}
	return resp, nil
}

// ExportCSV renders the filtered ledger in the operator's spreadsheet
// format, with dates and times in the business timezone.
func (s *cashService) ExportCSV(ctx context.Context, filter dto.LedgerFilter) ([]byte, error) {
	txs, err := s.transactionsFor(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Fecha", "Hora", "Tipo", "Categoría", "Monto", "Método de Pago", "Descripción"}); err != nil {
		return nil, err
	}
	for i := range txs {
		t := &txs[i]
		local := t.CreatedAt.In(s.loc)
		tipo := "Ingreso"
		if t.Type == model.TxExpense {
			tipo = "Egreso"
		}
		row := []string{
			local.Format("02/01/2006"),
			local.Format("15:04"),
			tipo,
			t.Category,
			t.Amount.StringFixed(2),
			t.PaymentMethod,
			t.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *cashService) ShiftDetail(ctx context.Context, shiftID uuid.UUID) (*model.Shift, []model.CashTransaction, error) {
	shift, err := s.repo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	txs, err := s.repo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, nil, err
	}
	return shift, txs, nil
}

func (s *cashService) transactionsFor(ctx context.Context, filter dto.LedgerFilter) ([]model.CashTransaction, error) {
	from, to, bounded := PeriodRange(filter.Period, filter.From, filter.To, s.loc, time.Now())
	if !bounded {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByDateRange(ctx, from, to)
}

func shiftToResponse(sh *model.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:             sh.ID,
		UserID:         sh.UserID,
		UserName:       sh.UserName,
		OpeningCash:    sh.OpeningCash,
		Status:         sh.Status,
		StartDate:      sh.StartDate,
		EndDate:        sh.EndDate,
		ClosingCash:    sh.ClosingCash,
		ExpectedCash:   sh.ExpectedCash,
		Difference:     sh.Difference,
		Reconciliation: sh.Reconciliation,
	}
}

func transactionToResponse(t *model.CashTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		ShiftID:       t.ShiftID,
		Type:          t.Type,
		Category:      t.Category,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		SaleID:        t.SaleID,
		CreatedAt:     t.CreatedAt,
	}
}
