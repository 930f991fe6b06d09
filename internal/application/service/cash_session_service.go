package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/internal/domain/repository"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

// CashSessionService drives the register open/close workflow. Open and close
// are each a sequential chain of backend writes with no transaction around
// them: a write in the middle can fail and leave the earlier ones behind.
// The backend owns no compensation for that, so neither does the console.
type CashSessionService struct {
	registerRepo repository.RegisterRepository
	catalogRepo  repository.CatalogRepository
}

// NewCashSessionService creates a new cash session service
func NewCashSessionService(
	registerRepo repository.RegisterRepository,
	catalogRepo repository.CatalogRepository,
) *CashSessionService {
	return &CashSessionService{
		registerRepo: registerRepo,
		catalogRepo:  catalogRepo,
	}
}

// MovementView is one movement row as the register screens render it.
type MovementView struct {
	Description string            `json:"descripcion"`
	Amount      entity.Amount     `json:"monto"`
	Kind        enum.MovementKind `json:"tipo"`
	OccurredAt  time.Time         `json:"fecha"`
}

// OpenSession is the currently open register joined with its movements.
type OpenSession struct {
	HeaderID      int64          `json:"id"`
	RegisterID    int64          `json:"caja"`
	Name          string         `json:"nombre"`
	OpeningAmount entity.Amount  `json:"monto_inicial"`
	IncomeTotal   entity.Amount  `json:"total_ingresos"`
	Movements     []MovementView `json:"movimientos"`
}

// ClosingReport is the report synthesized when a register closes, and the
// shape the read-only report view reuses.
type ClosingReport struct {
	RegisterName  string         `json:"nombre"`
	Employee      string         `json:"responsable"`
	OpenedAt      time.Time      `json:"fecha_apertura"`
	ClosedAt      time.Time      `json:"fecha_cierre"`
	OpeningAmount entity.Amount  `json:"monto_inicial"`
	IncomeTotal   entity.Amount  `json:"ingresos"`
	ExpenseTotal  entity.Amount  `json:"egresos"`
	FinalAmount   entity.Amount  `json:"monto_final"`
	Withdrawn     entity.Amount  `json:"monto_retirado"`
	State         string         `json:"estado"`
	Movements     []MovementView `json:"movimientos"`
}

// OpenRegisterInput is the open-register form.
type OpenRegisterInput struct {
	Name          string
	OpeningAmount entity.Amount
	EmployeeID    int64
}

// CloseRegisterInput is the close-register form.
type CloseRegisterInput struct {
	FinalAmount entity.Amount
	Withdrawn   entity.Amount
	EmployeeID  int64
}

// CurrentOpen derives the open register from backend state: an Apertura
// header whose final amount still equals its opening amount. Returns nil when
// no register is open. The result is re-derived on every call; nothing is
// cached between mutations.
func (s *CashSessionService) CurrentOpen(ctx context.Context) (*OpenSession, error) {
	headers, err := s.registerRepo.ListHeaders(ctx)
	if err != nil {
		return nil, err
	}

	var open *entity.SessionHeader
	for i := range headers {
		if headers[i].IsOpenSession() {
			open = &headers[i]
			break
		}
	}
	if open == nil {
		return nil, nil
	}

	register, err := s.registerRepo.GetRegister(ctx, open.Register.Int64())
	if err != nil {
		return nil, err
	}

	movements, err := s.registerRepo.ListMovements(ctx)
	if err != nil {
		return nil, err
	}

	session := &OpenSession{
		HeaderID:      open.ID,
		RegisterID:    register.ID,
		Name:          register.Name,
		OpeningAmount: open.OpeningAmount,
	}
	for i := range movements {
		m := &movements[i]
		if m.Header.Int64() != open.ID {
			continue
		}
		session.Movements = append(session.Movements, MovementView{
			Description: m.Description,
			Amount:      m.Amount,
			Kind:        m.Kind,
			OccurredAt:  m.OccurredAt,
		})
		// The opening deposit is income-kind but stays out of the running
		// total; it is already counted as the opening amount.
		if m.Kind == enum.MovementKindIncome && !m.IsOpening() {
			session.IncomeTotal += m.Amount
		}
	}
	return session, nil
}

// Open creates the register, its opening header and the opening income
// movement, in that order. The open-register check is read-then-act; two
// clerks racing from different sessions can still both succeed.
func (s *CashSessionService) Open(ctx context.Context, input *OpenRegisterInput) (*OpenSession, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Register name is required")
	}
	if input.OpeningAmount < 0 {
		return nil, apperror.NewBadRequestError("Opening amount must not be negative")
	}

	existing, err := s.CurrentOpen(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrRegisterOpen
	}

	now := time.Now()
	register := &entity.CashRegister{
		Name:          input.Name,
		State:         enum.RegisterStateOpen,
		CreatedDate:   now.Format("2006-01-02"),
		OpeningAmount: input.OpeningAmount,
	}
	if err := s.registerRepo.CreateRegister(ctx, register); err != nil {
		return nil, err
	}

	header := &entity.SessionHeader{
		Event:         enum.HeaderEventOpen,
		MovedAt:       now,
		OpeningAmount: input.OpeningAmount,
		FinalAmount:   input.OpeningAmount,
		Register:      entity.RefID(register.ID),
		Employee:      entity.RefID(input.EmployeeID),
	}
	if err := s.registerRepo.CreateHeader(ctx, header); err != nil {
		return nil, err
	}

	opening := &entity.CashMovement{
		Description: entity.OpeningDescription,
		Kind:        enum.MovementKindIncome,
		Amount:      input.OpeningAmount,
		OccurredAt:  now,
		Header:      entity.RefID(header.ID),
	}
	if err := s.registerRepo.CreateMovement(ctx, opening); err != nil {
		return nil, err
	}

	return &OpenSession{
		HeaderID:      header.ID,
		RegisterID:    register.ID,
		Name:          register.Name,
		OpeningAmount: input.OpeningAmount,
		Movements: []MovementView{{
			Description: opening.Description,
			Amount:      opening.Amount,
			Kind:        opening.Kind,
			OccurredAt:  now,
		}},
	}, nil
}

// Close rewrites the open header as a Cierre, appends the synthetic closing
// movement, marks the register Cerrada and synthesizes the closing report.
// Resubmitting a close creates duplicate closing movements; there is no
// idempotence guarantee.
func (s *CashSessionService) Close(ctx context.Context, input *CloseRegisterInput) (*ClosingReport, error) {
	open, err := s.CurrentOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperror.ErrNoOpenRegister
	}

	now := time.Now()
	finalReal := input.FinalAmount - input.Withdrawn

	header := &entity.SessionHeader{
		ID:            open.HeaderID,
		Event:         enum.HeaderEventClose,
		MovedAt:       now,
		OpeningAmount: open.OpeningAmount,
		FinalAmount:   finalReal,
		Register:      entity.RefID(open.RegisterID),
		Employee:      entity.RefID(input.EmployeeID),
	}
	if err := s.registerRepo.UpdateHeader(ctx, header); err != nil {
		return nil, err
	}

	closing := &entity.CashMovement{
		Description: fmt.Sprintf("%s%d", entity.ClosingDescriptionPrefix, input.Withdrawn.Int64()),
		Kind:        enum.MovementKindExpense,
		Amount:      finalReal,
		OccurredAt:  now,
		Header:      entity.RefID(open.HeaderID),
	}
	if err := s.registerRepo.CreateMovement(ctx, closing); err != nil {
		return nil, err
	}

	if err := s.registerRepo.PatchRegisterState(ctx, open.RegisterID, enum.RegisterStateClosed); err != nil {
		return nil, err
	}

	employee := fmt.Sprintf("Empleado %d", input.EmployeeID)
	if emp, err := s.catalogRepo.GetEmployee(ctx, input.EmployeeID); err == nil {
		employee = emp.FullName()
	}

	report := &ClosingReport{
		RegisterName:  open.Name,
		Employee:      employee,
		OpenedAt:      openedAt(open),
		ClosedAt:      now,
		OpeningAmount: open.OpeningAmount,
		IncomeTotal:   open.IncomeTotal,
		ExpenseTotal:  input.Withdrawn,
		FinalAmount:   finalReal,
		Withdrawn:     input.Withdrawn,
		State:         enum.RegisterStateClosed.String(),
		Movements: append(open.Movements, MovementView{
			Description: closing.Description,
			Amount:      finalReal,
			Kind:        enum.MovementKindExpense,
			OccurredAt:  now,
		}),
	}
	return report, nil
}

// openedAt reads the open time off the opening movement. Zero when the
// movement is missing; the report renders that as unknown rather than
// inventing a timestamp.
func openedAt(open *OpenSession) time.Time {
	for _, m := range open.Movements {
		if m.Description == entity.OpeningDescription {
			return m.OccurredAt
		}
	}
	return time.Time{}
}

// Report rebuilds the report for the most recent closed session from backend
// state alone, for the read-only report view.
func (s *CashSessionService) Report(ctx context.Context) (*ClosingReport, error) {
	headers, err := s.registerRepo.ListHeaders(ctx)
	if err != nil {
		return nil, err
	}

	var closes []entity.SessionHeader
	for i := range headers {
		if headers[i].Event == enum.HeaderEventClose {
			closes = append(closes, headers[i])
		}
	}
	if len(closes) == 0 {
		return nil, apperror.NewNotFoundError("Closed cash session")
	}
	sort.Slice(closes, func(i, j int) bool {
		return closes[i].MovedAt.After(closes[j].MovedAt)
	})
	last := &closes[0]

	movements, err := s.registerRepo.ListMovements(ctx)
	if err != nil {
		return nil, err
	}

	report := &ClosingReport{
		OpenedAt:      last.MovedAt,
		ClosedAt:      last.MovedAt,
		OpeningAmount: last.OpeningAmount,
		FinalAmount:   last.FinalAmount,
		State:         enum.RegisterStateClosed.String(),
	}

	var hasClosingLine bool
	for i := range movements {
		m := &movements[i]
		if m.Header.Int64() != last.ID {
			continue
		}
		report.Movements = append(report.Movements, MovementView{
			Description: m.Description,
			Amount:      m.Amount,
			Kind:        m.Kind,
			OccurredAt:  m.OccurredAt,
		})
		if m.IsOpening() {
			report.OpenedAt = m.OccurredAt
			continue
		}
		if strings.HasPrefix(m.Description, entity.ClosingDescriptionPrefix) {
			hasClosingLine = true
			continue
		}
		switch m.Kind {
		case enum.MovementKindIncome:
			report.IncomeTotal += m.Amount
		case enum.MovementKindExpense:
			report.ExpenseTotal += m.Amount
		}
	}

	// Withdrawal reconstruction: what came in on top of the float, minus
	// what was left in the drawer. Only meaningful when a closing line
	// exists for the session.
	if hasClosingLine {
		report.Withdrawn = report.IncomeTotal + report.OpeningAmount - report.FinalAmount
	}

	if register, err := s.registerRepo.GetRegister(ctx, last.Register.Int64()); err == nil {
		report.RegisterName = register.Name
	}
	report.Employee = fmt.Sprintf("Empleado %d", last.Employee.Int64())
	if emp, err := s.catalogRepo.GetEmployee(ctx, last.Employee.Int64()); err == nil {
		report.Employee = emp.FullName()
	}
	return report, nil
}
