package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/pkg/apperror"
)

func newCashService() (*CashSessionService, *fakeRegisterRepo) {
	registerRepo := newFakeRegisterRepo()
	catalogRepo := &fakeCatalogRepo{
		employees: map[int64]*entity.Employee{
			1: {ID: 1, Nombre: "Maria", Apellido: "Gomez"},
		},
	}
	return NewCashSessionService(registerRepo, catalogRepo), registerRepo
}

func TestOpenCreatesRegisterHeaderAndMovement(t *testing.T) {
	svc, repo := newCashService()

	session, err := svc.Open(context.Background(), &OpenRegisterInput{
		Name:          "Caja Central",
		OpeningAmount: 100_000,
		EmployeeID:    1,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if session.Name != "Caja Central" || session.OpeningAmount != 100_000 {
		t.Errorf("session: %+v", session)
	}
	if len(repo.headers) != 1 || repo.headers[0].Event != enum.HeaderEventOpen {
		t.Fatalf("headers: %+v", repo.headers)
	}
	if repo.headers[0].OpeningAmount != repo.headers[0].FinalAmount {
		t.Errorf("open header must store final == opening, got %+v", repo.headers[0])
	}
	if len(repo.movements) != 1 {
		t.Fatalf("movements: %+v", repo.movements)
	}
	m := repo.movements[0]
	if m.Description != entity.OpeningDescription || m.Kind != enum.MovementKindIncome || m.Amount != 100_000 {
		t.Errorf("opening movement: %+v", m)
	}
}

func TestOpenRejectsSecondRegister(t *testing.T) {
	svc, _ := newCashService()
	ctx := context.Background()

	if _, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja 1", OpeningAmount: 50_000, EmployeeID: 1}); err != nil {
		t.Fatalf("first open: %v", err)
	}
	_, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja 2", OpeningAmount: 50_000, EmployeeID: 1})
	if !errors.Is(err, apperror.ErrRegisterOpen) {
		t.Errorf("got %v, want ErrRegisterOpen", err)
	}
}

func TestOpenValidatesInput(t *testing.T) {
	svc, _ := newCashService()
	ctx := context.Background()

	if _, err := svc.Open(ctx, &OpenRegisterInput{Name: "  ", OpeningAmount: 1}); err == nil {
		t.Error("blank name should be rejected")
	}
	if _, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja", OpeningAmount: -5}); err == nil {
		t.Error("negative opening amount should be rejected")
	}
}

func TestCurrentOpenExcludesOpeningFromIncome(t *testing.T) {
	svc, repo := newCashService()
	ctx := context.Background()

	open, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja", OpeningAmount: 100_000, EmployeeID: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	repo.movements = append(repo.movements, entity.CashMovement{
		Description: "Venta pasaje",
		Kind:        enum.MovementKindIncome,
		Amount:      30_000,
		Header:      entity.RefID(open.HeaderID),
	})

	current, err := svc.CurrentOpen(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current == nil {
		t.Fatal("expected an open session")
	}
	if current.IncomeTotal != 30_000 {
		t.Errorf("income total must exclude the opening deposit: got %d", current.IncomeTotal)
	}
	if len(current.Movements) != 2 {
		t.Errorf("movements: %+v", current.Movements)
	}
}

func TestCloseMathAndStateTransitions(t *testing.T) {
	svc, repo := newCashService()
	ctx := context.Background()

	open, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja", OpeningAmount: 100_000, EmployeeID: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	report, err := svc.Close(ctx, &CloseRegisterInput{
		FinalAmount: 150_000,
		Withdrawn:   20_000,
		EmployeeID:  1,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	// monto_final stored = declared final minus withdrawn
	if report.FinalAmount != 130_000 {
		t.Errorf("final amount: got %d, want 130000", report.FinalAmount)
	}
	if report.Withdrawn != 20_000 {
		t.Errorf("withdrawn: got %d", report.Withdrawn)
	}
	if report.Employee != "Maria Gomez" {
		t.Errorf("employee: got %q", report.Employee)
	}
	if report.State != "Cerrada" {
		t.Errorf("state: got %q", report.State)
	}

	header := repo.headers[0]
	if header.Event != enum.HeaderEventClose || header.FinalAmount != 130_000 {
		t.Errorf("closed header: %+v", header)
	}
	if repo.registers[open.RegisterID].State != enum.RegisterStateClosed {
		t.Errorf("register state: %v", repo.registers[open.RegisterID].State)
	}

	closing := repo.movements[len(repo.movements)-1]
	if closing.Kind != enum.MovementKindExpense || closing.Amount != 130_000 {
		t.Errorf("closing movement: %+v", closing)
	}
	if closing.Description != "Cierre de caja - Retirado 20000" {
		t.Errorf("closing description: %q", closing.Description)
	}

	// Once closed, no session is open.
	current, err := svc.CurrentOpen(ctx)
	if err != nil {
		t.Fatalf("current after close: %v", err)
	}
	if current != nil {
		t.Errorf("expected no open session, got %+v", current)
	}
}

func TestOpenedAtUnknownWithoutOpeningMovement(t *testing.T) {
	open := &OpenSession{Movements: []MovementView{{
		Description: "Venta pasaje",
		Amount:      50_000,
		Kind:        enum.MovementKindIncome,
		OccurredAt:  time.Now(),
	}}}
	if got := openedAt(open); !got.IsZero() {
		t.Errorf("openedAt without opening movement: got %v, want zero", got)
	}
}

func TestCloseWithoutOpenRegister(t *testing.T) {
	svc, _ := newCashService()
	_, err := svc.Close(context.Background(), &CloseRegisterInput{FinalAmount: 1, EmployeeID: 1})
	if !errors.Is(err, apperror.ErrNoOpenRegister) {
		t.Errorf("got %v, want ErrNoOpenRegister", err)
	}
}

func TestReportReconstructsWithdrawn(t *testing.T) {
	svc, repo := newCashService()
	ctx := context.Background()

	open, err := svc.Open(ctx, &OpenRegisterInput{Name: "Caja", OpeningAmount: 100_000, EmployeeID: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo.movements = append(repo.movements, entity.CashMovement{
		Description: "Venta encomienda",
		Kind:        enum.MovementKindIncome,
		Amount:      50_000,
		Header:      entity.RefID(open.HeaderID),
	})
	if _, err := svc.Close(ctx, &CloseRegisterInput{FinalAmount: 150_000, Withdrawn: 20_000, EmployeeID: 1}); err != nil {
		t.Fatalf("close: %v", err)
	}

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.IncomeTotal != 50_000 {
		t.Errorf("income: got %d", report.IncomeTotal)
	}
	// withdrawn = income + opening - stored final = 50000 + 100000 - 130000
	if report.Withdrawn != 20_000 {
		t.Errorf("withdrawn: got %d, want 20000", report.Withdrawn)
	}
	if report.RegisterName != "Caja" {
		t.Errorf("register name: %q", report.RegisterName)
	}
	if report.Employee != "Maria Gomez" {
		t.Errorf("employee: %q", report.Employee)
	}
}

func TestReportWithoutClosedSession(t *testing.T) {
	svc, _ := newCashService()
	_, err := svc.Report(context.Background())
	if err == nil {
		t.Fatal("expected not found")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("got %v, want 404", err)
	}
}
