package uowmock

import (
	"context"
	"errors"
	"testing"

	"wfh-leave-backend/internal/domain/uow"
	"wfh-leave-backend/internal/testutil/employeemock"
	"wfh-leave-backend/internal/testutil/wfhmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	emps := &employeemock.Repo{}
	reqs := &wfhmock.Repo{}
	repos := uow.Repos{Employees: emps, Requests: reqs}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Employees != emps || r.Requests != reqs {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	m := Passthrough(uow.Repos{})
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Unimplemented(t *testing.T) {
	m := &UoW{}
	called := false
	err := m.WithinTx(context.Background(), func(uow.Repos) error { called = true; return nil })
	if !errors.Is(err, errUnimplemented) {
		t.Fatalf("want errUnimplemented, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run when WithinTxFn is nil")
	}
}
