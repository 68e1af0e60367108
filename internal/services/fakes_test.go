package services_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rafabene/netpro-backend/internal/domain/entities"
	"github.com/rafabene/netpro-backend/internal/domain/ports"
	"github.com/rafabene/netpro-backend/internal/domain/repositories"
)

// fakeOperatorRepository é um repositório em memória para os specs
type fakeOperatorRepository struct {
	operators map[string]*entities.Operator
	updateErr error
}

func newFakeOperatorRepository() *fakeOperatorRepository {
	return &fakeOperatorRepository{operators: make(map[string]*entities.Operator)}
}

func (r *fakeOperatorRepository) Create(_ context.Context, operator *entities.Operator) error {
	if operator.ID == "" {
		return errors.New("missing id")
	}
	clone := *operator
	r.operators[operator.ID] = &clone
	return nil
}

func (r *fakeOperatorRepository) FindByID(_ context.Context, id string) (*entities.Operator, error) {
	operator, ok := r.operators[id]
	if !ok || operator.IsDeleted() {
		return nil, nil
	}
	clone := *operator
	return &clone, nil
}

func (r *fakeOperatorRepository) FindByEmail(_ context.Context, email string) (*entities.Operator, error) {
	for _, operator := range r.operators {
		if operator.Email.String() == strings.ToLower(email) && !operator.IsDeleted() {
			clone := *operator
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeOperatorRepository) Update(_ context.Context, operator *entities.Operator) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.operators[operator.ID]; !ok {
		return errors.New("not found")
	}
	clone := *operator
	r.operators[operator.ID] = &clone
	return nil
}

func (r *fakeOperatorRepository) Delete(_ context.Context, id string) error {
	operator, ok := r.operators[id]
	if !ok {
		return errors.New("not found")
	}
	operator.SoftDelete()
	return nil
}

func (r *fakeOperatorRepository) List(_ context.Context, filters repositories.OperatorFilters) ([]*entities.Operator, error) {
	var result []*entities.Operator
	for _, operator := range r.operators {
		if operator.IsDeleted() {
			continue
		}
		if filters.Role != nil && operator.Role != *filters.Role {
			continue
		}
		clone := *operator
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

func (fakeUnitOfWork) Commit(context.Context) error { return nil }

func (fakeUnitOfWork) Rollback(context.Context) error { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// noopLogger descarta tudo
type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

func (l noopLogger) With(...any) ports.Logger { return l }
