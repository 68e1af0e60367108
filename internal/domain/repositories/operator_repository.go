package repositories

import (
	"context"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
)

// OperatorRepository define a interface para persistência de operadores
type OperatorRepository interface {
	Create(ctx context.Context, operator *entities.Operator) error
	FindByID(ctx context.Context, id string) (*entities.Operator, error)
	FindByEmail(ctx context.Context, email string) (*entities.Operator, error)
	Update(ctx context.Context, operator *entities.Operator) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters OperatorFilters) ([]*entities.Operator, error)
}

// OperatorFilters contém filtros para listagem de operadores
type OperatorFilters struct {
	Role     *authz.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
