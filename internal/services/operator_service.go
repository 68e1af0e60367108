package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
	"github.com/rafabene/netpro-backend/internal/domain/errors"
	"github.com/rafabene/netpro-backend/internal/domain/ports"
	"github.com/rafabene/netpro-backend/internal/domain/repositories"
	"github.com/rafabene/netpro-backend/internal/domain/valueobjects"
)

// OperatorService contém a lógica de negócio para operadores do back-office
type OperatorService struct {
	operatorRepo repositories.OperatorRepository
	uow          ports.UnitOfWork
	events       *EventBroadcaster
	logger       ports.Logger
}

// NewOperatorService cria um novo OperatorService
func NewOperatorService(
	operatorRepo repositories.OperatorRepository,
	uow ports.UnitOfWork,
	events *EventBroadcaster,
	logger ports.Logger,
) *OperatorService {
	return &OperatorService{
		operatorRepo: operatorRepo,
		uow:          uow,
		events:       events,
		logger:       logger,
	}
}

// CreateOperatorInput representa os dados para criar um operador
type CreateOperatorInput struct {
	Email string
	Name  string
	Role  authz.Role
}

// CreateOperator cria um novo operador com listas de override vazias
func (s *OperatorService) CreateOperator(ctx context.Context, input CreateOperatorInput) (*entities.Operator, error) {
	s.logger.Info("creating operator", "email", input.Email, "role", input.Role)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	if !authz.IsValidRole(input.Role) {
		return nil, errors.ErrInvalidRole
	}

	existing, err := s.operatorRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	now := time.Now()
	operator := &entities.Operator{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := operator.Validate(); err != nil {
		return nil, err
	}

	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}

	return operator, nil
}

// GetOperator busca um operador por ID
func (s *OperatorService) GetOperator(ctx context.Context, id string) (*entities.Operator, error) {
	operator, err := s.operatorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, errors.ErrOperatorNotFound
	}
	return operator, nil
}

// ListOperators lista operadores com filtros
func (s *OperatorService) ListOperators(ctx context.Context, filters repositories.OperatorFilters) ([]*entities.Operator, error) {
	return s.operatorRepo.List(ctx, filters)
}

// UpdateOperatorInput representa os dados para atualizar um operador
type UpdateOperatorInput struct {
	Name *string
	Role *authz.Role
}

// UpdateOperator atualiza o perfil de um operador.
// Uma troca de role zera as duas listas de override antes de salvar:
// overrides são relativos ao conjunto padrão do role anterior.
func (s *OperatorService) UpdateOperator(ctx context.Context, id string, input UpdateOperatorInput) (*entities.Operator, error) {
	var updated *entities.Operator

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		operator, err := s.operatorRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if operator == nil {
			return errors.ErrOperatorNotFound
		}

		if input.Name != nil {
			operator.Name = *input.Name
		}
		if input.Role != nil {
			if !authz.IsValidRole(*input.Role) {
				return errors.ErrInvalidRole
			}
			if *input.Role != operator.Role {
				s.logger.Info("operator role changed, resetting overrides",
					"operator_id", operator.ID,
					"from", operator.Role,
					"to", *input.Role,
				)
			}
			operator.ChangeRole(*input.Role)
		}

		operator.UpdatedAt = time.Now()
		if err := operator.Validate(); err != nil {
			return err
		}

		if err := s.operatorRepo.Update(txCtx, operator); err != nil {
			return err
		}

		updated = operator
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(PermissionEvent{
		Type:       EventPermissionsUpdated,
		OperatorID: updated.ID,
	})

	return updated, nil
}

// UpdatePermissions substitui as listas de override de um operador.
// O actor precisa de operators.edit; o guard de rota já barra a requisição,
// mas o serviço re-verifica antes de tocar na persistência.
func (s *OperatorService) UpdatePermissions(
	ctx context.Context,
	actor *entities.Operator,
	operatorID string,
	added, removed []authz.Permission,
) (*entities.Operator, error) {
	var (
		updated *entities.Operator
		denied  bool
	)

	save := func() error {
		return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
			operator, err := s.operatorRepo.FindByID(txCtx, operatorID)
			if err != nil {
				return err
			}
			if operator == nil {
				return errors.ErrOperatorNotFound
			}

			if err := authz.ValidateOverrides(operator.Role, added, removed); err != nil {
				return fmt.Errorf("%w: %v", errors.ErrInvalidOverrides, err)
			}

			operator.SetOverrides(added, removed)
			operator.UpdatedAt = time.Now()

			if err := s.operatorRepo.Update(txCtx, operator); err != nil {
				return err
			}

			updated = operator
			return nil
		})
	}

	action := authz.Protect(actor.Grants(), authz.PermissionOperatorsEdit, save, func() {
		denied = true
		s.logger.Warn("permission edit denied",
			"actor_id", actorID(actor),
			"operator_id", operatorID,
		)
	})

	if err := action(); err != nil {
		return nil, err
	}
	if denied {
		return nil, errors.ErrInsufficientPermission
	}

	s.events.Publish(PermissionEvent{
		Type:       EventPermissionsUpdated,
		OperatorID: updated.ID,
	})

	s.logger.Info("operator permissions updated",
		"operator_id", updated.ID,
		"added", len(added),
		"removed", len(removed),
	)

	return updated, nil
}

// DeleteOperator marca um operador como deletado (soft delete)
func (s *OperatorService) DeleteOperator(ctx context.Context, id string) error {
	operator, err := s.operatorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if operator == nil {
		return errors.ErrOperatorNotFound
	}

	return s.operatorRepo.Delete(ctx, id)
}

func actorID(actor *entities.Operator) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
