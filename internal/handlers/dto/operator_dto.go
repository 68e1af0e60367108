package dto

import (
	"time"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
)

// CreateOperatorRequest representa a requisição para criar um operador
type CreateOperatorRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Role  string `json:"role" binding:"required,oneof=super_admin admin customer_care field_tech"`
}

// UpdateOperatorRequest representa a requisição para atualizar um operador
type UpdateOperatorRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=super_admin admin customer_care field_tech"`
}

// UpdatePermissionsRequest representa o par de overrides produzido pelo
// editor de permissões
type UpdatePermissionsRequest struct {
	AddedPermissions   []string `json:"added_permissions"`
	RemovedPermissions []string `json:"removed_permissions"`
}

// Permissions converte as listas da requisição para o tipo do domínio
func (r *UpdatePermissionsRequest) Permissions() (added, removed []authz.Permission) {
	return toPermissions(r.AddedPermissions), toPermissions(r.RemovedPermissions)
}

// OperatorResponse representa a resposta de um operador
type OperatorResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	AddedPermissions   []string  `json:"added_permissions,omitempty"`
	RemovedPermissions []string  `json:"removed_permissions,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToOperatorResponse converte uma entidade Operator para OperatorResponse.
// O detalhe dos overrides só aparece para quem pode editá-los; os demais
// recebem o operador sem as listas.
func ToOperatorResponse(operator *entities.Operator, viewer *authz.Subject) OperatorResponse {
	response := OperatorResponse{
		ID:        operator.ID,
		Email:     operator.Email.String(),
		Name:      operator.Name,
		Role:      string(operator.Role),
		CreatedAt: operator.CreatedAt,
	}

	response.AddedPermissions = authz.Gate(viewer, authz.PermissionOperatorsEdit,
		func() []string { return toStrings(operator.AddedPermissions) },
		nil,
	)
	response.RemovedPermissions = authz.Gate(viewer, authz.PermissionOperatorsEdit,
		func() []string { return toStrings(operator.RemovedPermissions) },
		nil,
	)

	return response
}

// ToOperatorResponses converte uma lista de entidades Operator
func ToOperatorResponses(operators []*entities.Operator, viewer *authz.Subject) []OperatorResponse {
	responses := make([]OperatorResponse, len(operators))
	for i, operator := range operators {
		responses[i] = ToOperatorResponse(operator, viewer)
	}
	return responses
}

func toStrings(perms []authz.Permission) []string {
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

func toPermissions(values []string) []authz.Permission {
	result := make([]authz.Permission, len(values))
	for i, v := range values {
		result[i] = authz.Permission(v)
	}
	return result
}
