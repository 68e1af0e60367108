package dto

import (
	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
)

// CatalogResponse representa o catálogo de permissões agrupado para o editor
type CatalogResponse struct {
	Groups []authz.PermissionGroup `json:"groups"`
	Roles  []RoleDefaultsResponse  `json:"roles"`
}

// RoleDefaultsResponse representa o conjunto padrão de um role
type RoleDefaultsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// ToCatalogResponse monta o catálogo completo: grupos para renderização e
// os defaults de cada role para o editor distinguir o que cada toggle altera
func ToCatalogResponse() CatalogResponse {
	roles := make([]RoleDefaultsResponse, 0, len(authz.Roles()))
	for _, role := range authz.Roles() {
		roles = append(roles, RoleDefaultsResponse{
			Role:        string(role),
			Permissions: toStrings(authz.RoleDefaults(role)),
		})
	}

	return CatalogResponse{
		Groups: authz.Groups(),
		Roles:  roles,
	}
}

// EditorPermissionResponse é o estado de uma permissão no editor: como ela é
// exibida ("granted by role" / "granted by override" / "revoked by override" /
// "not granted") e se resulta efetivamente concedida
type EditorPermissionResponse struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	State         string `json:"state"`
	IsRoleDefault bool   `json:"is_role_default"`
	Effective     bool   `json:"effective"`
}

// EditorGroupResponse é um grupo do catálogo com o estado por permissão
type EditorGroupResponse struct {
	Label       string                     `json:"label"`
	Permissions []EditorPermissionResponse `json:"permissions"`
}

// EditorStateResponse é o view model do editor de permissões de um operador
type EditorStateResponse struct {
	OperatorID           string                `json:"operator_id"`
	Role                 string                `json:"role"`
	AddedPermissions     []string              `json:"added_permissions"`
	RemovedPermissions   []string              `json:"removed_permissions"`
	EffectivePermissions []string              `json:"effective_permissions"`
	Groups               []EditorGroupResponse `json:"groups"`
}

// ToEditorStateResponse monta o view model do editor a partir dos overrides
// atuais do operador
func ToEditorStateResponse(operator *entities.Operator) EditorStateResponse {
	draft := authz.NewDraft(operator.Role, operator.AddedPermissions, operator.RemovedPermissions)
	subject := draft.Subject()

	groups := make([]EditorGroupResponse, 0, len(authz.Groups()))
	for _, g := range authz.Groups() {
		perms := make([]EditorPermissionResponse, 0, len(g.Permissions))
		for _, e := range g.Permissions {
			perms = append(perms, EditorPermissionResponse{
				Key:           string(e.Key),
				Label:         e.Label,
				State:         string(draft.State(e.Key)),
				IsRoleDefault: authz.IsRoleDefault(operator.Role, e.Key),
				Effective:     authz.Can(subject, e.Key),
			})
		}
		groups = append(groups, EditorGroupResponse{Label: g.Label, Permissions: perms})
	}

	return EditorStateResponse{
		OperatorID:           operator.ID,
		Role:                 string(operator.Role),
		AddedPermissions:     toStrings(draft.Added()),
		RemovedPermissions:   toStrings(draft.Removed()),
		EffectivePermissions: toStrings(authz.EffectivePermissions(subject)),
		Groups:               groups,
	}
}

// SessionResponse representa a sessão autenticada: o operador e seu conjunto
// efetivo de permissões, recomputado a cada chamada
type SessionResponse struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	Name                 string   `json:"name"`
	Role                 string   `json:"role"`
	EffectivePermissions []string `json:"effective_permissions"`
}

// ToSessionResponse converte o operador autenticado em resposta de sessão
func ToSessionResponse(operator *entities.Operator) SessionResponse {
	return SessionResponse{
		ID:                   operator.ID,
		Email:                operator.Email.String(),
		Name:                 operator.Name,
		Role:                 string(operator.Role),
		EffectivePermissions: toStrings(authz.EffectivePermissions(operator.Grants())),
	}
}
