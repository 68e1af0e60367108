package entities

import (
	"errors"
	"time"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/valueobjects"
)

// Operator representa um membro da equipe do provedor com acesso ao back-office
type Operator struct {
	ID                 string
	Email              valueobjects.Email
	Name               string
	Role               authz.Role
	AddedPermissions   []authz.Permission
	RemovedPermissions []authz.Permission
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft delete
}

// Grants retorna o snapshot de autorização do operador.
// As listas são copiadas: quem renderiza nunca observa um override parcial
// caso o operador seja recarregado durante o uso.
func (o *Operator) Grants() *authz.Subject {
	if o == nil {
		return nil
	}
	return &authz.Subject{
		Role:    o.Role,
		Added:   append([]authz.Permission(nil), o.AddedPermissions...),
		Removed: append([]authz.Permission(nil), o.RemovedPermissions...),
	}
}

// Can verifica se o operador pode executar a ação protegida pela permissão
func (o *Operator) Can(p authz.Permission) bool {
	return authz.Can(o.Grants(), p)
}

// ChangeRole troca o role do operador e zera as duas listas de override.
// Overrides são relativos ao conjunto padrão do role; mantê-los após a troca
// deixaria as listas ambíguas.
func (o *Operator) ChangeRole(role authz.Role) {
	if role == o.Role {
		return
	}
	o.Role = role
	o.AddedPermissions = nil
	o.RemovedPermissions = nil
}

// SetOverrides substitui as listas de override do operador
func (o *Operator) SetOverrides(added, removed []authz.Permission) {
	o.AddedPermissions = append([]authz.Permission(nil), added...)
	o.RemovedPermissions = append([]authz.Permission(nil), removed...)
}

// IsDeleted verifica se o operador foi deletado (soft delete)
func (o *Operator) IsDeleted() bool {
	return o.DeletedAt != nil
}

// SoftDelete marca o operador como deletado
func (o *Operator) SoftDelete() {
	now := time.Now()
	o.DeletedAt = &now
}

// Restore restaura um operador deletado
func (o *Operator) Restore() {
	o.DeletedAt = nil
}

// Validate valida regras de negócio da entidade Operator
func (o *Operator) Validate() error {
	if o.Email.String() == "" {
		return errors.New("email is required")
	}

	if o.Name == "" {
		return errors.New("name is required")
	}

	if len(o.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !authz.IsValidRole(o.Role) {
		return errors.New("invalid role")
	}

	return authz.ValidateOverrides(o.Role, o.AddedPermissions, o.RemovedPermissions)
}
