package authz

import (
	"fmt"
	"sort"
)

// PermissionState descreve como uma permissão se apresenta no editor
type PermissionState string

const (
	StateNotGranted        PermissionState = "not_granted"
	StateGrantedByRole     PermissionState = "granted_by_role"
	StateGrantedByOverride PermissionState = "granted_by_override"
	StateRevokedByOverride PermissionState = "revoked_by_override"
)

// Draft é o estado local do editor de permissões: um par candidato de
// overrides (added, removed) para um operador, construído antes de ser
// persistido. O Draft nunca escreve em nenhum store.
type Draft struct {
	role    Role
	added   map[Permission]struct{}
	removed map[Permission]struct{}
}

// NewDraft cria um draft semeado com os overrides atuais do operador
func NewDraft(role Role, added, removed []Permission) *Draft {
	d := &Draft{
		role:    role,
		added:   make(map[Permission]struct{}, len(added)),
		removed: make(map[Permission]struct{}, len(removed)),
	}
	for _, p := range added {
		d.added[p] = struct{}{}
	}
	for _, p := range removed {
		d.removed[p] = struct{}{}
	}
	return d
}

// Toggle alterna uma permissão no draft.
// Permissões padrão do role só transitam pela lista removed; as demais só
// pela lista added. Essa regra é o que garante que uma permissão nunca
// apareça nas duas listas ao mesmo tempo em drafts construídos por aqui.
func (d *Draft) Toggle(p Permission) {
	if IsRoleDefault(d.role, p) {
		if _, ok := d.removed[p]; ok {
			delete(d.removed, p)
		} else {
			d.removed[p] = struct{}{}
		}
		return
	}

	if _, ok := d.added[p]; ok {
		delete(d.added, p)
	} else {
		d.added[p] = struct{}{}
	}
}

// State retorna o estado visual de uma permissão no draft
func (d *Draft) State(p Permission) PermissionState {
	if _, ok := d.removed[p]; ok {
		return StateRevokedByOverride
	}
	if _, ok := d.added[p]; ok {
		return StateGrantedByOverride
	}
	if IsRoleDefault(d.role, p) {
		return StateGrantedByRole
	}
	return StateNotGranted
}

// Subject retorna o snapshot correspondente ao draft, para preview do
// conjunto efetivo resultante antes de salvar
func (d *Draft) Subject() *Subject {
	return &Subject{
		Role:    d.role,
		Added:   d.Added(),
		Removed: d.Removed(),
	}
}

// Added retorna a lista added ordenada
func (d *Draft) Added() []Permission {
	return sortedPermissions(d.added)
}

// Removed retorna a lista removed ordenada
func (d *Draft) Removed() []Permission {
	return sortedPermissions(d.removed)
}

func sortedPermissions(set map[Permission]struct{}) []Permission {
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// ValidateOverrides re-verifica no servidor a regra de construção do editor:
// toda permissão deve pertencer ao catálogo, added não pode conter permissões
// padrão do role e removed só pode conter permissões padrão do role.
func ValidateOverrides(role Role, added, removed []Permission) error {
	if !IsValidRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}

	for _, p := range added {
		if !IsKnown(p) {
			return fmt.Errorf("unknown permission %q", p)
		}
		if IsRoleDefault(role, p) {
			return fmt.Errorf("permission %q is a role default and cannot be added", p)
		}
	}

	for _, p := range removed {
		if !IsKnown(p) {
			return fmt.Errorf("unknown permission %q", p)
		}
		if !IsRoleDefault(role, p) {
			return fmt.Errorf("permission %q is not a role default and cannot be removed", p)
		}
	}

	return nil
}
