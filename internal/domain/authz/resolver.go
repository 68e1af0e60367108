package authz

// Subject é o snapshot imutável de autorização de um operador: role mais as
// listas de overrides individuais. É passado explicitamente para Can ao invés
// de lido de estado global, para manter o resolver puro e testável.
type Subject struct {
	Role    Role
	Added   []Permission
	Removed []Permission
}

// Can decide se o sujeito pode executar a ação protegida pela permissão.
//
// Ordem de resolução:
//  1. permissão em Removed → negado (remoção sempre vence, mesmo que a mesma
//     permissão apareça em Added — interpretação conservadora caso as listas
//     cheguem inconsistentes de uma edição externa)
//  2. permissão em Added → permitido
//  3. caso contrário, decide o conjunto padrão do role
//
// Sujeito nil (não autenticado) ou permissão desconhecida → negado.
// Sem cache: cada chamada recomputa a partir dos três insumos.
func Can(s *Subject, p Permission) bool {
	if s == nil || !IsKnown(p) {
		return false
	}

	for _, r := range s.Removed {
		if r == p {
			return false
		}
	}

	for _, a := range s.Added {
		if a == p {
			return true
		}
	}

	return IsRoleDefault(s.Role, p)
}

// EffectivePermissions retorna o conjunto efetivo de permissões do sujeito:
// (defaults do role ∪ added) \ removed. Derivado sob demanda, nunca armazenado.
// A ordem segue a ordem do catálogo.
func EffectivePermissions(s *Subject) []Permission {
	if s == nil {
		return nil
	}

	effective := make([]Permission, 0, len(catalog))
	for _, p := range AllPermissions() {
		if Can(s, p) {
			effective = append(effective, p)
		}
	}
	return effective
}
