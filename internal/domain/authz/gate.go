package authz

// Gate escolhe entre dois ramos conforme o resultado de Can.
// Se negado e fallback for nil, retorna o zero value de T.
// Livre de efeitos colaterais: os ramos só executam quando escolhidos.
func Gate[T any](s *Subject, p Permission, allowed func() T, fallback func() T) T {
	if Can(s, p) {
		if allowed != nil {
			return allowed()
		}
		var zero T
		return zero
	}
	if fallback != nil {
		return fallback()
	}
	var zero T
	return zero
}

// Action é uma operação protegida por permissão
type Action func() error

// Protect envolve uma ação com uma verificação de permissão.
// Se permitido, retorna a ação original. Se negado, retorna uma ação inerte
// que apenas invoca o aviso de negação (quando fornecido) e nunca executa a
// operação original. Nunca lança panic: negação é estado esperado, não falha.
func Protect(s *Subject, p Permission, action Action, denied func()) Action {
	if Can(s, p) {
		return action
	}
	return func() error {
		if denied != nil {
			denied()
		}
		return nil
	}
}
