package authz

import (
	"errors"
	"testing"
)

func TestGate(t *testing.T) {
	admin := &Subject{Role: RoleAdmin}

	t.Run("escolhe o ramo allowed quando permitido", func(t *testing.T) {
		got := Gate(admin, PermissionCustomersView,
			func() string { return "allowed" },
			func() string { return "fallback" },
		)
		if got != "allowed" {
			t.Errorf("esperava 'allowed', obteve '%s'", got)
		}
	})

	t.Run("escolhe o ramo fallback quando negado", func(t *testing.T) {
		got := Gate(admin, PermissionSettingsManage,
			func() string { return "allowed" },
			func() string { return "fallback" },
		)
		if got != "fallback" {
			t.Errorf("esperava 'fallback', obteve '%s'", got)
		}
	})

	t.Run("sem fallback, negado retorna zero value", func(t *testing.T) {
		got := Gate[[]string](nil, PermissionCustomersView,
			func() []string { return []string{"x"} },
			nil,
		)
		if got != nil {
			t.Errorf("esperava nil, obteve %v", got)
		}
	})

	t.Run("o ramo não escolhido nunca executa", func(t *testing.T) {
		executed := false
		Gate(admin, PermissionSettingsManage,
			func() int { executed = true; return 1 },
			func() int { return 0 },
		)
		if executed {
			t.Error("o ramo allowed executou apesar da negação")
		}
	})
}

func TestProtect(t *testing.T) {
	t.Run("quando permitido, retorna a ação original", func(t *testing.T) {
		invoked := false
		action := Protect(&Subject{Role: RoleAdmin}, PermissionRoutersReboot,
			func() error { invoked = true; return nil },
			nil,
		)

		if err := action(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
		if !invoked {
			t.Error("esperava a ação original invocada")
		}
	})

	t.Run("quando negado, a ação é inerte e emite o aviso", func(t *testing.T) {
		invoked, notified := false, false
		action := Protect(&Subject{Role: RoleCustomerCare}, PermissionRoutersReboot,
			func() error { invoked = true; return errors.New("should never happen") },
			func() { notified = true },
		)

		if err := action(); err != nil {
			t.Errorf("ação inerte não deve retornar erro, obteve: %v", err)
		}
		if invoked {
			t.Error("a ação original executou apesar da negação")
		}
		if !notified {
			t.Error("esperava o aviso de negação invocado")
		}
	})

	t.Run("sujeito nil produz ação inerte sem panic", func(t *testing.T) {
		action := Protect(nil, PermissionCustomersView, func() error { return nil }, nil)
		if err := action(); err != nil {
			t.Errorf("esperava nil, obteve %v", err)
		}
	})
}
