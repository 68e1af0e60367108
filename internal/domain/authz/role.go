package authz

// Role representa a função de um operador no back-office
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleCustomerCare Role = "customer_care"
	RoleFieldTech    Role = "field_tech"
)

// roleDefaults mapeia cada role para seu conjunto padrão de permissões.
// Roles fora do mapa não recebem nenhuma permissão (default-deny).
var roleDefaults = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionCustomersView, PermissionCustomersCreate, PermissionCustomersEdit, PermissionCustomersDelete,
		PermissionPlansView, PermissionPlansManage,
		PermissionPaymentsView, PermissionPaymentsRecord, PermissionInvoicesView,
		PermissionRoutersView, PermissionRoutersManage, PermissionRoutersReboot,
		PermissionSMSSend, PermissionSMSHistory,
		PermissionOperatorsView, PermissionOperatorsCreate, PermissionOperatorsEdit, PermissionOperatorsDelete,
		PermissionReportsView,
		PermissionSettingsManage,
	},
	RoleAdmin: {
		PermissionCustomersView, PermissionCustomersCreate, PermissionCustomersEdit, PermissionCustomersDelete,
		PermissionPlansView, PermissionPlansManage,
		PermissionPaymentsView, PermissionPaymentsRecord, PermissionInvoicesView,
		PermissionRoutersView, PermissionRoutersManage, PermissionRoutersReboot,
		PermissionSMSSend, PermissionSMSHistory,
		PermissionOperatorsView, PermissionOperatorsCreate, PermissionOperatorsEdit,
		PermissionReportsView,
	},
	RoleCustomerCare: {
		PermissionCustomersView, PermissionCustomersCreate, PermissionCustomersEdit,
		PermissionPlansView,
		PermissionPaymentsView, PermissionPaymentsRecord, PermissionInvoicesView,
		PermissionSMSSend, PermissionSMSHistory,
	},
	RoleFieldTech: {
		PermissionCustomersView,
		PermissionPlansView,
		PermissionRoutersView, PermissionRoutersManage, PermissionRoutersReboot,
	},
}

// RoleDefaults retorna o conjunto padrão de permissões de um role.
// Função total: roles desconhecidos retornam conjunto vazio, nunca erro.
func RoleDefaults(role Role) []Permission {
	return roleDefaults[role]
}

// IsRoleDefault verifica se a permissão pertence ao conjunto padrão do role.
// Usada pelo editor para decidir qual lista de override um toggle altera.
func IsRoleDefault(role Role, p Permission) bool {
	for _, d := range roleDefaults[role] {
		if d == p {
			return true
		}
	}
	return false
}

// IsValidRole verifica se o role pertence ao conjunto fechado de roles
func IsValidRole(role Role) bool {
	_, ok := roleDefaults[role]
	return ok
}

// Roles retorna todos os roles configurados
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleCustomerCare, RoleFieldTech}
}
