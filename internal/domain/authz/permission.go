package authz

// Permission representa uma capacidade atômica que protege uma ação ou tela
// do back-office. O catálogo é fechado e definido em tempo de compilação;
// strings fora do catálogo são sempre tratadas como negadas, nunca como erro.
type Permission string

const (
	// Customer permissions
	PermissionCustomersView   Permission = "customers.view"
	PermissionCustomersCreate Permission = "customers.create"
	PermissionCustomersEdit   Permission = "customers.edit"
	PermissionCustomersDelete Permission = "customers.delete"

	// Plan permissions
	PermissionPlansView   Permission = "plans.view"
	PermissionPlansManage Permission = "plans.manage"

	// Billing permissions
	PermissionPaymentsView   Permission = "payments.view"
	PermissionPaymentsRecord Permission = "payments.record"
	PermissionInvoicesView   Permission = "invoices.view"

	// Network permissions
	PermissionRoutersView   Permission = "routers.view"
	PermissionRoutersManage Permission = "routers.manage"
	PermissionRoutersReboot Permission = "routers.reboot"

	// Messaging permissions
	PermissionSMSSend    Permission = "sms.send"
	PermissionSMSHistory Permission = "sms.history"

	// Staff permissions
	PermissionOperatorsView   Permission = "operators.view"
	PermissionOperatorsCreate Permission = "operators.create"
	PermissionOperatorsEdit   Permission = "operators.edit"
	PermissionOperatorsDelete Permission = "operators.delete"

	// Reporting permissions
	PermissionReportsView Permission = "reports.view"

	// Tenant settings
	PermissionSettingsManage Permission = "settings.manage"
)

// PermissionEntry é um item do catálogo com label para exibição no editor
type PermissionEntry struct {
	Key   Permission `json:"key"`
	Label string     `json:"label"`
}

// PermissionGroup agrupa permissões para exibição no editor.
// O agrupamento é puramente visual e não afeta a resolução.
type PermissionGroup struct {
	Label       string            `json:"label"`
	Permissions []PermissionEntry `json:"permissions"`
}

// permissionGroups define a ordem de exibição do catálogo no editor.
// Cada permissão do catálogo deve aparecer exatamente uma vez.
var permissionGroups = []PermissionGroup{
	{
		Label: "Customers",
		Permissions: []PermissionEntry{
			{PermissionCustomersView, "View customers"},
			{PermissionCustomersCreate, "Create customers"},
			{PermissionCustomersEdit, "Edit customers"},
			{PermissionCustomersDelete, "Delete customers"},
		},
	},
	{
		Label: "Plans",
		Permissions: []PermissionEntry{
			{PermissionPlansView, "View plans"},
			{PermissionPlansManage, "Manage plans"},
		},
	},
	{
		Label: "Billing",
		Permissions: []PermissionEntry{
			{PermissionPaymentsView, "View payments"},
			{PermissionPaymentsRecord, "Record payments"},
			{PermissionInvoicesView, "View invoices"},
		},
	},
	{
		Label: "Network",
		Permissions: []PermissionEntry{
			{PermissionRoutersView, "View routers"},
			{PermissionRoutersManage, "Manage routers"},
			{PermissionRoutersReboot, "Reboot routers"},
		},
	},
	{
		Label: "Messaging",
		Permissions: []PermissionEntry{
			{PermissionSMSSend, "Send SMS"},
			{PermissionSMSHistory, "View SMS history"},
		},
	},
	{
		Label: "Staff",
		Permissions: []PermissionEntry{
			{PermissionOperatorsView, "View operators"},
			{PermissionOperatorsCreate, "Create operators"},
			{PermissionOperatorsEdit, "Edit operators"},
			{PermissionOperatorsDelete, "Delete operators"},
		},
	},
	{
		Label: "Reports",
		Permissions: []PermissionEntry{
			{PermissionReportsView, "View reports"},
		},
	},
	{
		Label: "Settings",
		Permissions: []PermissionEntry{
			{PermissionSettingsManage, "Manage tenant settings"},
		},
	},
}

// catalog indexa todas as permissões conhecidas para lookup O(1)
var catalog = buildCatalog()

func buildCatalog() map[Permission]struct{} {
	c := make(map[Permission]struct{})
	for _, g := range permissionGroups {
		for _, e := range g.Permissions {
			c[e.Key] = struct{}{}
		}
	}
	return c
}

// Groups retorna o catálogo agrupado, na ordem de declaração
func Groups() []PermissionGroup {
	return permissionGroups
}

// IsKnown verifica se a permissão pertence ao catálogo
func IsKnown(p Permission) bool {
	_, ok := catalog[p]
	return ok
}

// AllPermissions retorna todas as permissões do catálogo, na ordem dos grupos
func AllPermissions() []Permission {
	perms := make([]Permission, 0, len(catalog))
	for _, g := range permissionGroups {
		for _, e := range g.Permissions {
			perms = append(perms, e.Key)
		}
	}
	return perms
}
