package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/handlers/dto"
	"github.com/rafabene/netpro-backend/internal/handlers/middleware"
)

// backofficeNavigation é a árvore de navegação declarada pelo shell do
// back-office. Cada item pode exigir uma permissão; a projeção por operador
// acontece em GetNavigation.
var backofficeNavigation = []authz.NavSection{
	{
		Label: "Operations",
		Items: []authz.NavItem{
			{Label: "Dashboard", Destination: "/dashboard"},
			{Label: "Customers", Destination: "/customers", Permission: authz.PermissionCustomersView},
			{Label: "Plans", Destination: "/plans", Permission: authz.PermissionPlansView},
		},
	},
	{
		Label: "Billing",
		Items: []authz.NavItem{
			{Label: "Payments", Destination: "/payments", Permission: authz.PermissionPaymentsView},
			{Label: "Invoices", Destination: "/invoices", Permission: authz.PermissionInvoicesView},
		},
	},
	{
		Label: "Network",
		Items: []authz.NavItem{
			{
				Label: "Routers",
				Children: []authz.NavItem{
					{Label: "All routers", Destination: "/routers", Permission: authz.PermissionRoutersView},
					{Label: "Provisioning", Destination: "/routers/provisioning", Permission: authz.PermissionRoutersManage},
					{Label: "Reboot queue", Destination: "/routers/reboots", Permission: authz.PermissionRoutersReboot},
				},
			},
		},
	},
	{
		Label: "Messaging",
		Items: []authz.NavItem{
			{Label: "Send SMS", Destination: "/sms/send", Permission: authz.PermissionSMSSend},
			{Label: "SMS history", Destination: "/sms/history", Permission: authz.PermissionSMSHistory},
		},
	},
	{
		Label: "Administration",
		Items: []authz.NavItem{
			{Label: "Operators", Destination: "/operators", Permission: authz.PermissionOperatorsView},
			{Label: "Reports", Destination: "/reports", Permission: authz.PermissionReportsView},
			{Label: "Settings", Destination: "/settings", Permission: authz.PermissionSettingsManage},
		},
	},
}

// SessionHandler expõe a sessão autenticada e suas projeções
type SessionHandler struct{}

// NewSessionHandler cria um novo SessionHandler
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetSession retorna o operador autenticado com seu conjunto efetivo de
// permissões, recomputado a cada chamada
// @Summary Sessão atual
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	operator := middleware.CurrentOperator(c)
	if operator == nil {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(operator))
}

// GetNavigation retorna a árvore de navegação visível ao operador da sessão.
// Sessão ausente recebe a projeção de um sujeito nil: apenas itens sem
// requisito (degradar para menos, nunca para mais).
// @Summary Navegação filtrada
// @Tags session
// @Produce json
// @Success 200 {array} authz.NavSection
// @Router /session/navigation [get]
func (h *SessionHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, authz.FilterNavigation(backofficeNavigation, middleware.CurrentSubject(c)))
}

// GetCatalog retorna o catálogo de permissões agrupado para o editor
// @Summary Catálogo de permissões
// @Tags permissions
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /permissions [get]
func (h *SessionHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogResponse())
}
