package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/errors"
	"github.com/rafabene/netpro-backend/internal/domain/repositories"
	"github.com/rafabene/netpro-backend/internal/handlers/dto"
	"github.com/rafabene/netpro-backend/internal/handlers/middleware"
	"github.com/rafabene/netpro-backend/internal/services"
)

// OperatorHandler lida com requisições HTTP relacionadas a operadores
type OperatorHandler struct {
	operatorService *services.OperatorService
}

// NewOperatorHandler cria um novo OperatorHandler
func NewOperatorHandler(operatorService *services.OperatorService) *OperatorHandler {
	return &OperatorHandler{
		operatorService: operatorService,
	}
}

// CreateOperator cria um novo operador
// @Summary Cria um operador
// @Tags operators
// @Accept json
// @Produce json
// @Param operator body dto.CreateOperatorRequest true "Operador"
// @Success 201 {object} dto.OperatorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /operators [post]
func (h *OperatorHandler) CreateOperator(c *gin.Context) {
	var req dto.CreateOperatorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	operator, err := h.operatorService.CreateOperator(c.Request.Context(), services.CreateOperatorInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  authz.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperatorResponse(operator, middleware.CurrentSubject(c)))
}

// GetOperator busca um operador por ID
// @Summary Busca um operador
// @Tags operators
// @Produce json
// @Param id path string true "ID do operador"
// @Success 200 {object} dto.OperatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /operators/{id} [get]
func (h *OperatorHandler) GetOperator(c *gin.Context) {
	operator, err := h.operatorService.GetOperator(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator, middleware.CurrentSubject(c)))
}

// ListOperators lista operadores com filtro por role e paginação
// @Summary Lista operadores
// @Tags operators
// @Produce json
// @Param role query string false "Filtro por role"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.OperatorResponse
// @Router /operators [get]
func (h *OperatorHandler) ListOperators(c *gin.Context) {
	var query struct {
		Role     string `form:"role" binding:"omitempty,oneof=super_admin admin customer_care field_tech"`
		Page     int    `form:"page" binding:"omitempty,min=1"`
		PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	filters := repositories.OperatorFilters{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Role != "" {
		role := authz.Role(query.Role)
		filters.Role = &role
	}

	operators, err := h.operatorService.ListOperators(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponses(operators, middleware.CurrentSubject(c)))
}

// UpdateOperator atualiza nome e/ou role de um operador
// @Summary Atualiza um operador
// @Tags operators
// @Accept json
// @Produce json
// @Param id path string true "ID do operador"
// @Param operator body dto.UpdateOperatorRequest true "Campos a atualizar"
// @Success 200 {object} dto.OperatorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /operators/{id} [put]
func (h *OperatorHandler) UpdateOperator(c *gin.Context) {
	var req dto.UpdateOperatorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	input := services.UpdateOperatorInput{Name: req.Name}
	if req.Role != nil {
		role := authz.Role(*req.Role)
		input.Role = &role
	}

	operator, err := h.operatorService.UpdateOperator(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator, middleware.CurrentSubject(c)))
}

// GetPermissions retorna o view model do editor de permissões de um operador
// @Summary Estado do editor de permissões
// @Tags operators
// @Produce json
// @Param id path string true "ID do operador"
// @Success 200 {object} dto.EditorStateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /operators/{id}/permissions [get]
func (h *OperatorHandler) GetPermissions(c *gin.Context) {
	operator, err := h.operatorService.GetOperator(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEditorStateResponse(operator))
}

// UpdatePermissions substitui as listas de override de um operador
// @Summary Salva overrides de permissão
// @Tags operators
// @Accept json
// @Produce json
// @Param id path string true "ID do operador"
// @Param overrides body dto.UpdatePermissionsRequest true "Par (added, removed)"
// @Success 200 {object} dto.EditorStateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /operators/{id}/permissions [put]
func (h *OperatorHandler) UpdatePermissions(c *gin.Context) {
	var req dto.UpdatePermissionsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	added, removed := req.Permissions()
	operator, err := h.operatorService.UpdatePermissions(
		c.Request.Context(),
		middleware.CurrentOperator(c),
		c.Param("id"),
		added,
		removed,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEditorStateResponse(operator))
}

// DeleteOperator remove um operador (soft delete)
// @Summary Remove um operador
// @Tags operators
// @Param id path string true "ID do operador"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /operators/{id} [delete]
func (h *OperatorHandler) DeleteOperator(c *gin.Context) {
	if err := h.operatorService.DeleteOperator(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleError mapeia erros de domínio para respostas RFC 7807
func (h *OperatorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrOperatorNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Operator"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
	case errs.Is(err, errors.ErrInvalidOverrides), errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
	case errs.Is(err, errors.ErrInsufficientPermission):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
