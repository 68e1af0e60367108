package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/infrastructure/i18n"
)

// RequirePermission é o guard de rota: roda antes do handler protegido e
// aborta a requisição negada antes de qualquer efeito colateral do handler
// (nenhum fetch privilegiado acontece para uma rota negada).
//
// Sessão ausente → 401; sessão sem a permissão → 403. Os dois casos são
// estados esperados, nunca erro interno.
func RequirePermission(p authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := CurrentOperator(c)
		if operator == nil {
			abortWithProblem(c, http.StatusUnauthorized,
				"/problems/unauthorized",
				"error.unauthorized.title",
				"error.unauthorized.detail",
			)
			return
		}

		if !authz.Can(operator.Grants(), p) {
			abortWithProblem(c, http.StatusForbidden,
				"/problems/forbidden",
				"error.insufficient_permission.title",
				"error.insufficient_permission.detail",
			)
			return
		}

		c.Next()
	}
}

// abortWithProblem responde um problema RFC 7807 traduzido e cancela a cadeia
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.AbortWithStatusJSON(status, gin.H{
		"type":     baseURL + problemType,
		"title":    translate(c, titleKey),
		"status":   status,
		"detail":   translate(c, detailKey),
		"instance": c.Request.URL.Path,
	})
}

// translate busca o serviço i18n e o idioma do contexto da requisição.
// Sem serviço disponível, a chave é retornada como está.
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, ok := lang.(string)
	if !ok {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
