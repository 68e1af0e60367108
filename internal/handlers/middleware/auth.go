package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
	"github.com/rafabene/netpro-backend/internal/domain/ports"
	"github.com/rafabene/netpro-backend/internal/domain/repositories"
)

// OperatorContextKey é a chave usada para armazenar o operador autenticado
// no contexto do Gin
const OperatorContextKey = "current_operator"

// AuthMiddleware carrega a sessão autenticada a partir do bearer token.
// A emissão de tokens fica fora deste serviço; aqui só consumimos.
type AuthMiddleware struct {
	secret       string
	operatorRepo repositories.OperatorRepository
	logger       ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(secret string, operatorRepo repositories.OperatorRepository, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret:       secret,
		operatorRepo: operatorRepo,
		logger:       logger,
	}
}

// Authenticate valida o token e carrega o operador da sessão no contexto.
// Ausência de sessão não aborta a requisição: "não autenticado" é estado
// esperado e quem decide negar é o guard de cada rota. O operador é
// recarregado a cada requisição para que edições de permissão feitas por
// outro admin valham na próxima interação, sem snapshot de login.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(m.secret), nil
		})
		if err != nil || !token.Valid {
			m.logger.Debug("invalid session token", "error", err)
			c.Next()
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			c.Next()
			return
		}

		operator, err := m.operatorRepo.FindByID(c.Request.Context(), subject)
		if err != nil {
			m.logger.Error("failed to load session operator", "operator_id", subject, "error", err)
			c.Next()
			return
		}
		if operator == nil {
			c.Next()
			return
		}

		c.Set(OperatorContextKey, operator)
		c.Next()
	}
}

// CurrentOperator retorna o operador autenticado da requisição, ou nil
func CurrentOperator(c *gin.Context) *entities.Operator {
	value, exists := c.Get(OperatorContextKey)
	if !exists {
		return nil
	}

	operator, ok := value.(*entities.Operator)
	if !ok {
		return nil
	}
	return operator
}

// CurrentSubject retorna o snapshot de autorização da sessão, ou nil
func CurrentSubject(c *gin.Context) *authz.Subject {
	return CurrentOperator(c).Grants()
}
