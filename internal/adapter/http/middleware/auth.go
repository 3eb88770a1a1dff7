package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
)

const principalKey = "principal"

// BasicAuth resolves HTTP basic credentials into a domain.Principal stored on
// the context. Requests without valid credentials stop here with 401.
func BasicAuth(authenticator ports.Authenticator, realm string) gin.HandlerFunc {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if ok {
			principal, err := authenticator.Authenticate(c.Request.Context(), username, password)
			if err == nil {
				c.Set(principalKey, principal)
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", challenge)
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.New(http.StatusUnauthorized, apierrors.MsgUnauthorized).Localize(GetLang(c), GetRequestID(c)),
		)
	}
}

func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

// SetPrincipal is used by tests that bypass BasicAuth.
func SetPrincipal(principal domain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(principalKey, principal)
		c.Next()
	}
}
