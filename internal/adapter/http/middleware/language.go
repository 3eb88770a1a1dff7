package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/caronvincent/todo-burbanie/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware stores the language negotiated from Accept-Language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
