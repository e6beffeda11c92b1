package middleware

import (
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langContextKey = "lang"

// LanguageMiddleware resolves the Accept-Language header to one of the supported languages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langContextKey, translator.MatchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langContextKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
