package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
)

// TokenAuth authenticates requests with bearer tokens of the given type.
// The presented token is hashed and looked up; only unexpired tokens pass.
// The owning user id, when the token has one, lands in the context under
// "user_id".
func TokenAuth(db *gorm.DB, tokenType model.TokenType) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		sum := sha256.Sum256([]byte(raw))
		lookup := hex.EncodeToString(sum[:])

		var token model.Token
		err := db.WithContext(c.Request.Context()).
			Where("token_hash = ? AND type = ?", lookup, tokenType).
			First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		if token.Expired(time.Now().UTC()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("token expired"))
			return
		}

		if token.UserID != nil {
			c.Set("user_id", *token.UserID)
		}
		c.Next()
	}
}
