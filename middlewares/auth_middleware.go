package middlewares

import (
	"net/http"
	"strings"

	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak ditemukan"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid"})
			c.Abort()
			return
		}

		idF, ok := claims["user_id"].(float64)
		if !ok || idF <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(idF))
		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireRole membatasi route untuk role tertentu. Pengecekan otorisasi
// dilakukan eksplisit di sini, bukan diserahkan ke lapisan penyimpanan.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Tidak punya akses untuk aksi ini"})
			c.Abort()
			return
		}
		c.Next()
	}
}
