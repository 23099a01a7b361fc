package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"timesheet/database"
	"timesheet/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const EngineerContextKey contextKey = "engineer"

type Claims struct {
	EngineerID uint        `json:"engineer_id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(engineer *models.Engineer, expiration time.Duration) (string, error) {
	claims := &Claims{
		EngineerID: engineer.ID,
		Username:   engineer.Username,
		Role:       engineer.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Try to get token from cookie first
		var tokenString string
		cookie, err := r.Cookie("token")
		if err == nil {
			tokenString = cookie.Value
		}

		// If no cookie, try Authorization header
		if tokenString == "" {
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}
		}

		if tokenString == "" {
			unauthorized(w, "Missing credentials")
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			// Clear invalid cookie
			http.SetCookie(w, &http.Cookie{
				Name:     "token",
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})
			unauthorized(w, "Invalid or expired token")
			return
		}

		// Get full engineer from database
		var engineer models.Engineer
		if err := database.GetDB().First(&engineer, claims.EngineerID).Error; err != nil {
			unauthorized(w, "Unknown account")
			return
		}

		ctx := context.WithValue(r.Context(), EngineerContextKey, &engineer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			engineer := GetEngineerFromContext(r.Context())
			if engineer == nil {
				unauthorized(w, "Missing credentials")
				return
			}

			for _, role := range roles {
				if engineer.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": http.StatusForbidden,
				"error":  map[string]interface{}{"message": "Forbidden"},
			})
		})
	}
}

func GetEngineerFromContext(ctx context.Context) *models.Engineer {
	engineer, ok := ctx.Value(EngineerContextKey).(*models.Engineer)
	if !ok {
		return nil
	}
	return engineer
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": http.StatusUnauthorized,
		"error":  map[string]interface{}{"message": message},
	})
}
