package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

type Claims struct {
	UserID   string `json:"uid"`
	TenantID string `json:"tid"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Plan     string `json:"plan"`
	jwt.RegisteredClaims
}

type JwtService struct {
	secret   []byte
	duration time.Duration
}

func NewJwtService(cfg *config.Config) *JwtService {
	return &JwtService{
		secret:   []byte(cfg.JWT.Secret),
		duration: cfg.JWT.Duration,
	}
}

func (s *JwtService) Generate(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.Id.String(),
		TenantID: u.TenantId.String(),
		Name:     u.Name,
		Role:     string(u.Role),
		Plan:     string(u.Plan),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado")
	}
	return claims, nil
}

func respondAuth(c *gin.Context, err *appErrors.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":   err.Code,
		"message": err.Message,
	})
	c.Abort()
}

// AuthMiddleware valida o Bearer token e injeta a identidade no contexto da
// requisição: user_id, tenant_id, user_name, role e plan.
func AuthMiddleware(jwtService *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondAuth(c, appErrors.NewAuthError("TOKEN_MISSING", "Token de autenticação não informado"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondAuth(c, appErrors.NewAuthError("TOKEN_MALFORMED", "Formato do token inválido, use: Bearer <token>"))
			return
		}

		claims, err := jwtService.Parse(parts[1])
		if err != nil {
			appErr, _ := appErrors.AsAppError(err)
			respondAuth(c, appErr)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("user_name", claims.Name)
		c.Set("role", user.Role(claims.Role))
		c.Set("plan", user.Plan(claims.Plan))

		c.Next()
	}
}

// RequireRole barra a rota para quem não tem o papel exigido.
func RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			respondAuth(c, appErrors.NewAuthError("ROLE_MISSING", "Papel do usuário não encontrado"))
			return
		}

		role, ok := roleValue.(user.Role)
		if !ok || role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   appErrors.ErrForbidden.Code,
				"message": "Acesso restrito ao administrador da plataforma",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
