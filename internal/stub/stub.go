// Package stub is an in-memory stand-in for the remote storefront API. It
// implements the endpoints the client consumes (auth, cart, shipping fees,
// discount codes, orders, admin notification) so the checkout flow can run
// end to end in development and in tests.
package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"storefront/internal/session"
)

type Server struct {
	engine    *gin.Engine
	data      *data
	jwtSecret string
	accessTTL time.Duration
	log       *zap.Logger
}

func New(jwtSecret string, accessTTL time.Duration, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:    gin.New(),
		data:      newData(),
		jwtSecret: jwtSecret,
		accessTTL: accessTTL,
		log:       log,
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	authed := s.engine.Group("/api")
	authed.Use(s.requireUser())
	{
		authed.GET("/cart", s.getCart)
		authed.POST("/cart/items", s.addCartItem)
		authed.POST("/orders", s.createOrder)
		authed.POST("/notification/send", s.sendNotification)
	}

	s.engine.GET("/api/shipping-fees", s.listShippingFees)
	s.engine.GET("/api/discount-codes/code/:code", s.getDiscountCode)
	s.engine.POST("/api/auth/login", s.login)
	s.engine.POST("/api/auth/register", s.register)
}

// Handler exposes the engine for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the stub on the given address.
func (s *Server) Run(addr string) error {
	s.log.Info("stub API listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

// requireUser validates the bearer token and injects the user id into the
// context.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

func (s *Server) issueToken(u *user) (string, error) {
	claims := jwt.MapClaims{
		"sub":             u.ID,
		"email":           u.Email,
		"exp":             time.Now().Add(s.accessTTL).Unix(),
		session.RoleClaim: u.Roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
