package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"Email" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type registerRequest struct {
	FullName    string `json:"FullName" binding:"required"`
	Email       string `json:"Email" binding:"required"`
	PhoneNumber string `json:"PhoneNumber"`
	Address     string `json:"Address"`
	Governorate string `json:"Governorate"`
	Password    string `json:"Password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "invalid request body"})
		return
	}

	s.data.mu.Lock()
	u, ok := s.data.users[strings.ToLower(strings.TrimSpace(req.Email))]
	s.data.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "invalid credentials"})
		return
	}

	accessToken, err := s.issueToken(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "token generation failed"})
		return
	}

	s.log.Info("user logged in", zap.String("email", u.Email))
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": uuid.NewString(),
		"roles":        u.Roles,
	})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, exists := s.data.users[email]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "email already registered"})
		return
	}

	if _, err := s.data.addUser(req.FullName, email, req.PhoneNumber, req.Address, req.Governorate, req.Password, []string{"Customer"}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "could not create account"})
		return
	}

	s.log.Info("user registered", zap.String("email", email))
	c.JSON(http.StatusCreated, gin.H{"Message": "account created"})
}

// RegisterUser creates an account directly, bypassing the HTTP endpoint.
// Used to seed users in tests and demos.
func (s *Server) RegisterUser(fullName, email, password string, roles ...string) error {
	if len(roles) == 0 {
		roles = []string{"Customer"}
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	_, err := s.data.addUser(fullName, strings.ToLower(email), "", "", "", password, roles)
	return err
}
