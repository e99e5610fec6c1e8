package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for auth handler to allow interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup handles account registration. No session token is issued; the client
// logs in separately.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req, "All fields are required"); err != nil {
		return
	}

	_, err := h.authUsecase.Signup(c.Request.Context(), req.Name, req.Email, req.Password, entity.UserRole(req.Role))
	if err != nil {
		respondUsecaseError(c, err, "Access denied")
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.MessageResponse{Message: "User created successfully"})
}

// Login handles credential verification and token issuance.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req, "All fields are required"); err != nil {
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password, entity.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, entity.ErrUnauthenticated) {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials or role")
			return
		}
		respondUsecaseError(c, err, "Access denied")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(*user),
	})
}
