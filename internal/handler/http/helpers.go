package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// BindAndValidate binds a JSON request and translates binding failures into
// the API's fixed error messages. requiredMessage is used when a required
// field is missing or the body is not valid JSON.
func BindAndValidate(c *gin.Context, req interface{}, requiredMessage string) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, bindingErrorMessage(err, requiredMessage))
		return err
	}
	return nil
}

func bindingErrorMessage(err error, requiredMessage string) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return requiredMessage
	}
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "userrole":
			return "Invalid role"
		case "donationtype":
			return "Invalid donation type"
		case "gt":
			return fe.Field() + " must be positive"
		}
	}
	return requiredMessage
}

// respondUsecaseError maps sentinel errors from the usecase layer to HTTP
// status codes. forbiddenMessage carries the operation-specific 403 text.
func respondUsecaseError(c *gin.Context, err error, forbiddenMessage string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrUnauthenticated):
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, forbiddenMessage)
	case errors.Is(err, entity.ErrDonationNotFound):
		ErrorHandler(c, http.StatusNotFound, "Donation not found")
	case errors.Is(err, entity.ErrAlreadyCollected):
		ErrorHandler(c, http.StatusBadRequest, "Donation already collected")
	case errors.Is(err, entity.ErrDuplicateEmail):
		ErrorHandler(c, http.StatusBadRequest, "User already exists with this email")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
