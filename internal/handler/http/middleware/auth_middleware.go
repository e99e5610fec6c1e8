package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

const userContextKey = "user"

// AuthMiddleWare resolves the bearer token from the Authorization header to a
// registered user and stores it on the gin context. Requests without a valid
// token are rejected with 401.
func AuthMiddleWare(authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authUsecase.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}

		c.Set(userContextKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleWare.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
