package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/dto"
	"github.com/mikiasgoitom/FoodBridge/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/FoodBridge/internal/usecase/contract"
)

// DonationHandlerInterface defines the methods for donation handler to allow interface-based dependency injection (for testing/mocking)
type DonationHandlerInterface interface {
	Create(*gin.Context)
	ListMine(*gin.Context)
	ListPending(*gin.Context)
	ListAll(*gin.Context)
	Collect(*gin.Context)
}

// Ensure DonationHandler implements DonationHandlerInterface
var _ DonationHandlerInterface = (*DonationHandler)(nil)

type DonationHandler struct {
	donationUsecase usecasecontract.IDonationUseCase
}

func NewDonationHandler(donationUsecase usecasecontract.IDonationUseCase) *DonationHandler {
	return &DonationHandler{
		donationUsecase: donationUsecase,
	}
}

// Create handles donation submission by a donor.
func (h *DonationHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if user.Role != entity.UserRoleDonor {
		ErrorHandler(c, http.StatusForbidden, "Only donors can create donations")
		return
	}

	var req dto.CreateDonationRequest
	if err := BindAndValidate(c, &req, "Type and location are required"); err != nil {
		return
	}

	donation, err := h.donationUsecase.Create(c.Request.Context(), user, usecasecontract.DonationInput{
		Type:       entity.DonationType(req.Type),
		PeopleFed:  req.PeopleFed,
		QuantityKg: req.QuantityKg,
		Location:   req.Location,
	})
	if err != nil {
		respondUsecaseError(c, err, "Only donors can create donations")
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.DonationResponse{
		Message:  "Donation created successfully",
		Donation: donation,
	})
}

// ListMine returns the authenticated donor's own donations, newest first.
func (h *DonationHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := h.donationUsecase.ListMine(c.Request.Context(), user)
	if err != nil {
		respondUsecaseError(c, err, "Only donors can view their donations")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToDonationListResponse(donations))
}

// ListPending returns the pending feed matching the collector's role, newest first.
func (h *DonationHandler) ListPending(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := h.donationUsecase.ListPending(c.Request.Context(), user)
	if err != nil {
		respondUsecaseError(c, err, "Access denied")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToDonationListResponse(donations))
}

// ListAll returns every donation visible to the caller's role. Role-based
// visibility applies to this read path exactly like the filtered endpoints.
func (h *DonationHandler) ListAll(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := h.donationUsecase.ListVisible(c.Request.Context(), user)
	if err != nil {
		respondUsecaseError(c, err, "Access denied")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToDonationListResponse(donations))
}

// Collect handles the pending -> collected transition by an eligible collector.
func (h *DonationHandler) Collect(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !user.Role.IsCollector() {
		ErrorHandler(c, http.StatusForbidden, "Only NGO and Biogas agents can collect donations")
		return
	}

	donation, err := h.donationUsecase.Collect(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondUsecaseError(c, err, collectForbiddenMessage(user.Role))
		return
	}

	SuccessHandler(c, http.StatusOK, dto.DonationResponse{
		Message:  "Donation marked as collected successfully",
		Donation: donation,
	})
}

func collectForbiddenMessage(role entity.UserRole) string {
	switch role {
	case entity.UserRoleNGO:
		return "NGO agents can only collect fresh and packed food"
	case entity.UserRoleBiogas:
		return "Biogas agents can only collect organic waste"
	}
	return "Only NGO and Biogas agents can collect donations"
}
