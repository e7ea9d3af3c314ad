package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusshare/campusshare/internal/app/models/dto"
	"github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/middleware"
)

// RewardController handles the reward catalog and redemption
type RewardController struct {
	rewardService *services.RewardService
}

// NewRewardController creates a new RewardController
func NewRewardController(rewardService *services.RewardService) *RewardController {
	return &RewardController{rewardService: rewardService}
}

// List retrieves all redeemable rewards
// @Summary List rewards
// @Description Retrieves the catalog of redeemable rewards
// @Tags rewards
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Reward} "Rewards retrieved"
// @Router /rewards [get]
func (c *RewardController) List(ctx *gin.Context) {
	rewards, err := c.rewardService.ListAvailable(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rewards))
}

// Redeem debits a student's points for a reward
// @Summary Redeem a reward
// @Description Debits the student by the reward's required points if the balance allows it
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body dto.RedeemRewardRequest true "Redemption information"
// @Success 200 {object} dto.APIResponse{data=dto.RedeemRewardResponse} "Reward redeemed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or reward not found"
// @Failure 409 {object} dto.ErrorResponse "Insufficient points"
// @Router /rewards/redeem [post]
func (c *RewardController) Redeem(ctx *gin.Context) {
	var req dto.RedeemRewardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid redemption data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	reward, err := c.rewardService.Redeem(ctx, req.StudentID, req.RewardID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RedeemRewardResponse{
		Status:     "redeemed",
		RewardName: reward.Name,
	}))
}
