package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/models/dto"
	"github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/middleware"
)

// ResourceController handles the resource catalog and semantic search
type ResourceController struct {
	resourceService *services.ResourceService
	matcherService  *services.MatcherService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, matcherService *services.MatcherService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		matcherService:  matcherService,
	}
}

// Add handles listing a new shareable resource
// @Summary Add a resource
// @Description Lists a resource for lending or giveaway; its embedding is computed on creation
// @Tags resources
// @Accept json
// @Produce json
// @Param request body dto.AddResourceRequest true "Resource information"
// @Success 201 {object} dto.APIResponse{data=dto.AddResourceResponse} "Resource added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown owner"
// @Failure 502 {object} dto.ErrorResponse "Embedding provider failed"
// @Router /resources [post]
func (c *ResourceController) Add(ctx *gin.Context) {
	var req dto.AddResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	resource := &models.Resource{
		Type:        models.ResourceType(req.Type),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.StudentID,
		Status:      models.ListingStatus(req.Status),
		Cost:        req.Cost,
	}

	if err := c.resourceService.Add(ctx, resource); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(
		"Resource added successfully!",
		dto.AddResourceResponse{ResourceID: resource.ID},
	))
}

// Get retrieves a single resource
// @Summary Get resource by ID
// @Description Retrieves a resource, whether or not it is still available
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Resource ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resource, err := c.resourceService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resource))
}

// ListAvailable retrieves all resources open for exchange
// @Summary List available resources
// @Description Retrieves every available resource with owner contact details
// @Tags resources
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Resource} "Resources retrieved"
// @Router /resources [get]
func (c *ResourceController) ListAvailable(ctx *gin.Context) {
	resources, err := c.resourceService.ListAvailable(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resources))
}

// Search ranks available resources against a free-text query
// @Summary Search resources
// @Description Returns available resources whose semantic similarity to the query exceeds the threshold, best match first
// @Tags resources
// @Produce json
// @Param query query string false "Free-text query"
// @Param threshold query number false "Similarity cutoff, defaults to the configured value"
// @Success 200 {object} dto.APIResponse{data=[]models.Match} "Matches retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid threshold"
// @Failure 502 {object} dto.ErrorResponse "Embedding provider failed"
// @Router /resources/search [get]
func (c *ResourceController) Search(ctx *gin.Context) {
	query := ctx.Query("query")

	threshold := c.matcherService.DefaultThreshold()
	if raw := ctx.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Threshold must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		threshold = parsed
	}

	matches, err := c.matcherService.FindMatches(ctx, query, threshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(matches))
}
