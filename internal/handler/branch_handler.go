package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/upload"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct {
	branchService service.BranchService
	saver         *upload.Saver
}

func NewBranchHandler(branchService service.BranchService, saver *upload.Saver) *BranchHandler {
	return &BranchHandler{branchService: branchService, saver: saver}
}

func (h *BranchHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	branches := router.Group("/management-branch")
	{
		branches.POST("/create-branch",
			middleware.RequireAuth(),
			middleware.RequireRole(store, model.RoleAdministrator),
			h.CreateBranch)
		branches.GET("/get-all", h.GetAllBranches)
		branches.GET("/get-branch/:id", middleware.RequireAuth(), h.GetBranchByID)
		branches.PUT("/update-branch/:id",
			middleware.RequireAuth(),
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.UpdateBranch)
		branches.PATCH("/changestatus-branch/:id",
			middleware.RequireAuth(),
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.ChangeStatus)
	}
}

// CreateBranch creates a new branch
// @Summary      Create branch
// @Tags         branches
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true  "Branch name"
// @Param        address      formData  string  true  "Address"
// @Param        phoneNumber  formData  string  true  "Phone number"
// @Param        email        formData  string  true  "Email"
// @Param        images       formData  file    true  "Branch images (max 5)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /management-branch/create-branch [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.CreateBranchRequest{
		Name:        c.PostForm("name"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phoneNumber"),
		Email:       c.PostForm("email"),
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Branch created successfully", branch))
}

// GetAllBranches lists every branch
// @Summary      List branches
// @Tags         branches
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /management-branch/get-all [get]
func (h *BranchHandler) GetAllBranches(c *gin.Context) {
	branches, err := h.branchService.GetAllBranches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(branches))
}

// GetBranchByID returns a branch by id
// @Summary      Get branch
// @Tags         branches
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Branch ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /management-branch/get-branch/{id} [get]
func (h *BranchHandler) GetBranchByID(c *gin.Context) {
	branch, err := h.branchService.GetBranchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(branch))
}

// UpdateBranch updates a branch and optionally replaces its images
// @Summary      Update branch
// @Tags         branches
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true  "Branch ID"
// @Param        name         formData  string  true  "Branch name"
// @Param        address      formData  string  true  "Address"
// @Param        phoneNumber  formData  string  true  "Phone number"
// @Param        email        formData  string  true  "Email"
// @Param        images       formData  file    false "Replacement images (max 5)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /management-branch/update-branch/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.UpdateBranchRequest{
		Name:        c.PostForm("name"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phoneNumber"),
		Email:       c.PostForm("email"),
	}

	branch, oldImages, err := h.branchService.UpdateBranch(c.Request.Context(), c.Param("id"), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()
	h.saver.Remove(oldImages)

	c.JSON(http.StatusOK, response.SuccessWithMessage("Branch updated successfully", branch))
}

// ChangeStatus toggles the isActive flag of a branch
// @Summary      Toggle branch status
// @Tags         branches
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Branch ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /management-branch/changestatus-branch/{id} [patch]
func (h *BranchHandler) ChangeStatus(c *gin.Context) {
	branch, err := h.branchService.ChangeStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Branch status updated", branch))
}
