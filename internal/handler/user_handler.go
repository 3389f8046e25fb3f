package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/upload"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	saver       *upload.Saver
}

func NewUserHandler(userService service.UserService, saver *upload.Saver) *UserHandler {
	return &UserHandler{userService: userService, saver: saver}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	users := router.Group("/management-user", middleware.RequireAuth())
	{
		users.POST("/create-user",
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.CreateUser)
		users.PUT("/update-profile/:id", h.UpdateProfile)
		users.PATCH("/update-account-status/:id",
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.ChangeAccountStatus)
		users.GET("/get-user-profile/:id", h.GetProfile)
		users.GET("/list",
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.ListUsers)
	}
}

// CreateUser creates a staff or customer account
// @Summary      Create user
// @Tags         users
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName     formData  string  true   "Full name"
// @Param        phoneNumber  formData  string  true   "Vietnamese phone number"
// @Param        password     formData  string  true   "Password (min 6 chars)"
// @Param        address      formData  string  true   "Address"
// @Param        email        formData  string  false  "Email"
// @Param        role         formData  string  false  "Role (default: Customer)"
// @Param        gender       formData  string  false  "Gender (default: Other)"
// @Param        branch_id    formData  string  false  "Branch ID"
// @Param        images       formData  file    false  "Profile images (max 5)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /management-user/create-user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.CreateUserRequest{
		FullName:    c.PostForm("fullName"),
		Email:       c.PostForm("email"),
		PhoneNumber: c.PostForm("phoneNumber"),
		Password:    c.PostForm("password"),
		Role:        c.PostForm("role"),
		Gender:      c.PostForm("gender"),
		Address:     c.PostForm("address"),
		BranchID:    c.PostForm("branch_id"),
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()

	c.JSON(http.StatusCreated, response.SuccessWithMessage("User created successfully", user))
}

// UpdateProfile updates profile fields and optionally replaces images
// @Summary      Update profile
// @Tags         users
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id        path      string  true   "User ID"
// @Param        fullName  formData  string  false  "Full name"
// @Param        email     formData  string  false  "Email"
// @Param        gender    formData  string  false  "Gender"
// @Param        address   formData  string  false  "Address"
// @Param        images    formData  file    false  "Replacement images (max 5)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /management-user/update-profile/{id} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.UpdateProfileRequest{
		FullName: c.PostForm("fullName"),
		Email:    c.PostForm("email"),
		Gender:   c.PostForm("gender"),
		Address:  c.PostForm("address"),
	}

	user, oldImages, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("id"), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()
	h.saver.Remove(oldImages)

	c.JSON(http.StatusOK, response.SuccessWithMessage("Profile updated successfully", user))
}

// ChangeAccountStatus toggles the isActive flag of an account
// @Summary      Toggle account status
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /management-user/update-account-status/{id} [patch]
func (h *UserHandler) ChangeAccountStatus(c *gin.Context) {
	user, err := h.userService.ChangeAccountStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Account status updated", user))
}

// GetProfile returns a user profile by id
// @Summary      Get user profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /management-user/get-user-profile/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(user))
}

// ListUsers returns paginated users with optional role/branch filters
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        page       query  int     false  "Page number (default: 1)"
// @Param        limit      query  int     false  "Items per page (default: 20)"
// @Param        role       query  string  false  "Filter by role"
// @Param        branch_id  query  string  false  "Filter by branch"
// @Param        search     query  string  false  "Search by name or phone"
// @Success      200  {object}  response.Response
// @Router       /management-user/list [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := pagination.Parse(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), service.UserListFilter{
		Role:     c.Query("role"),
		BranchID: c.Query("branch_id"),
		Search:   c.Query("search"),
		Page:     page.Page,
		Limit:    page.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(users, page.Page, page.Limit, total))
}
