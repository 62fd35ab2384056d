package http

import (
	"strings"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

func (r *CreateUserRequest) Sanitize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = spaceRe.ReplaceAllString(strings.TrimSpace(r.Phone), "")
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.PostalCode = spaceRe.ReplaceAllString(strings.TrimSpace(r.PostalCode), "")
}

func (r *CreateUserRequest) Validate() error {
	if r.FirstName == "" {
		return domain.Invalidf("first name is required")
	}
	if r.LastName == "" {
		return domain.Invalidf("last name is required")
	}
	if r.Email == "" {
		return domain.Invalidf("email is required")
	}
	if !emailRe.MatchString(r.Email) {
		return domain.Invalidf("email is not valid")
	}
	if r.Phone != "" && !phoneRe.MatchString(r.Phone) {
		return domain.Invalidf("phone is not valid")
	}
	if r.Role != "" && !domain.ValidUserRole(domain.UserRole(r.Role)) {
		return domain.Invalidf("invalid role, must be one of: customer, seller, admin")
	}
	return nil
}

type UpdateUserRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil && !emailRe.MatchString(strings.ToLower(strings.TrimSpace(*r.Email))) {
		return domain.Invalidf("email is not valid")
	}
	if r.Role != nil && !domain.ValidUserRole(domain.UserRole(strings.ToLower(*r.Role))) {
		return domain.Invalidf("invalid role, must be one of: customer, seller, admin")
	}
	return nil
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.users.GetUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find users")
		return
	}
	respondOK(c, "users found successfully", users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find user")
		return
	}
	respondOK(c, "user found successfully", user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to create user")
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), services.CreateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       domain.UserRole(req.Role),
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		respondError(c, err, "failed to create user")
		return
	}
	respondCreated(c, "user created successfully", user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "failed to update user")
		return
	}

	in := services.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		in.Email = &email
	}
	if req.Role != nil {
		role := domain.UserRole(strings.ToLower(*req.Role))
		in.Role = &role
	}

	user, err := h.users.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "failed to update user")
		return
	}
	respondOK(c, "user updated successfully", user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete user")
		return
	}
	respondNoContent(c)
}
