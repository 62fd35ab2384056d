package http

import (
	"strings"

	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
)

type ProvinceRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type UpdateProvinceRequest struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

type LocalityRequest struct {
	Name       string `json:"name"`
	Zipcode    string `json:"zipcode"`
	ProvinceID uint64 `json:"provinceId"`
}

type UpdateLocalityRequest struct {
	Name       *string `json:"name"`
	Zipcode    *string `json:"zipcode"`
	ProvinceID *uint64 `json:"provinceId"`
}

type PickupPointRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Description  string  `json:"description"`
	OpeningHours string  `json:"openingHours"`
	ImageURL     string  `json:"imageUrl"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocalityID   uint64  `json:"localityId"`
}

type UpdatePickupPointRequest struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Description  *string  `json:"description"`
	OpeningHours *string  `json:"openingHours"`
	ImageURL     *string  `json:"imageUrl"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Active       *bool    `json:"active"`
	LocalityID   *uint64  `json:"localityId"`
}

func (h *Handler) GetProvinces(c *gin.Context) {
	provinces, err := h.locations.GetProvinces(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find provinces")
		return
	}
	respondOK(c, "provinces found successfully", provinces)
}

func (h *Handler) GetProvince(c *gin.Context) {
	id, ok := parseID(c, "id", "province")
	if !ok {
		return
	}
	province, err := h.locations.GetProvince(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find province")
		return
	}
	respondOK(c, "province found successfully", province)
}

func (h *Handler) CreateProvince(c *gin.Context) {
	var req ProvinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Country = strings.TrimSpace(req.Country)
	if req.Name == "" || req.Country == "" {
		respondBadRequest(c, "province name and country are required")
		return
	}

	province, err := h.locations.CreateProvince(c.Request.Context(), req.Name, req.Country)
	if err != nil {
		respondError(c, err, "failed to create province")
		return
	}
	respondCreated(c, "province created successfully", province)
}

func (h *Handler) UpdateProvince(c *gin.Context) {
	id, ok := parseID(c, "id", "province")
	if !ok {
		return
	}
	var req UpdateProvinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	province, err := h.locations.UpdateProvince(c.Request.Context(), id, req.Name, req.Country)
	if err != nil {
		respondError(c, err, "failed to update province")
		return
	}
	respondOK(c, "province updated successfully", province)
}

func (h *Handler) DeleteProvince(c *gin.Context) {
	id, ok := parseID(c, "id", "province")
	if !ok {
		return
	}
	if err := h.locations.DeleteProvince(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete province")
		return
	}
	respondNoContent(c)
}

func (h *Handler) GetLocalities(c *gin.Context) {
	localities, err := h.locations.GetLocalities(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find localities")
		return
	}
	respondOK(c, "localities found successfully", localities)
}

func (h *Handler) GetLocality(c *gin.Context) {
	id, ok := parseID(c, "id", "locality")
	if !ok {
		return
	}
	locality, err := h.locations.GetLocality(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find locality")
		return
	}
	respondOK(c, "locality found successfully", locality)
}

func (h *Handler) CreateLocality(c *gin.Context) {
	var req LocalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Zipcode = spaceRe.ReplaceAllString(strings.TrimSpace(req.Zipcode), "")
	if req.Name == "" || req.Zipcode == "" || req.ProvinceID == 0 {
		respondBadRequest(c, "locality name, zipcode and provinceId are required")
		return
	}

	locality, err := h.locations.CreateLocality(c.Request.Context(), req.Name, req.Zipcode, req.ProvinceID)
	if err != nil {
		respondError(c, err, "failed to create locality")
		return
	}
	respondCreated(c, "locality created successfully", locality)
}

func (h *Handler) UpdateLocality(c *gin.Context) {
	id, ok := parseID(c, "id", "locality")
	if !ok {
		return
	}
	var req UpdateLocalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	locality, err := h.locations.UpdateLocality(c.Request.Context(), id, req.Name, req.Zipcode, req.ProvinceID)
	if err != nil {
		respondError(c, err, "failed to update locality")
		return
	}
	respondOK(c, "locality updated successfully", locality)
}

func (h *Handler) DeleteLocality(c *gin.Context) {
	id, ok := parseID(c, "id", "locality")
	if !ok {
		return
	}
	if err := h.locations.DeleteLocality(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete locality")
		return
	}
	respondNoContent(c)
}

func (h *Handler) GetPickupPoints(c *gin.Context) {
	points, err := h.locations.GetPickupPoints(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find pickup points")
		return
	}
	respondOK(c, "pickup points found successfully", points)
}

func (h *Handler) GetActivePickupPoints(c *gin.Context) {
	points, err := h.locations.GetActivePickupPoints(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to find active pickup points")
		return
	}
	respondOK(c, "active pickup points found successfully", points)
}

func (h *Handler) GetPickupPoint(c *gin.Context) {
	id, ok := parseID(c, "id", "pickup point")
	if !ok {
		return
	}
	point, err := h.locations.GetPickupPoint(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find pickup point")
		return
	}
	respondOK(c, "pickup point found successfully", point)
}

func (h *Handler) GetPickupPointsByLocality(c *gin.Context) {
	id, ok := parseID(c, "id", "locality")
	if !ok {
		return
	}
	points, err := h.locations.GetPickupPointsByLocality(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to find pickup points")
		return
	}
	respondOK(c, "pickup points found successfully", points)
}

func (h *Handler) CreatePickupPoint(c *gin.Context) {
	var req PickupPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" || req.LocalityID == 0 {
		respondBadRequest(c, "pickup point name, address and localityId are required")
		return
	}

	point, err := h.locations.CreatePickupPoint(c.Request.Context(), services.CreatePickupPointInput{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Description:  strings.TrimSpace(req.Description),
		OpeningHours: strings.TrimSpace(req.OpeningHours),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocalityID:   req.LocalityID,
	})
	if err != nil {
		respondError(c, err, "failed to create pickup point")
		return
	}
	respondCreated(c, "pickup point created successfully", point)
}

func (h *Handler) UpdatePickupPoint(c *gin.Context) {
	id, ok := parseID(c, "id", "pickup point")
	if !ok {
		return
	}
	var req UpdatePickupPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	point, err := h.locations.UpdatePickupPoint(c.Request.Context(), id, services.UpdatePickupPointInput{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Description:  req.Description,
		OpeningHours: req.OpeningHours,
		ImageURL:     req.ImageURL,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Active:       req.Active,
		LocalityID:   req.LocalityID,
	})
	if err != nil {
		respondError(c, err, "failed to update pickup point")
		return
	}
	respondOK(c, "pickup point updated successfully", point)
}

func (h *Handler) DeletePickupPoint(c *gin.Context) {
	id, ok := parseID(c, "id", "pickup point")
	if !ok {
		return
	}
	if err := h.locations.DeletePickupPoint(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete pickup point")
		return
	}
	respondNoContent(c)
}
