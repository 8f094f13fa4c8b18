package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rsudharapan/igd-backend/internal/administrasi/services"
	"github.com/rsudharapan/igd-backend/pkg/utils"
)

type AdministrasiController struct {
	Service *services.AdministrasiService
}

func NewAdministrasiController(service *services.AdministrasiService) *AdministrasiController {
	return &AdministrasiController{Service: service}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login menangani permintaan login petugas administrasi IGD.
func (ac *AdministrasiController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	karyawan, err := ac.Service.AuthenticateKaryawan(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid username or password",
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		strconv.Itoa(karyawan.IDKaryawan),
		karyawan.Role,
		karyawan.IDRole,
		karyawan.Privileges,
		karyawan.Username,
		time.Now().Add(12*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate token",
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login successful",
		"data": map[string]interface{}{
			"id_karyawan": karyawan.IDKaryawan,
			"nama":        karyawan.Nama,
			"username":    karyawan.Username,
			"role":        karyawan.Role,
			"token":       token,
		},
	})
}
