package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rsudharapan/igd-backend/internal/ambulans/models"
	"github.com/rsudharapan/igd-backend/internal/ambulans/services"
)

// TarifController menangani permintaan CRUD konfigurasi tarif ambulans.
type TarifController struct {
	Service *services.TarifService
}

func NewTarifController(service *services.TarifService) *TarifController {
	return &TarifController{Service: service}
}

// ListTarif mengembalikan daftar konfigurasi tarif. Query param aktif=1
// membatasi ke konfigurasi aktif saja (untuk pilihan kendaraan di kasir).
func (tc *TarifController) ListTarif(c echo.Context) error {
	aktifSaja := c.QueryParam("aktif") == "1"

	data, err := tc.Service.ListTarif(aktifSaja)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve tarif data: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tarif data retrieved successfully",
		"data":    data,
	})
}

// CreateTarif menambahkan konfigurasi tarif baru.
func (tc *TarifController) CreateTarif(c echo.Context) error {
	var req models.InputTarifRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.JenisKendaraan == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "jenis_kendaraan is required",
			"data":    nil,
		})
	}

	id, err := tc.Service.CreateTarif(req)
	if err != nil {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"status":  http.StatusConflict,
			"message": "Failed to create tarif: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tarif created successfully",
		"data":    map[string]interface{}{"id_tarif": id},
	})
}

// UpdateTarif memperbarui konfigurasi tarif berdasarkan path param id.
func (tc *TarifController) UpdateTarif(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid id",
			"data":    nil,
		})
	}

	var req models.InputTarifRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if err := tc.Service.UpdateTarif(id, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Tarif not found",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to update tarif: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tarif updated successfully",
		"data":    nil,
	})
}

// NonaktifkanTarif menonaktifkan konfigurasi tarif (soft-delete).
func (tc *TarifController) NonaktifkanTarif(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid id",
			"data":    nil,
		})
	}

	if err := tc.Service.NonaktifkanTarif(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Tarif not found",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to deactivate tarif: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tarif deactivated successfully",
		"data":    nil,
	})
}
