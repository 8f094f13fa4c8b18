package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rsudharapan/igd-backend/internal/administrasi/services"
	"github.com/rsudharapan/igd-backend/ws"
)

type KunjunganController struct {
	Service *services.KunjunganService
}

func NewKunjunganController(service *services.KunjunganService) *KunjunganController {
	return &KunjunganController{Service: service}
}

// ListKunjunganHariIni mengembalikan antrian IGD hari ini.
func (kc *KunjunganController) ListKunjunganHariIni(c echo.Context) error {
	data, err := kc.Service.ListKunjunganHariIni()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve kunjungan data: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Kunjungan data retrieved successfully",
		"data":    data,
	})
}

// UpdateStatusRequest adalah payload perubahan status kunjungan.
type UpdateStatusRequest struct {
	IDKunjungan int `json:"id_kunjungan"`
	Status      int `json:"status"`
}

// UpdateStatus mengubah status kunjungan dan menyiarkan perubahannya.
func (kc *KunjunganController) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if err := kc.Service.UpdateStatusKunjungan(req.IDKunjungan, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Kunjungan not found",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to update status: " + err.Error(),
			"data":    nil,
		})
	}

	if msg, err := json.Marshal(map[string]interface{}{
		"event":        "status_kunjungan",
		"id_kunjungan": req.IDKunjungan,
		"status":       req.Status,
	}); err == nil {
		ws.HubInstance.Broadcast <- msg
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Status updated successfully",
		"data":    nil,
	})
}

// Riwayat mengembalikan riwayat kunjungan seorang pasien.
func (kc *KunjunganController) Riwayat(c echo.Context) error {
	idPasien, ok := parseIDParam(c, "id_pasien")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_pasien is required",
			"data":    nil,
		})
	}

	data, err := kc.Service.RiwayatKunjungan(idPasien)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve riwayat: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Riwayat retrieved successfully",
		"data":    data,
	})
}
