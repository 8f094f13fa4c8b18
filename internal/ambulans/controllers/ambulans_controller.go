package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/rsudharapan/igd-backend/internal/ambulans/models"
	"github.com/rsudharapan/igd-backend/internal/ambulans/services"
	"github.com/rsudharapan/igd-backend/internal/ambulans/tarif"
)

// AmbulansController menangani perhitungan tarif dan estimasi jarak.
type AmbulansController struct {
	Service *services.AmbulansService
}

func NewAmbulansController(service *services.AmbulansService) *AmbulansController {
	return &AmbulansController{Service: service}
}

// HitungTarif menghitung rincian tarif ambulans. Bila id_kunjungan diisi,
// rincian juga dilampirkan ke billing kunjungan tersebut.
func (ac *AmbulansController) HitungTarif(c echo.Context) error {
	var req models.HitungTarifRequest
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

	rincian, err := ac.Service.Hitung(c.Request().Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, tarif.ErrInputTidakValid):
			status = http.StatusBadRequest
		case errors.Is(err, tarif.ErrKendaraanTidakDikenal):
			status = http.StatusNotFound
		case errors.Is(err, tarif.ErrTarifNonaktif):
			status = http.StatusConflict
		}
		return c.JSON(status, map[string]interface{}{
			"status":  status,
			"message": "Failed to calculate tarif: " + err.Error(),
			"data":    nil,
		})
	}

	if err := ac.Service.Simpan(c.Request().Context(), req.IDKunjungan, rincian); err != nil {
		logrus.Errorf("rincian tarif terhitung tetapi gagal disimpan: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to save tarif breakdown: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tarif calculated successfully",
		"data":    rincian,
	})
}

// EstimasiJarak mengembalikan taksiran jarak asal-tujuan untuk ditampilkan
// sebelum perhitungan; kegagalan di sini berarti kasir mengisi jarak manual.
func (ac *AmbulansController) EstimasiJarak(c echo.Context) error {
	asal := c.QueryParam("asal")
	tujuan := c.QueryParam("tujuan")
	if asal == "" || tujuan == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "asal and tujuan are required",
			"data":    nil,
		})
	}
	if ac.Service.Taksir == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  http.StatusServiceUnavailable,
			"message": "Distance estimation is not configured",
			"data":    nil,
		})
	}

	hasil, err := ac.Service.Taksir.Estimasi(c.Request().Context(), asal, tujuan)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"status":  http.StatusBadGateway,
			"message": "Failed to estimate distance: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Distance estimated successfully",
		"data":    hasil,
	})
}
