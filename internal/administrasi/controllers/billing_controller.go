package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
	"github.com/rsudharapan/igd-backend/internal/administrasi/services"
)

// BillingController menangani permintaan terkait data Billing.
type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{Service: service}
}

// InputBilling mencatat baris tindakan dan obat untuk satu kunjungan.
func (bc *BillingController) InputBilling(c echo.Context) error {
	var req models.InputBillingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.IDKunjungan == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_kunjungan is required",
			"data":    nil,
		})
	}

	if err := bc.Service.InputBilling(req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to input billing: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Billing recorded successfully",
		"data":    nil,
	})
}

// ListBilling mengembalikan data billing terbaru, dengan filter status
// opsional lewat query param status.
func (bc *BillingController) ListBilling(c echo.Context) error {
	statusParam := c.QueryParam("status")
	var filterStatus *int
	if statusParam != "" {
		if val, err := strconv.Atoi(statusParam); err == nil {
			filterStatus = &val
		}
	}

	data, err := bc.Service.GetRecentBilling(filterStatus)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve billing data: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Billing data retrieved successfully",
		"data":    data,
	})
}

// BillingDetail mengembalikan seluruh baris tagihan satu kunjungan.
func (bc *BillingController) BillingDetail(c echo.Context) error {
	idKunjungan, ok := parseIDParam(c, "id_kunjungan")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_kunjungan is required",
			"data":    nil,
		})
	}

	detail, err := bc.Service.GetBillingDetail(idKunjungan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Billing not found",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve billing detail: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Billing detail retrieved successfully",
		"data":    detail,
	})
}

// BayarBilling menandai billing kunjungan sebagai sudah dibayar.
func (bc *BillingController) BayarBilling(c echo.Context) error {
	idKunjungan, ok := parseIDParam(c, "id_kunjungan")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_kunjungan is required",
			"data":    nil,
		})
	}

	if err := bc.Service.BayarBilling(idKunjungan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Billing not found or already paid",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to pay billing: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Billing paid successfully",
		"data":    nil,
	})
}
