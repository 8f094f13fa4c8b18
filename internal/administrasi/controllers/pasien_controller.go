package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
	"github.com/rsudharapan/igd-backend/internal/administrasi/services"
	"github.com/rsudharapan/igd-backend/ws"
)

type PasienController struct {
	Service *services.PendaftaranService
}

func NewPasienController(service *services.PendaftaranService) *PasienController {
	return &PasienController{Service: service}
}

// RegisterPasienRequest adalah payload pendaftaran kedatangan IGD.
type RegisterPasienRequest struct {
	Nama         string `json:"nama"`
	TanggalLahir string `json:"tanggal_lahir"` // format 2006-01-02
	JenisKelamin string `json:"jenis_kelamin"`
	Nik          string `json:"nik"`
	NoTelp       string `json:"no_telp"`
	Alamat       string `json:"alamat"`
	Kelurahan    string `json:"kelurahan"`
	Kecamatan    string `json:"kecamatan"`
	LevelTriase  int    `json:"level_triase"`
	KeluhanUtama string `json:"keluhan_utama"`
}

// RegisterPasien mendaftarkan kedatangan pasien IGD dan menyiarkan nomor
// antrian baru ke dashboard lewat WebSocket.
func (pc *PasienController) RegisterPasien(c echo.Context) error {
	var req RegisterPasienRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.Nama == "" || req.Nik == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "nama and nik are required",
			"data":    nil,
		})
	}

	tanggalLahir, err := time.Parse("2006-01-02", req.TanggalLahir)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid tanggal_lahir, expected format 2006-01-02",
			"data":    nil,
		})
	}

	pasien := models.Pasien{
		Nama:         req.Nama,
		TanggalLahir: tanggalLahir,
		JenisKelamin: req.JenisKelamin,
		Nik:          req.Nik,
		NoTelp:       req.NoTelp,
		Alamat:       req.Alamat,
		Kelurahan:    req.Kelurahan,
		Kecamatan:    req.Kecamatan,
	}
	kunjungan := models.KunjunganIGD{
		LevelTriase:  req.LevelTriase,
		KeluhanUtama: req.KeluhanUtama,
	}

	idPasien, idKunjungan, nomorAntrian, err := pc.Service.RegisterPasienIGD(pasien, kunjungan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to register pasien: " + err.Error(),
			"data":    nil,
		})
	}

	// Kabari dashboard antrian bahwa ada pasien baru.
	if msg, err := json.Marshal(map[string]interface{}{
		"event":         "antrian_baru",
		"id_kunjungan":  idKunjungan,
		"nomor_antrian": nomorAntrian,
		"level_triase":  req.LevelTriase,
	}); err == nil {
		ws.HubInstance.Broadcast <- msg
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien registered successfully",
		"data": map[string]interface{}{
			"id_pasien":     idPasien,
			"id_kunjungan":  idKunjungan,
			"nomor_antrian": nomorAntrian,
		},
	})
}

// ListPasien mengembalikan daftar pasien dengan kunjungan terakhirnya.
func (pc *PasienController) ListPasien(c echo.Context) error {
	data, err := pc.Service.GetListPasien()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve pasien data: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien data retrieved successfully",
		"data":    data,
	})
}

// parseIDParam membaca query param integer wajib.
func parseIDParam(c echo.Context, nama string) (int, bool) {
	val := c.QueryParam(nama)
	if val == "" {
		return 0, false
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return id, true
}
