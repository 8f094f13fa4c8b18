package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	adminControllers "github.com/rsudharapan/igd-backend/internal/administrasi/controllers"
	adminServices "github.com/rsudharapan/igd-backend/internal/administrasi/services"
	ambulansControllers "github.com/rsudharapan/igd-backend/internal/ambulans/controllers"
	ambulansServices "github.com/rsudharapan/igd-backend/internal/ambulans/services"
	"github.com/rsudharapan/igd-backend/internal/common/middlewares"
	"github.com/rsudharapan/igd-backend/internal/jarak"
	"github.com/rsudharapan/igd-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework.
// taksir boleh nil saat estimasi jarak tidak dikonfigurasi; audit boleh nil
// saat arsip MongoDB tidak dikonfigurasi.
func Init(e *echo.Echo, db *sql.DB, taksir *jarak.Service, audit *mongo.Collection) {
	// Inisialisasi service
	adminService := adminServices.NewAdministrasiService(db)
	pendaftaranService := adminServices.NewPendaftaranService(db)
	kunjunganService := adminServices.NewKunjunganService(db)
	billingService := adminServices.NewBillingService(db)
	tarifService := ambulansServices.NewTarifService(db)

	var penaksir ambulansServices.PenaksirJarak
	if taksir != nil {
		penaksir = taksir
	}
	ambulansService := ambulansServices.NewAmbulansService(tarifService, penaksir, db, audit)

	// Inisialisasi controller dengan service yang sesuai
	adminController := adminControllers.NewAdministrasiController(adminService)
	pasienController := adminControllers.NewPasienController(pendaftaranService)
	kunjunganController := adminControllers.NewKunjunganController(kunjunganService)
	billingController := adminControllers.NewBillingController(billingService)
	tarifController := ambulansControllers.NewTarifController(tarifService)
	ambulansController := ambulansControllers.NewAmbulansController(ambulansService)

	// Grup API utama
	api := e.Group("/api")

	// **Grup Administrasi**
	administrasi := api.Group("/administrasi")
	administrasi.POST("/login", adminController.Login) // Tidak pakai JWT
	administrasi.GET("/pasien", pasienController.ListPasien, middlewares.JWTMiddleware())

	// Endpoint kunjungan IGD
	administrasi.GET("/kunjungan/today", kunjunganController.ListKunjunganHariIni, middlewares.JWTMiddleware())
	administrasi.PUT("/kunjungan/status", kunjunganController.UpdateStatus, middlewares.JWTMiddleware())
	administrasi.GET("/kunjungan/riwayat", kunjunganController.Riwayat, middlewares.JWTMiddleware())

	// Billing di bawah administrasi
	billing := administrasi.Group("/billing")
	billing.POST("/input", billingController.InputBilling, middlewares.JWTMiddleware())
	billing.GET("/recent", billingController.ListBilling, middlewares.JWTMiddleware())
	billing.GET("/detail", billingController.BillingDetail, middlewares.JWTMiddleware())
	billing.PUT("/bayar", billingController.BayarBilling, middlewares.JWTMiddleware())

	// **Grup Pasien**
	pasien := api.Group("/pasien")
	pasien.POST("/register", pasienController.RegisterPasien, middlewares.JWTMiddleware())

	// **Grup Ambulans**
	ambulans := api.Group("/ambulans")
	ambulans.GET("/tarif", tarifController.ListTarif, middlewares.JWTMiddleware())
	ambulans.POST("/tarif", tarifController.CreateTarif, middlewares.JWTMiddleware())
	ambulans.PUT("/tarif/:id", tarifController.UpdateTarif, middlewares.JWTMiddleware())
	ambulans.PUT("/tarif/:id/nonaktifkan", tarifController.NonaktifkanTarif, middlewares.JWTMiddleware())
	ambulans.POST("/hitung", ambulansController.HitungTarif, middlewares.JWTMiddleware())
	ambulans.GET("/jarak", ambulansController.EstimasiJarak, middlewares.JWTMiddleware())

	// Dashboard antrian IGD
	e.GET("/ws/antrian", ws.ServeWS(ws.HubInstance))
}
