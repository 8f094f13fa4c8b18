package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rsudharapan/igd-backend/internal/ambulans/models"
	"github.com/rsudharapan/igd-backend/internal/ambulans/tarif"
	"github.com/rsudharapan/igd-backend/internal/jarak"
)

// PenyediaTarif menyediakan konfigurasi tarif aktif per jenis kendaraan.
// Diabstraksikan supaya perhitungan bisa diuji tanpa database.
type PenyediaTarif interface {
	TarifAktif(ctx context.Context, jenisKendaraan string) (tarif.TarifKendaraan, error)
}

// PenaksirJarak menyediakan taksiran jarak asal-tujuan.
type PenaksirJarak interface {
	Estimasi(ctx context.Context, asal, tujuan string) (jarak.Hasil, error)
}

// AmbulansService mengoordinasikan perhitungan tarif: mengambil jarak,
// memilih konfigurasi aktif, memanggil mesin tarif, lalu melampirkan hasilnya
// ke billing dan arsip audit.
type AmbulansService struct {
	Penyedia PenyediaTarif
	Taksir   PenaksirJarak
	DB       *sql.DB
	Audit    *mongo.Collection
}

// NewAmbulansService membuat service ambulans. taksir boleh nil (jarak wajib
// diisi manual), db dan audit boleh nil saat pengujian.
func NewAmbulansService(penyedia PenyediaTarif, taksir PenaksirJarak, db *sql.DB, audit *mongo.Collection) *AmbulansService {
	return &AmbulansService{Penyedia: penyedia, Taksir: taksir, DB: db, Audit: audit}
}

// Hitung menjalankan satu perhitungan tarif. Jarak diambil dari request bila
// diisi manual, atau dari penaksir jarak bila asal/tujuan diberikan.
func (s *AmbulansService) Hitung(ctx context.Context, req models.HitungTarifRequest) (tarif.RincianTarif, error) {
	var (
		km     float64
		urlRef = req.URLReferensi
	)

	switch {
	case req.JarakKm != nil:
		km = *req.JarakKm
	case req.Asal != "" && req.Tujuan != "":
		if s.Taksir == nil {
			return tarif.RincianTarif{}, fmt.Errorf("%w: estimasi jarak tidak tersedia, isi jarak_km manual", tarif.ErrInputTidakValid)
		}
		hasil, err := s.Taksir.Estimasi(ctx, req.Asal, req.Tujuan)
		if err != nil {
			return tarif.RincianTarif{}, fmt.Errorf("estimasi jarak gagal: %w", err)
		}
		km = hasil.Km
		if urlRef == "" {
			urlRef = hasil.URLReferensi
		}
	default:
		return tarif.RincianTarif{}, fmt.Errorf("%w: jarak_km atau pasangan asal/tujuan wajib diisi", tarif.ErrInputTidakValid)
	}

	cfg, err := s.Penyedia.TarifAktif(ctx, req.JenisKendaraan)
	if err != nil {
		return tarif.RincianTarif{}, err
	}

	return tarif.Hitung(tarif.PermintaanTarif{
		JenisKendaraan:     req.JenisKendaraan,
		JenisLayanan:       req.JenisLayanan,
		JarakSekaliJalanKm: km,
		URLReferensi:       urlRef,
	}, cfg)
}

// Simpan melampirkan rincian ke billing kunjungan (bila id kunjungan diisi)
// dan mengarsipkan dokumen rincian apa adanya ke MongoDB. Gagalnya arsip
// tidak membatalkan billing; dicatat sebagai warning.
func (s *AmbulansService) Simpan(ctx context.Context, idKunjungan *int, r tarif.RincianTarif) error {
	if idKunjungan != nil {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO Billing_Ambulans
				(ID_Kunjungan, Jenis_Kendaraan, Jenis_Layanan,
				 Jarak_Sekali_Jalan_Km, Jarak_Pulang_Pergi_Km, Biaya_Per_Km,
				 Tarif_Dasar, Biaya_Sopir, Biaya_Admin, Biaya_Maintenance, Biaya_RS,
				 Subtotal, Pajak, Total, URL_Referensi, Created_At)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, *idKunjungan, r.JenisKendaraan, r.JenisLayanan,
			r.JarakSekaliJalanKm, r.JarakPulangPergiKm, r.BiayaPerKm,
			r.TarifDasar, r.BiayaSopir, r.BiayaAdmin, r.BiayaMaintenance, r.BiayaRS,
			r.Subtotal, r.Pajak, r.Total, r.URLReferensi, time.Now())
		if err != nil {
			return fmt.Errorf("gagal menyimpan billing ambulans: %w", err)
		}
	}

	if s.Audit != nil {
		doc := bson.M{
			"jenis_kendaraan":       r.JenisKendaraan,
			"jenis_layanan":         r.JenisLayanan,
			"jarak_sekali_jalan_km": r.JarakSekaliJalanKm,
			"jarak_pulang_pergi_km": r.JarakPulangPergiKm,
			"biaya_per_km":          r.BiayaPerKm.String(),
			"tarif_dasar":           r.TarifDasar.String(),
			"biaya_sopir":           r.BiayaSopir.String(),
			"biaya_admin":           r.BiayaAdmin.String(),
			"biaya_maintenance":     r.BiayaMaintenance.String(),
			"biaya_rs":              r.BiayaRS.String(),
			"subtotal":              r.Subtotal.String(),
			"pajak":                 r.Pajak.String(),
			"total":                 r.Total.String(),
			"url_referensi":         r.URLReferensi,
			"created_at":            time.Now(),
		}
		if idKunjungan != nil {
			doc["id_kunjungan"] = *idKunjungan
		}
		if _, err := s.Audit.InsertOne(ctx, doc); err != nil {
			logrus.Warnf("gagal mengarsipkan rincian tarif ke MongoDB: %v", err)
		}
	}
	return nil
}
