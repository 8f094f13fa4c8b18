package models

import (
	"time"

	"github.com/rsudharapan/igd-backend/internal/ambulans/tarif"
)

// TarifAmbulans merepresentasikan record di tabel `Tarif_Ambulans`.
// Satu record per jenis kendaraan; dikelola admin, soft-delete lewat is_active.
type TarifAmbulans struct {
	IDTarif           int       `json:"id_tarif" db:"ID_Tarif"`
	JenisKendaraan    string    `json:"jenis_kendaraan" db:"Jenis_Kendaraan"`
	BiayaPerKm        float64   `json:"biaya_per_km" db:"Biaya_Per_Km"`
	PersenSopir       float64   `json:"persen_sopir" db:"Persen_Sopir"`
	PersenAdmin       float64   `json:"persen_admin" db:"Persen_Admin"`
	PersenMaintenance float64   `json:"persen_maintenance" db:"Persen_Maintenance"`
	PersenRS          float64   `json:"persen_rs" db:"Persen_RS"`
	PersenPajak       float64   `json:"persen_pajak" db:"Persen_Pajak"`
	IsActive          bool      `json:"is_active" db:"Is_Active"`
	CreatedAt         time.Time `json:"created_at" db:"Created_At"`
	UpdatedAt         time.Time `json:"updated_at" db:"Updated_At"`
}

// KeTarifKendaraan mengubah record tabel menjadi nilai konfigurasi yang
// dibaca mesin tarif.
func (t TarifAmbulans) KeTarifKendaraan() tarif.TarifKendaraan {
	return tarif.TarifKendaraan{
		JenisKendaraan:    t.JenisKendaraan,
		BiayaPerKm:        t.BiayaPerKm,
		PersenSopir:       t.PersenSopir,
		PersenAdmin:       t.PersenAdmin,
		PersenMaintenance: t.PersenMaintenance,
		PersenRS:          t.PersenRS,
		PersenPajak:       t.PersenPajak,
		IsActive:          t.IsActive,
	}
}

// InputTarifRequest adalah payload create/update konfigurasi tarif.
type InputTarifRequest struct {
	JenisKendaraan    string  `json:"jenis_kendaraan"`
	BiayaPerKm        float64 `json:"biaya_per_km"`
	PersenSopir       float64 `json:"persen_sopir"`
	PersenAdmin       float64 `json:"persen_admin"`
	PersenMaintenance float64 `json:"persen_maintenance"`
	PersenRS          float64 `json:"persen_rs"`
	PersenPajak       float64 `json:"persen_pajak"`
	IsActive          bool    `json:"is_active"`
}

// HitungTarifRequest adalah payload perhitungan tarif. Jarak boleh diisi
// manual (jarak_km) atau dihitung dari pasangan asal/tujuan; isian manual
// adalah fallback saat estimasi jarak otomatis gagal.
type HitungTarifRequest struct {
	IDKunjungan    *int     `json:"id_kunjungan,omitempty"`
	JenisKendaraan string   `json:"jenis_kendaraan"`
	JenisLayanan   string   `json:"jenis_layanan"`
	JarakKm        *float64 `json:"jarak_km,omitempty"`
	Asal           string   `json:"asal,omitempty"`
	Tujuan         string   `json:"tujuan,omitempty"`
	URLReferensi   string   `json:"url_referensi,omitempty"`
}
