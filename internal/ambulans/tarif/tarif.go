// Package tarif berisi mesin perhitungan tarif ambulans: fungsi murni yang
// mengubah jarak sekali jalan dan konfigurasi kendaraan menjadi rincian biaya
// yang sudah termasuk pajak. Tidak ada I/O maupun state; aman dipanggil
// bersamaan dari banyak request.
package tarif

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInputTidakValid menandakan jarak negatif/tak hingga atau
	// persentase di luar rentang [0, 1].
	ErrInputTidakValid = errors.New("input tarif tidak valid")
	// ErrKendaraanTidakDikenal dikembalikan oleh lapisan pemanggil saat
	// tidak ada konfigurasi untuk jenis kendaraan yang diminta.
	ErrKendaraanTidakDikenal = errors.New("jenis kendaraan tidak dikenal")
	// ErrTarifNonaktif dikembalikan oleh lapisan pemanggil saat konfigurasi
	// ditemukan tetapi sedang dinonaktifkan.
	ErrTarifNonaktif = errors.New("konfigurasi tarif sedang nonaktif")
)

// Jenis layanan yang dikenal. Nilai lain tetap diterima dan hanya dibawa
// sebagai label pada rincian.
const (
	LayananPasienHidup = "pasien_hidup"
	LayananJenazah     = "jenazah"
	LayananNonMedis    = "non_medis"
)

// Jenis kendaraan bawaan; operator boleh menambah jenis lain lewat
// konfigurasi tarif.
const (
	KendaraanAmbulans = "ambulans"
	KendaraanJenazah  = "mobil_jenazah"
	KendaraanMinibus  = "minibus"
)

// Rupiah tidak memakai pecahan, semua nominal dibulatkan ke satuan penuh.
const presisiRupiah = 0

// TarifKendaraan adalah konfigurasi harga per jenis kendaraan. Dikelola
// admin lewat penyimpanan eksternal; mesin tarif hanya membacanya.
type TarifKendaraan struct {
	JenisKendaraan    string
	BiayaPerKm        float64
	PersenSopir       float64
	PersenAdmin       float64
	PersenMaintenance float64
	PersenRS          float64
	PersenPajak       float64
	IsActive          bool
}

// PermintaanTarif adalah parameter perjalanan untuk satu perhitungan.
type PermintaanTarif struct {
	JenisKendaraan     string
	JenisLayanan       string
	JarakSekaliJalanKm float64
	// URLReferensi adalah string opaque (mis. URL Google Maps) yang dibawa
	// apa adanya ke rincian sebagai jejak audit.
	URLReferensi string
}

// RincianTarif adalah hasil perhitungan, disimpan apa adanya sebagai catatan
// audit yang tidak boleh berubah. Seluruh nominal dalam rupiah penuh.
type RincianTarif struct {
	JenisKendaraan     string          `json:"jenis_kendaraan"`
	JenisLayanan       string          `json:"jenis_layanan"`
	JarakSekaliJalanKm float64         `json:"jarak_sekali_jalan_km"`
	JarakPulangPergiKm float64         `json:"jarak_pulang_pergi_km"`
	BiayaPerKm         decimal.Decimal `json:"biaya_per_km"`
	TarifDasar         decimal.Decimal `json:"tarif_dasar"`
	BiayaSopir         decimal.Decimal `json:"biaya_sopir"`
	BiayaAdmin         decimal.Decimal `json:"biaya_admin"`
	BiayaMaintenance   decimal.Decimal `json:"biaya_maintenance"`
	BiayaRS            decimal.Decimal `json:"biaya_rs"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Pajak              decimal.Decimal `json:"pajak"`
	Total              decimal.Decimal `json:"total"`
	URLReferensi       string          `json:"url_referensi,omitempty"`
}

// Hitung menghitung rincian tarif ambulans dari permintaan dan konfigurasi
// kendaraan. Dasar penagihan selalu pulang-pergi (2 x jarak sekali jalan)
// karena ambulans kembali kosong dan leg kembali tetap ditagihkan.
//
// Urutan perhitungan tetap: jarak PP -> tarif dasar -> empat biaya tambahan
// -> subtotal -> pajak -> total. Setiap nominal dibulatkan half-up ke rupiah
// penuh secara terpisah; subtotal dan total dijumlahkan dari komponen yang
// sudah dibulatkan sehingga baris-baris rincian selalu persis menjumlah ke
// totalnya.
//
// Pemanggil bertanggung jawab memilih konfigurasi yang cocok dengan
// req.JenisKendaraan dan memastikan konfigurasi aktif; fungsi ini tidak
// melakukan lookup dan tidak pernah memakai konfigurasi pengganti.
func Hitung(req PermintaanTarif, cfg TarifKendaraan) (RincianTarif, error) {
	if err := validasi(req, cfg); err != nil {
		return RincianTarif{}, err
	}

	jarak := decimal.NewFromFloat(req.JarakSekaliJalanKm)
	pulangPergi := jarak.Mul(decimal.NewFromInt(2))
	biayaPerKm := decimal.NewFromFloat(cfg.BiayaPerKm)

	dasar := bulatkan(pulangPergi.Mul(biayaPerKm))

	// Biaya tambahan dihitung dari tarif dasar yang sudah dibulatkan agar
	// setiap baris bisa diverifikasi ulang dari rincian itu sendiri.
	sopir := bulatkan(dasar.Mul(decimal.NewFromFloat(cfg.PersenSopir)))
	admin := bulatkan(dasar.Mul(decimal.NewFromFloat(cfg.PersenAdmin)))
	maintenance := bulatkan(dasar.Mul(decimal.NewFromFloat(cfg.PersenMaintenance)))
	rs := bulatkan(dasar.Mul(decimal.NewFromFloat(cfg.PersenRS)))

	subtotal := dasar.Add(sopir).Add(admin).Add(maintenance).Add(rs)
	pajak := bulatkan(subtotal.Mul(decimal.NewFromFloat(cfg.PersenPajak)))
	total := subtotal.Add(pajak)

	pp, _ := pulangPergi.Float64()
	return RincianTarif{
		JenisKendaraan:     req.JenisKendaraan,
		JenisLayanan:       req.JenisLayanan,
		JarakSekaliJalanKm: req.JarakSekaliJalanKm,
		JarakPulangPergiKm: pp,
		BiayaPerKm:         biayaPerKm,
		TarifDasar:         dasar,
		BiayaSopir:         sopir,
		BiayaAdmin:         admin,
		BiayaMaintenance:   maintenance,
		BiayaRS:            rs,
		Subtotal:           subtotal,
		Pajak:              pajak,
		Total:              total,
		URLReferensi:       req.URLReferensi,
	}, nil
}

func validasi(req PermintaanTarif, cfg TarifKendaraan) error {
	if math.IsNaN(req.JarakSekaliJalanKm) || math.IsInf(req.JarakSekaliJalanKm, 0) {
		return fmt.Errorf("%w: jarak harus angka terhingga", ErrInputTidakValid)
	}
	if req.JarakSekaliJalanKm < 0 {
		return fmt.Errorf("%w: jarak tidak boleh negatif (%v km)", ErrInputTidakValid, req.JarakSekaliJalanKm)
	}
	if math.IsNaN(cfg.BiayaPerKm) || math.IsInf(cfg.BiayaPerKm, 0) || cfg.BiayaPerKm < 0 {
		return fmt.Errorf("%w: biaya per km tidak boleh negatif", ErrInputTidakValid)
	}
	persen := map[string]float64{
		"persen_sopir":       cfg.PersenSopir,
		"persen_admin":       cfg.PersenAdmin,
		"persen_maintenance": cfg.PersenMaintenance,
		"persen_rs":          cfg.PersenRS,
		"persen_pajak":       cfg.PersenPajak,
	}
	for nama, p := range persen {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: %s harus dalam rentang 0..1 (%v)", ErrInputTidakValid, nama, p)
		}
	}
	return nil
}

// bulatkan membulatkan half-up ke rupiah penuh. decimal.Round membulatkan
// half away from zero; untuk nominal non-negatif itu sama dengan half-up.
func bulatkan(d decimal.Decimal) decimal.Decimal {
	return d.Round(presisiRupiah)
}
