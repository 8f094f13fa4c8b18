package tarif

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgStandar() TarifKendaraan {
	return TarifKendaraan{
		JenisKendaraan:    KendaraanAmbulans,
		BiayaPerKm:        6000,
		PersenSopir:       0.16,
		PersenAdmin:       0.08,
		PersenMaintenance: 0.05,
		PersenRS:          0.10,
		PersenPajak:       0.11,
		IsActive:          true,
	}
}

func TestHitungSkenarioStandar(t *testing.T) {
	req := PermintaanTarif{
		JenisKendaraan:     KendaraanAmbulans,
		JenisLayanan:       LayananPasienHidup,
		JarakSekaliJalanKm: 5,
		URLReferensi:       "https://www.google.com/maps/dir/?api=1",
	}

	r, err := Hitung(req, cfgStandar())
	require.NoError(t, err)

	assert.Equal(t, 5.0, r.JarakSekaliJalanKm)
	assert.Equal(t, 10.0, r.JarakPulangPergiKm)
	assert.Equal(t, "60000", r.TarifDasar.String())
	assert.Equal(t, "9600", r.BiayaSopir.String())
	assert.Equal(t, "4800", r.BiayaAdmin.String())
	assert.Equal(t, "3000", r.BiayaMaintenance.String())
	assert.Equal(t, "6000", r.BiayaRS.String())
	assert.Equal(t, "83400", r.Subtotal.String())
	assert.Equal(t, "9174", r.Pajak.String())
	assert.Equal(t, "92574", r.Total.String())
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1", r.URLReferensi)
	assert.Equal(t, LayananPasienHidup, r.JenisLayanan)
}

func TestHitungDeterministik(t *testing.T) {
	req := PermintaanTarif{JenisKendaraan: KendaraanJenazah, JenisLayanan: LayananJenazah, JarakSekaliJalanKm: 12.3}
	cfg := cfgStandar()

	r1, err := Hitung(req, cfg)
	require.NoError(t, err)
	r2, err := Hitung(req, cfg)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestHitungJarakNol(t *testing.T) {
	r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 0}, cfgStandar())
	require.NoError(t, err)

	nol := decimal.Zero
	for _, d := range []decimal.Decimal{r.TarifDasar, r.BiayaSopir, r.BiayaAdmin, r.BiayaMaintenance, r.BiayaRS, r.Subtotal, r.Pajak, r.Total} {
		assert.True(t, d.Equal(nol), "semua nominal harus nol, dapat %s", d)
	}
}

func TestHitungSemuaPersenNol(t *testing.T) {
	cfg := cfgStandar()
	cfg.PersenSopir = 0
	cfg.PersenAdmin = 0
	cfg.PersenMaintenance = 0
	cfg.PersenRS = 0
	cfg.PersenPajak = 0

	r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 7.5}, cfg)
	require.NoError(t, err)
	assert.True(t, r.Total.Equal(r.TarifDasar), "tanpa persen, total harus sama dengan tarif dasar")
}

func TestHitungPajakNol(t *testing.T) {
	cfg := cfgStandar()
	cfg.PersenPajak = 0

	r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 5}, cfg)
	require.NoError(t, err)
	assert.True(t, r.Pajak.IsZero())
	assert.True(t, r.Total.Equal(r.Subtotal))
}

// Baris-baris rincian harus menjumlah persis ke subtotal dan total, juga pada
// jarak pecahan yang memaksa pembulatan tiap komponen.
func TestHitungHukumPenjumlahan(t *testing.T) {
	cfg := cfgStandar()
	cfg.BiayaPerKm = 5250

	for _, km := range []float64{0.1, 1.37, 3.333, 8.49, 27.905} {
		r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: km}, cfg)
		require.NoError(t, err)

		jumlah := r.TarifDasar.Add(r.BiayaSopir).Add(r.BiayaAdmin).Add(r.BiayaMaintenance).Add(r.BiayaRS)
		assert.True(t, r.Subtotal.Equal(jumlah), "km=%v: subtotal %s != jumlah komponen %s", km, r.Subtotal, jumlah)
		assert.True(t, r.Total.Equal(r.Subtotal.Add(r.Pajak)), "km=%v: total %s != subtotal+pajak", km, r.Total)
		assert.Equal(t, 2*km, r.JarakPulangPergiKm, "km=%v", km)
	}
}

func TestHitungMonoton(t *testing.T) {
	cfg := cfgStandar()

	sebelumnya := decimal.Zero
	for _, km := range []float64{0, 1, 2.5, 5, 10, 50, 120} {
		r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: km}, cfg)
		require.NoError(t, err)
		assert.True(t, r.Total.GreaterThanOrEqual(sebelumnya), "total turun pada km=%v", km)
		sebelumnya = r.Total
	}

	// Menaikkan satu persen saja tidak boleh menurunkan total.
	dasar, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 9}, cfg)
	require.NoError(t, err)
	cfg.PersenRS = 0.25
	naik, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 9}, cfg)
	require.NoError(t, err)
	assert.True(t, naik.Total.GreaterThanOrEqual(dasar.Total))
}

func TestHitungTotalTidakKurangDariDasar(t *testing.T) {
	r, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanMinibus, JarakSekaliJalanKm: 4.2}, cfgStandar())
	require.NoError(t, err)
	assert.True(t, r.Total.GreaterThanOrEqual(r.TarifDasar))
	assert.True(t, r.TarifDasar.GreaterThanOrEqual(decimal.Zero))
}

func TestHitungJarakNegatif(t *testing.T) {
	_, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: -3}, cfgStandar())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputTidakValid)
}

func TestHitungJarakTakHingga(t *testing.T) {
	for _, km := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: km}, cfgStandar())
		assert.ErrorIs(t, err, ErrInputTidakValid)
	}
}

func TestHitungPersenDiLuarRentang(t *testing.T) {
	kasus := []func(*TarifKendaraan){
		func(c *TarifKendaraan) { c.PersenSopir = -0.01 },
		func(c *TarifKendaraan) { c.PersenAdmin = 1.5 },
		func(c *TarifKendaraan) { c.PersenMaintenance = math.NaN() },
		func(c *TarifKendaraan) { c.PersenRS = 2 },
		func(c *TarifKendaraan) { c.PersenPajak = -1 },
		func(c *TarifKendaraan) { c.BiayaPerKm = -6000 },
	}
	for i, ubah := range kasus {
		cfg := cfgStandar()
		ubah(&cfg)
		_, err := Hitung(PermintaanTarif{JenisKendaraan: KendaraanAmbulans, JarakSekaliJalanKm: 5}, cfg)
		assert.ErrorIs(t, err, ErrInputTidakValid, "kasus %d", i)
	}
}
