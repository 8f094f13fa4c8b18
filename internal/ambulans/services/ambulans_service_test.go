package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsudharapan/igd-backend/internal/ambulans/models"
	"github.com/rsudharapan/igd-backend/internal/ambulans/tarif"
	"github.com/rsudharapan/igd-backend/internal/jarak"
)

type penyediaPalsu struct {
	tarif map[string]tarif.TarifKendaraan
}

func (p *penyediaPalsu) TarifAktif(_ context.Context, jenis string) (tarif.TarifKendaraan, error) {
	cfg, ok := p.tarif[jenis]
	if !ok {
		return tarif.TarifKendaraan{}, fmt.Errorf("%w: %q", tarif.ErrKendaraanTidakDikenal, jenis)
	}
	if !cfg.IsActive {
		return tarif.TarifKendaraan{}, fmt.Errorf("%w: %q", tarif.ErrTarifNonaktif, jenis)
	}
	return cfg, nil
}

type penaksirPalsu struct {
	hasil jarak.Hasil
	err   error
}

func (p *penaksirPalsu) Estimasi(_ context.Context, _, _ string) (jarak.Hasil, error) {
	return p.hasil, p.err
}

func penyediaUji() *penyediaPalsu {
	return &penyediaPalsu{tarif: map[string]tarif.TarifKendaraan{
		tarif.KendaraanAmbulans: {
			JenisKendaraan:    tarif.KendaraanAmbulans,
			BiayaPerKm:        6000,
			PersenSopir:       0.16,
			PersenAdmin:       0.08,
			PersenMaintenance: 0.05,
			PersenRS:          0.10,
			PersenPajak:       0.11,
			IsActive:          true,
		},
		tarif.KendaraanJenazah: {
			JenisKendaraan: tarif.KendaraanJenazah,
			BiayaPerKm:     8000,
			IsActive:       false,
		},
	}}
}

func TestHitungDenganJarakManual(t *testing.T) {
	svc := NewAmbulansService(penyediaUji(), nil, nil, nil)

	km := 5.0
	r, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
		JenisLayanan:   tarif.LayananPasienHidup,
		JarakKm:        &km,
	})
	require.NoError(t, err)
	assert.Equal(t, "92574", r.Total.String())
}

func TestHitungDenganEstimasiJarak(t *testing.T) {
	taksir := &penaksirPalsu{hasil: jarak.Hasil{Km: 5, URLReferensi: "https://maps.example/rute"}}
	svc := NewAmbulansService(penyediaUji(), taksir, nil, nil)

	r, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
		JenisLayanan:   tarif.LayananPasienHidup,
		Asal:           "IGD RSUD Harapan",
		Tujuan:         "Jl. Melati 12",
	})
	require.NoError(t, err)
	assert.Equal(t, "92574", r.Total.String())
	assert.Equal(t, "https://maps.example/rute", r.URLReferensi, "URL referensi taksiran ikut terbawa ke rincian")
}

func TestHitungURLReferensiManualDidahulukan(t *testing.T) {
	taksir := &penaksirPalsu{hasil: jarak.Hasil{Km: 5, URLReferensi: "https://maps.example/rute"}}
	svc := NewAmbulansService(penyediaUji(), taksir, nil, nil)

	r, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
		Asal:           "a",
		Tujuan:         "b",
		URLReferensi:   "https://manual.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://manual.example", r.URLReferensi)
}

func TestHitungTanpaJarak(t *testing.T) {
	svc := NewAmbulansService(penyediaUji(), nil, nil, nil)

	_, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
	})
	assert.ErrorIs(t, err, tarif.ErrInputTidakValid)
}

func TestHitungKendaraanTidakDikenal(t *testing.T) {
	svc := NewAmbulansService(penyediaUji(), nil, nil, nil)

	km := 3.0
	_, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: "helikopter",
		JarakKm:        &km,
	})
	assert.ErrorIs(t, err, tarif.ErrKendaraanTidakDikenal)
}

func TestHitungTarifNonaktif(t *testing.T) {
	svc := NewAmbulansService(penyediaUji(), nil, nil, nil)

	km := 3.0
	_, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanJenazah,
		JenisLayanan:   tarif.LayananJenazah,
		JarakKm:        &km,
	})
	assert.ErrorIs(t, err, tarif.ErrTarifNonaktif)
}

func TestHitungEstimasiGagal(t *testing.T) {
	gagal := errors.New("no route found")
	svc := NewAmbulansService(penyediaUji(), &penaksirPalsu{err: gagal}, nil, nil)

	_, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
		Asal:           "a",
		Tujuan:         "b",
	})
	assert.ErrorIs(t, err, gagal)
}

func TestHitungJarakNegatifDitolak(t *testing.T) {
	svc := NewAmbulansService(penyediaUji(), nil, nil, nil)

	km := -3.0
	_, err := svc.Hitung(context.Background(), models.HitungTarifRequest{
		JenisKendaraan: tarif.KendaraanAmbulans,
		JarakKm:        &km,
	})
	assert.ErrorIs(t, err, tarif.ErrInputTidakValid)
}
