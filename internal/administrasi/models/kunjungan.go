package models

import "time"

// Status kunjungan IGD.
const (
	StatusTerdaftar = 0
	StatusDitangani = 1
	StatusSelesai   = 2
	StatusDirujuk   = 3
)

// KunjunganIGD merepresentasikan satu kedatangan pasien di IGD.
type KunjunganIGD struct {
	IDKunjungan  int        `json:"id_kunjungan" db:"ID_Kunjungan"`
	IDPasien     int        `json:"id_pasien" db:"ID_Pasien"`
	NomorAntrian int        `json:"nomor_antrian" db:"Nomor_Antrian"`
	LevelTriase  int        `json:"level_triase" db:"Level_Triase"`
	KeluhanUtama string     `json:"keluhan_utama" db:"Keluhan_Utama"`
	Status       int        `json:"status" db:"Status"`
	WaktuMasuk   time.Time  `json:"waktu_masuk" db:"Waktu_Masuk"`
	WaktuSelesai *time.Time `json:"waktu_selesai,omitempty" db:"Waktu_Selesai"`
}

// RiwayatKunjungan adalah ringkasan kunjungan untuk tab riwayat pasien.
type RiwayatKunjungan struct {
	IDKunjungan  int    `json:"id_kunjungan"`
	Tanggal      string `json:"tanggal"`
	NomorAntrian int    `json:"nomor_antrian"`
	LevelTriase  int    `json:"level_triase"`
	KeluhanUtama string `json:"keluhan_utama"`
	Status       int    `json:"status"`
}
