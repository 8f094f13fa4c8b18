package models

import "time"

// Pasien mewakili data pasien IGD.
type Pasien struct {
	ID                int       `json:"id" db:"ID_Pasien"`
	Nama              string    `json:"nama" db:"Nama"`
	TanggalLahir      time.Time `json:"tanggal_lahir" db:"Tanggal_Lahir"`
	JenisKelamin      string    `json:"jenis_kelamin" db:"Jenis_Kelamin"`
	Nik               string    `json:"nik" db:"NIK"`
	NoTelp            string    `json:"no_telp,omitempty" db:"No_Telp"`
	Alamat            string    `json:"alamat,omitempty" db:"Alamat"`
	Kelurahan         string    `json:"kelurahan" db:"Kelurahan"`
	Kecamatan         string    `json:"kecamatan" db:"Kecamatan"`
	TanggalRegistrasi time.Time `json:"tanggal_registrasi" db:"Tanggal_Registrasi"`
}
