package models

import "time"

// Karyawan merepresentasikan petugas yang boleh masuk aplikasi administrasi
// IGD, beserta role dan privilege hasil join.
type Karyawan struct {
	IDKaryawan int       `json:"id_karyawan" db:"ID_Karyawan"`
	Nama       string    `json:"nama" db:"Nama"`
	Username   string    `json:"username" db:"Username"`
	Password   string    `json:"-" db:"Password"`
	IDRole     int       `json:"id_role"`
	Role       string    `json:"role"`
	Privileges []int     `json:"privileges"`
	CreatedAt  time.Time `json:"created_at" db:"Created_At"`
}
