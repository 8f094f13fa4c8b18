package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
)

type PendaftaranService struct {
	DB *sql.DB
}

func NewPendaftaranService(db *sql.DB) *PendaftaranService {
	return &PendaftaranService{DB: db}
}

// GetListPasien mengambil daftar pasien beserta kunjungan IGD terakhirnya.
func (s *PendaftaranService) GetListPasien() ([]map[string]interface{}, error) {
	query := `
		SELECT
			p.ID_Pasien,
			p.Nama,
			p.NIK,
			k.Nomor_Antrian,
			k.Level_Triase,
			k.Status
		FROM Pasien p
		LEFT JOIN Kunjungan_IGD k ON k.ID_Kunjungan = (
			SELECT k2.ID_Kunjungan FROM Kunjungan_IGD k2
			WHERE k2.ID_Pasien = p.ID_Pasien
			ORDER BY k2.Waktu_Masuk DESC LIMIT 1
		)
		ORDER BY p.Tanggal_Registrasi DESC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []map[string]interface{}
	for rows.Next() {
		var idPasien int
		var nama, nik string
		var nomorAntrian, levelTriase, status sql.NullInt64

		if err := rows.Scan(&idPasien, &nama, &nik, &nomorAntrian, &levelTriase, &status); err != nil {
			return nil, err
		}

		data := map[string]interface{}{
			"id_pasien":     idPasien,
			"nama":          nama,
			"nik":           nik,
			"nomor_antrian": nil,
			"level_triase":  nil,
			"status":        nil,
		}
		if nomorAntrian.Valid {
			data["nomor_antrian"] = nomorAntrian.Int64
		}
		if levelTriase.Valid {
			data["level_triase"] = levelTriase.Int64
		}
		if status.Valid {
			data["status"] = status.Int64
		}

		result = append(result, data)
	}
	return result, rows.Err()
}

// RegisterPasienIGD mendaftarkan kedatangan pasien di IGD dalam satu
// transaksi. Pasien lama (NIK sudah terdaftar) dipakai ulang, hanya
// kunjungan barunya yang dibuat; pasien baru disimpan dulu.
// Mengembalikan (id_pasien, id_kunjungan, nomor_antrian).
func (s *PendaftaranService) RegisterPasienIGD(p models.Pasien, k models.KunjunganIGD) (int64, int64, int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, 0, 0, err
	}

	var idPasien int64
	var existingID int64
	err = tx.QueryRow("SELECT ID_Pasien FROM Pasien WHERE NIK = ?", p.Nik).Scan(&existingID)
	switch {
	case err == nil:
		idPasien = existingID
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.Exec(`
			INSERT INTO Pasien
				(Nama, Tanggal_Lahir, Jenis_Kelamin, NIK, No_Telp, Alamat, Kelurahan, Kecamatan, Tanggal_Registrasi)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.Nama, p.TanggalLahir, p.JenisKelamin, p.Nik, p.NoTelp, p.Alamat, p.Kelurahan, p.Kecamatan, time.Now())
		if err != nil {
			tx.Rollback()
			return 0, 0, 0, err
		}
		idPasien, err = result.LastInsertId()
		if err != nil {
			tx.Rollback()
			return 0, 0, 0, err
		}
	default:
		tx.Rollback()
		return 0, 0, 0, err
	}

	// Nomor antrian berjalan per hari.
	var nomorAntrian int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(Nomor_Antrian), 0) + 1
		FROM Kunjungan_IGD
		WHERE DATE(Waktu_Masuk) = CURDATE()
	`).Scan(&nomorAntrian)
	if err != nil {
		tx.Rollback()
		return 0, 0, 0, err
	}

	result, err := tx.Exec(`
		INSERT INTO Kunjungan_IGD
			(ID_Pasien, Nomor_Antrian, Level_Triase, Keluhan_Utama, Status, Waktu_Masuk)
		VALUES (?, ?, ?, ?, ?, ?)
	`, idPasien, nomorAntrian, k.LevelTriase, k.KeluhanUtama, models.StatusTerdaftar, time.Now())
	if err != nil {
		tx.Rollback()
		return 0, 0, 0, err
	}
	idKunjungan, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, 0, err
	}
	return idPasien, idKunjungan, nomorAntrian, nil
}
