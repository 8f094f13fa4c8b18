package services

import (
	"database/sql"
	"time"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
)

type KunjunganService struct {
	DB *sql.DB
}

func NewKunjunganService(db *sql.DB) *KunjunganService {
	return &KunjunganService{DB: db}
}

// ListKunjunganHariIni mengambil antrian IGD hari ini, diurutkan berdasarkan
// level triase lalu jam masuk.
func (s *KunjunganService) ListKunjunganHariIni() ([]map[string]interface{}, error) {
	query := `
		SELECT k.ID_Kunjungan, k.Nomor_Antrian, k.Level_Triase, k.Keluhan_Utama, k.Status, k.Waktu_Masuk, p.Nama
		FROM Kunjungan_IGD k
		JOIN Pasien p ON k.ID_Pasien = p.ID_Pasien
		WHERE DATE(k.Waktu_Masuk) = CURDATE()
		ORDER BY k.Level_Triase ASC, k.Waktu_Masuk ASC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []map[string]interface{}
	for rows.Next() {
		var idKunjungan, nomorAntrian, levelTriase, status int
		var keluhan, nama string
		var waktuMasuk time.Time

		if err := rows.Scan(&idKunjungan, &nomorAntrian, &levelTriase, &keluhan, &status, &waktuMasuk, &nama); err != nil {
			return nil, err
		}

		result = append(result, map[string]interface{}{
			"id_kunjungan":  idKunjungan,
			"nomor_antrian": nomorAntrian,
			"level_triase":  levelTriase,
			"keluhan_utama": keluhan,
			"status":        status,
			"waktu_masuk":   waktuMasuk,
			"nama":          nama,
		})
	}
	return result, rows.Err()
}

// UpdateStatusKunjungan mengubah status kunjungan. Status selesai/dirujuk
// juga mencatat waktu selesai.
func (s *KunjunganService) UpdateStatusKunjungan(idKunjungan, status int) error {
	var result sql.Result
	var err error
	if status == models.StatusSelesai || status == models.StatusDirujuk {
		result, err = s.DB.Exec(
			"UPDATE Kunjungan_IGD SET Status = ?, Waktu_Selesai = ? WHERE ID_Kunjungan = ?",
			status, time.Now(), idKunjungan)
	} else {
		result, err = s.DB.Exec(
			"UPDATE Kunjungan_IGD SET Status = ? WHERE ID_Kunjungan = ?",
			status, idKunjungan)
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RiwayatKunjungan mengambil seluruh riwayat kunjungan IGD seorang pasien.
func (s *KunjunganService) RiwayatKunjungan(idPasien int) ([]models.RiwayatKunjungan, error) {
	query := `
		SELECT ID_Kunjungan, Waktu_Masuk, Nomor_Antrian, Level_Triase, Keluhan_Utama, Status
		FROM Kunjungan_IGD
		WHERE ID_Pasien = ?
		ORDER BY Waktu_Masuk DESC
	`
	rows, err := s.DB.Query(query, idPasien)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RiwayatKunjungan
	for rows.Next() {
		var r models.RiwayatKunjungan
		var waktuMasuk time.Time
		if err := rows.Scan(&r.IDKunjungan, &waktuMasuk, &r.NomorAntrian, &r.LevelTriase, &r.KeluhanUtama, &r.Status); err != nil {
			return nil, err
		}
		r.Tanggal = waktuMasuk.Format("2006-01-02 15:04")
		result = append(result, r)
	}
	return result, rows.Err()
}
