package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rsudharapan/igd-backend/internal/ambulans/models"
	"github.com/rsudharapan/igd-backend/internal/ambulans/tarif"
)

// TarifService menangani CRUD konfigurasi tarif ambulans di tabel
// Tarif_Ambulans dan menyediakan lookup konfigurasi aktif untuk perhitungan.
type TarifService struct {
	DB *sql.DB
}

func NewTarifService(db *sql.DB) *TarifService {
	return &TarifService{DB: db}
}

const kolomTarif = `
	ID_Tarif, Jenis_Kendaraan, Biaya_Per_Km,
	Persen_Sopir, Persen_Admin, Persen_Maintenance, Persen_RS, Persen_Pajak,
	Is_Active, Created_At, Updated_At
`

func scanTarif(row interface{ Scan(...interface{}) error }) (models.TarifAmbulans, error) {
	var t models.TarifAmbulans
	err := row.Scan(
		&t.IDTarif, &t.JenisKendaraan, &t.BiayaPerKm,
		&t.PersenSopir, &t.PersenAdmin, &t.PersenMaintenance, &t.PersenRS, &t.PersenPajak,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// ListTarif mengambil seluruh konfigurasi tarif; jika aktifSaja true hanya
// konfigurasi yang boleh dipakai yang dikembalikan (untuk dropdown kasir).
func (s *TarifService) ListTarif(aktifSaja bool) ([]models.TarifAmbulans, error) {
	query := "SELECT " + kolomTarif + " FROM Tarif_Ambulans"
	if aktifSaja {
		query += " WHERE Is_Active = 1"
	}
	query += " ORDER BY Jenis_Kendaraan"

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.TarifAmbulans
	for rows.Next() {
		t, err := scanTarif(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// CreateTarif menambahkan konfigurasi tarif baru. Jenis kendaraan harus unik;
// duplikat ditolak sebelum insert.
func (s *TarifService) CreateTarif(req models.InputTarifRequest) (int64, error) {
	var existing int
	err := s.DB.QueryRow("SELECT ID_Tarif FROM Tarif_Ambulans WHERE Jenis_Kendaraan = ?", req.JenisKendaraan).Scan(&existing)
	if err == nil {
		return 0, fmt.Errorf("tarif untuk jenis kendaraan %q sudah terdaftar", req.JenisKendaraan)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	now := time.Now()
	result, err := s.DB.Exec(`
		INSERT INTO Tarif_Ambulans
			(Jenis_Kendaraan, Biaya_Per_Km, Persen_Sopir, Persen_Admin, Persen_Maintenance, Persen_RS, Persen_Pajak, Is_Active, Created_At, Updated_At)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, req.JenisKendaraan, req.BiayaPerKm, req.PersenSopir, req.PersenAdmin, req.PersenMaintenance, req.PersenRS, req.PersenPajak, req.IsActive, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateTarif memperbarui konfigurasi tarif berdasarkan id.
func (s *TarifService) UpdateTarif(idTarif int, req models.InputTarifRequest) error {
	result, err := s.DB.Exec(`
		UPDATE Tarif_Ambulans
		SET Jenis_Kendaraan = ?, Biaya_Per_Km = ?, Persen_Sopir = ?, Persen_Admin = ?,
		    Persen_Maintenance = ?, Persen_RS = ?, Persen_Pajak = ?, Is_Active = ?, Updated_At = ?
		WHERE ID_Tarif = ?
	`, req.JenisKendaraan, req.BiayaPerKm, req.PersenSopir, req.PersenAdmin, req.PersenMaintenance, req.PersenRS, req.PersenPajak, req.IsActive, time.Now(), idTarif)
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

// NonaktifkanTarif melakukan soft-delete: konfigurasi tetap tersimpan untuk
// jejak historis tetapi tidak boleh dipakai perhitungan baru.
func (s *TarifService) NonaktifkanTarif(idTarif int) error {
	result, err := s.DB.Exec(
		"UPDATE Tarif_Ambulans SET Is_Active = 0, Updated_At = ? WHERE ID_Tarif = ?",
		time.Now(), idTarif)
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

// TarifAktif mengambil konfigurasi untuk jenis kendaraan tertentu.
// Jenis yang tidak terdaftar dan konfigurasi nonaktif dibedakan supaya kasir
// tahu harus menampilkan pilihan kendaraan aktif saja.
func (s *TarifService) TarifAktif(ctx context.Context, jenisKendaraan string) (tarif.TarifKendaraan, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+kolomTarif+" FROM Tarif_Ambulans WHERE Jenis_Kendaraan = ?", jenisKendaraan)
	t, err := scanTarif(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tarif.TarifKendaraan{}, fmt.Errorf("%w: %q", tarif.ErrKendaraanTidakDikenal, jenisKendaraan)
	}
	if err != nil {
		return tarif.TarifKendaraan{}, err
	}
	if !t.IsActive {
		return tarif.TarifKendaraan{}, fmt.Errorf("%w: %q", tarif.ErrTarifNonaktif, jenisKendaraan)
	}
	return t.KeTarifKendaraan(), nil
}
