package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
)

// BillingService menangani logika bisnis untuk data Billing kunjungan IGD.
type BillingService struct {
	DB *sql.DB
}

func NewBillingService(db *sql.DB) *BillingService {
	return &BillingService{DB: db}
}

// InputBilling mencatat baris tindakan dan obat untuk satu kunjungan dalam
// satu transaksi. Harga diambil dari tabel master saat input, bukan saat
// pembayaran, supaya tagihan tidak berubah saat master diperbarui.
func (s *BillingService) InputBilling(req models.InputBillingRequest) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	var idBilling int64
	err = tx.QueryRow("SELECT ID_Billing FROM Billing WHERE ID_Kunjungan = ?", req.IDKunjungan).Scan(&idBilling)
	if errors.Is(err, sql.ErrNoRows) {
		result, err := tx.Exec(
			"INSERT INTO Billing (ID_Kunjungan, Status, Created_At) VALUES (?, ?, ?)",
			req.IDKunjungan, models.BillingBelumDibayar, time.Now())
		if err != nil {
			tx.Rollback()
			return err
		}
		idBilling, err = result.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}
	} else if err != nil {
		tx.Rollback()
		return err
	}

	for _, item := range req.Tindakan {
		var harga float64
		if err := tx.QueryRow("SELECT Harga FROM Tindakan WHERE ID_Tindakan = ?", item.IDTindakan).Scan(&harga); err != nil {
			tx.Rollback()
			return fmt.Errorf("tindakan %d tidak ditemukan: %w", item.IDTindakan, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO Billing_Tindakan (ID_Billing, ID_Tindakan, Jumlah, Harga)
			VALUES (?, ?, ?, ?)
		`, idBilling, item.IDTindakan, item.Jumlah, harga); err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, item := range req.Obat {
		var harga float64
		if err := tx.QueryRow("SELECT Harga_Satuan FROM Obat WHERE ID_Obat = ?", item.IDObat).Scan(&harga); err != nil {
			tx.Rollback()
			return fmt.Errorf("obat %d tidak ditemukan: %w", item.IDObat, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO Billing_Obat (ID_Billing, ID_Obat, Jumlah, Harga_Satuan)
			VALUES (?, ?, ?, ?)
		`, idBilling, item.IDObat, item.Jumlah, harga); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetRecentBilling mengambil daftar billing terbaru. Jika filterStatus tidak
// nil, hasil dibatasi berdasarkan status pembayaran.
func (s *BillingService) GetRecentBilling(filterStatus *int) ([]map[string]interface{}, error) {
	query := `
		SELECT p.Nama, p.NIK, k.ID_Kunjungan, b.Status, b.ID_Billing
		FROM Billing b
		JOIN Kunjungan_IGD k ON b.ID_Kunjungan = k.ID_Kunjungan
		JOIN Pasien p ON k.ID_Pasien = p.ID_Pasien
	`
	if filterStatus != nil {
		query += " WHERE b.Status = ?"
	}
	query += " ORDER BY b.Created_At DESC"

	var rows *sql.Rows
	var err error
	if filterStatus != nil {
		rows, err = s.DB.Query(query, *filterStatus)
	} else {
		rows, err = s.DB.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []map[string]interface{}
	for rows.Next() {
		var nama, nik string
		var idKunjungan, status, idBilling int

		if err := rows.Scan(&nama, &nik, &idKunjungan, &status, &idBilling); err != nil {
			return nil, err
		}

		result = append(result, map[string]interface{}{
			"nama":         nama,
			"nik":          nik,
			"id_kunjungan": idKunjungan,
			"status":       status,
			"id_billing":   idBilling,
		})
	}
	return result, rows.Err()
}

// GetBillingDetail mengambil seluruh baris tagihan satu kunjungan, termasuk
// baris tarif ambulans yang dilampirkan mesin tarif.
func (s *BillingService) GetBillingDetail(idKunjungan int) (*models.DetailBilling, error) {
	detail := models.DetailBilling{IDKunjungan: idKunjungan}

	var idBilling int
	var waktuDibayar sql.NullTime
	err := s.DB.QueryRow(`
		SELECT b.ID_Billing, b.Status, b.Waktu_Dibayar, p.Nama, p.NIK
		FROM Billing b
		JOIN Kunjungan_IGD k ON b.ID_Kunjungan = k.ID_Kunjungan
		JOIN Pasien p ON k.ID_Pasien = p.ID_Pasien
		WHERE b.ID_Kunjungan = ?
	`, idKunjungan).Scan(&idBilling, &detail.Status, &waktuDibayar, &detail.NamaPasien, &detail.Nik)
	if err != nil {
		return nil, err
	}
	if waktuDibayar.Valid {
		w := waktuDibayar.Time.Format("2006-01-02 15:04")
		detail.WaktuDibayar = &w
	}

	rows, err := s.DB.Query(`
		SELECT t.Nama, bt.Jumlah, bt.Harga
		FROM Billing_Tindakan bt
		JOIN Tindakan t ON bt.ID_Tindakan = t.ID_Tindakan
		WHERE bt.ID_Billing = ?
	`, idBilling)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d models.TindakanDetail
		if err := rows.Scan(&d.NamaTindakan, &d.Jumlah, &d.Harga); err != nil {
			return nil, err
		}
		d.HargaTotal = d.Harga * float64(d.Jumlah)
		detail.Total += d.HargaTotal
		detail.Tindakan = append(detail.Tindakan, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rowsObat, err := s.DB.Query(`
		SELECT o.Nama, bo.Jumlah, o.Satuan, bo.Harga_Satuan
		FROM Billing_Obat bo
		JOIN Obat o ON bo.ID_Obat = o.ID_Obat
		WHERE bo.ID_Billing = ?
	`, idBilling)
	if err != nil {
		return nil, err
	}
	defer rowsObat.Close()
	for rowsObat.Next() {
		var d models.ObatDetail
		if err := rowsObat.Scan(&d.NamaObat, &d.Jumlah, &d.Satuan, &d.HargaSatuan); err != nil {
			return nil, err
		}
		d.HargaTotal = d.HargaSatuan * float64(d.Jumlah)
		detail.Total += d.HargaTotal
		detail.Obat = append(detail.Obat, d)
	}
	if err := rowsObat.Err(); err != nil {
		return nil, err
	}

	rowsAmb, err := s.DB.Query(`
		SELECT Jenis_Kendaraan, Jenis_Layanan, Jarak_Pulang_Pergi_Km, Total, URL_Referensi
		FROM Billing_Ambulans
		WHERE ID_Kunjungan = ?
		ORDER BY Created_At
	`, idKunjungan)
	if err != nil {
		return nil, err
	}
	defer rowsAmb.Close()
	for rowsAmb.Next() {
		var d models.AmbulansDetail
		var urlRef sql.NullString
		if err := rowsAmb.Scan(&d.JenisKendaraan, &d.JenisLayanan, &d.JarakPulangPergiKm, &d.Total, &urlRef); err != nil {
			return nil, err
		}
		if urlRef.Valid {
			d.URLReferensi = urlRef.String
		}
		detail.Ambulans = append(detail.Ambulans, d)
	}
	if err := rowsAmb.Err(); err != nil {
		return nil, err
	}

	return &detail, nil
}

// BayarBilling menandai billing satu kunjungan sebagai sudah dibayar.
func (s *BillingService) BayarBilling(idKunjungan int) error {
	result, err := s.DB.Exec(`
		UPDATE Billing SET Status = ?, Waktu_Dibayar = ?
		WHERE ID_Kunjungan = ? AND Status = ?
	`, models.BillingSudahDibayar, time.Now(), idKunjungan, models.BillingBelumDibayar)
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
