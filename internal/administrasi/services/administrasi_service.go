package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rsudharapan/igd-backend/internal/administrasi/models"
)

type AdministrasiService struct {
	DB *sql.DB
}

func NewAdministrasiService(db *sql.DB) *AdministrasiService {
	return &AdministrasiService{DB: db}
}

// AuthenticateKaryawan memverifikasi kredensial petugas IGD dan memuat role
// beserta privilege-nya untuk dimasukkan ke dalam token.
func (s *AdministrasiService) AuthenticateKaryawan(username, password string) (*models.Karyawan, error) {
	var k models.Karyawan

	query := `
		SELECT k.ID_Karyawan, k.Nama, k.Username, k.Password, k.Created_At, drk.ID_Role, r.Nama_Role
		FROM Karyawan k
		JOIN Detail_Role_Karyawan drk ON k.ID_Karyawan = drk.ID_Karyawan
		JOIN Role r ON drk.ID_Role = r.ID_Role
		WHERE k.Username = ?
	`
	err := s.DB.QueryRow(query, username).Scan(&k.IDKaryawan, &k.Nama, &k.Username, &k.Password, &k.CreatedAt, &k.IDRole, &k.Role)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(k.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	rows, err := s.DB.Query("SELECT ID_Privilege FROM Detail_Privilege_Karyawan WHERE ID_Karyawan = ?", k.IDKaryawan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var privileges []int
	for rows.Next() {
		var priv int
		if err := rows.Scan(&priv); err != nil {
			return nil, err
		}
		privileges = append(privileges, priv)
	}
	k.Privileges = privileges

	return &k, nil
}
