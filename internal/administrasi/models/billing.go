package models

// Status billing.
const (
	BillingBelumDibayar = 0
	BillingSudahDibayar = 1
)

// BillingItemTindakan adalah satu baris tindakan medis yang ditagihkan.
type BillingItemTindakan struct {
	IDTindakan int `json:"id_tindakan"`
	Jumlah     int `json:"jumlah"`
}

// BillingItemObat adalah satu baris obat yang ditagihkan.
type BillingItemObat struct {
	IDObat int `json:"id_obat"`
	Jumlah int `json:"jumlah"`
}

// InputBillingRequest merupakan payload input billing untuk satu kunjungan.
type InputBillingRequest struct {
	IDKunjungan int                   `json:"id_kunjungan"`
	Tindakan    []BillingItemTindakan `json:"tindakan"`
	Obat        []BillingItemObat     `json:"obat"`
}

// TindakanDetail adalah baris tindakan pada detail billing.
type TindakanDetail struct {
	NamaTindakan string  `json:"nama_tindakan"`
	Jumlah       int     `json:"jumlah"`
	Harga        float64 `json:"harga"`
	HargaTotal   float64 `json:"harga_total"`
}

// ObatDetail adalah baris obat pada detail billing.
type ObatDetail struct {
	NamaObat    string  `json:"nama_obat"`
	Jumlah      int     `json:"jumlah"`
	Satuan      string  `json:"satuan,omitempty"`
	HargaSatuan float64 `json:"harga_satuan"`
	HargaTotal  float64 `json:"harga_total"`
}

// AmbulansDetail adalah baris tarif ambulans pada detail billing, diambil
// dari rincian yang sudah dihitung mesin tarif.
type AmbulansDetail struct {
	JenisKendaraan     string  `json:"jenis_kendaraan"`
	JenisLayanan       string  `json:"jenis_layanan"`
	JarakPulangPergiKm float64 `json:"jarak_pulang_pergi_km"`
	Total              string  `json:"total"`
	URLReferensi       string  `json:"url_referensi,omitempty"`
}

// DetailBilling menggabungkan seluruh baris tagihan satu kunjungan.
type DetailBilling struct {
	IDKunjungan  int              `json:"id_kunjungan"`
	NamaPasien   string           `json:"nama_pasien"`
	Nik          string           `json:"nik"`
	Status       int              `json:"status"`
	Tindakan     []TindakanDetail `json:"tindakan"`
	Obat         []ObatDetail     `json:"obat"`
	Ambulans     []AmbulansDetail `json:"ambulans"`
	Total        float64          `json:"total"`
	WaktuDibayar *string          `json:"waktu_dibayar"`
}
