package data

type Manajer struct {
	ID     string `json:"id_manajer" db:"id_manajer"`
	Nama   string `json:"nama_manajer" db:"nama_manajer"`
	Kontak string `json:"kontak_manajer" db:"kontak_manajer"`
}

type Jenis struct {
	ID        string `json:"id_jenis" db:"id_jenis"`
	Nama      string `json:"nama_jenis" db:"nama_jenis"`
	Deskripsi string `json:"deskripsi_jenis" db:"deskripsi_jenis"`
}

type Pemilik struct {
	ID     string `json:"id_pemilik" db:"id_pemilik"`
	Nama   string `json:"nama_pemilik" db:"nama_pemilik"`
	Alamat string `json:"alamat_pemilik" db:"alamat_pemilik"`
	Kontak string `json:"kontak_pemilik" db:"kontak_pemilik"`
}

// Properti references a Jenis, a Pemilik and a Manajer by id. The references
// are not enforced: deleting a parent leaves them dangling.
type Properti struct {
	ID        string `json:"id_properti" db:"id_properti"`
	Nama      string `json:"nama_properti" db:"nama_properti"`
	Deskripsi string `json:"deskripsi_properti" db:"deskripsi_properti"`
	Lokasi    string `json:"lokasi" db:"lokasi"`
	Harga     string `json:"harga" db:"harga"`
	Status    string `json:"status_properti" db:"status_properti"` // "Tersedia", "Disewa", "Terjual"
	JenisID   string `json:"id_jenis" db:"id_jenis"`
	PemilikID string `json:"id_pemilik" db:"id_pemilik"`
	ManajerID string `json:"id_manajer" db:"id_manajer"`
}
