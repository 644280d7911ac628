package service

// HitungLaba adalah satu-satunya rumus laba di aplikasi: dashboard,
// laporan, dan detail bon semuanya memanggil fungsi ini.
func HitungLaba(hargaBeli, hargaJual int64, jumlah int) int64 {
	return (hargaJual - hargaBeli) * int64(jumlah)
}
