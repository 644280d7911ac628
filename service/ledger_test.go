package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"toko-inventory/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Kategori{},
		&models.Subkategori{},
		&models.Supplier{},
		&models.Barang{},
		&models.StokMasuk{},
		&models.StokKeluar{},
		&models.Penjualan{},
		&models.PenjualanItem{},
		&models.LogAktivitas{},
	); err != nil {
		t.Fatalf("migrasi: %v", err)
	}
	return db
}

func buatBarang(t *testing.T, db *gorm.DB, kode string, stok int, hargaBeli, hargaJual int64) *models.Barang {
	t.Helper()
	brg := models.Barang{
		Kode:      kode,
		Nama:      "Barang " + kode,
		Satuan:    "pcs",
		HargaBeli: hargaBeli,
		HargaJual: hargaJual,
		Stok:      stok,
	}
	if err := db.Create(&brg).Error; err != nil {
		t.Fatalf("buat barang: %v", err)
	}
	return &brg
}

func cariLog(t *testing.T, db *gorm.DB, aksi, substr string) {
	t.Helper()
	var rows []models.LogAktivitas
	if err := db.Where("aksi = ?", aksi).Find(&rows).Error; err != nil {
		t.Fatalf("ambil log %q: %v", aksi, err)
	}
	for _, r := range rows {
		if strings.Contains(r.Detail, substr) {
			return
		}
	}
	t.Errorf("tidak ada log aksi %q dengan detail memuat %q (ada %d baris)", aksi, substr, len(rows))
}

func ambilStok(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var brg models.Barang
	if err := db.First(&brg, id).Error; err != nil {
		t.Fatalf("ambil barang %d: %v", id, err)
	}
	return brg.Stok
}

func TestStokMasukMenambahStok(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "SMN-001", 10, 50000, 65000)

	entry, err := svc.StokMasuk(context.Background(), StokMasukInput{
		BarangID: brg.ID,
		Jumlah:   40,
		UserID:   1,
	})
	if err != nil {
		t.Fatalf("stok masuk: %v", err)
	}
	if entry.Jumlah != 40 {
		t.Errorf("jumlah entry = %d, mau 40", entry.Jumlah)
	}
	if got := ambilStok(t, db, brg.ID); got != 50 {
		t.Errorf("stok = %d, mau 50", got)
	}
	cariLog(t, db, "Stok Masuk", "+40")
}

func TestStokMasukValidasi(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "SMN-001", 0, 0, 0)

	var vErr *ValidationError
	if _, err := svc.StokMasuk(context.Background(), StokMasukInput{BarangID: brg.ID, Jumlah: 0}); !errors.As(err, &vErr) {
		t.Errorf("jumlah 0: err = %v, mau ValidationError", err)
	}
	if _, err := svc.StokMasuk(context.Background(), StokMasukInput{BarangID: brg.ID, Jumlah: -5}); !errors.As(err, &vErr) {
		t.Errorf("jumlah negatif: err = %v, mau ValidationError", err)
	}
	if _, err := svc.StokMasuk(context.Background(), StokMasukInput{BarangID: 9999, Jumlah: 5}); !errors.Is(err, ErrNotFound) {
		t.Errorf("barang tidak ada: err = %v, mau ErrNotFound", err)
	}
}

func TestStokKeluarStokTidakCukup(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "KBL-001", 70, 10000, 15000)

	_, err := svc.StokKeluar(context.Background(), StokKeluarInput{
		BarangID: brg.ID,
		Jumlah:   80,
		UserID:   1,
	})
	var insErr *InsufficientStockError
	if !errors.As(err, &insErr) {
		t.Fatalf("err = %v, mau InsufficientStockError", err)
	}
	if insErr.Tersedia != 70 || insErr.Diminta != 80 {
		t.Errorf("detail error = tersedia %d diminta %d, mau 70/80", insErr.Tersedia, insErr.Diminta)
	}
	if got := ambilStok(t, db, brg.ID); got != 70 {
		t.Errorf("stok berubah jadi %d, harusnya tetap 70", got)
	}
	var n int64
	db.Model(&models.StokKeluar{}).Count(&n)
	if n != 0 {
		t.Errorf("ada %d entri stok keluar, harusnya 0", n)
	}
}

func TestStokKeluarJumlahMelebihiBatas(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "KBL-001", 10, 8000, 12000)

	var vErr *ValidationError
	_, err := svc.StokKeluar(context.Background(), StokKeluarInput{
		BarangID: brg.ID,
		Jumlah:   maxJumlah + 1,
		UserID:   1,
	})
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, mau ValidationError", err)
	}
	if got := ambilStok(t, db, brg.ID); got != 10 {
		t.Errorf("stok berubah jadi %d, harusnya tetap 10", got)
	}
}

// Deadline yang sudah lewat harus diteruskan sebagai error context,
// bukan ditelan jadi error lain.
func TestStokMasukDeadlineLewat(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "SMN-001", 5, 50000, 65000)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := svc.StokMasuk(ctx, StokMasukInput{BarangID: brg.ID, Jumlah: 5, UserID: 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, mau context.DeadlineExceeded", err)
	}
	if got := ambilStok(t, db, brg.ID); got != 5 {
		t.Errorf("stok berubah jadi %d, harusnya tetap 5", got)
	}
}

// Stok akhir harus sama dengan total masuk dikurangi total keluar.
func TestInvarianJumlahLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "PSR-001", 0, 20000, 27000)
	ctx := context.Background()

	masuk := []int{100, 30, 250}
	keluar := []int{40, 15, 60}
	for _, j := range masuk {
		if _, err := svc.StokMasuk(ctx, StokMasukInput{BarangID: brg.ID, Jumlah: j, UserID: 1}); err != nil {
			t.Fatalf("stok masuk %d: %v", j, err)
		}
	}
	for _, j := range keluar {
		if _, err := svc.StokKeluar(ctx, StokKeluarInput{BarangID: brg.ID, Jumlah: j, UserID: 1}); err != nil {
			t.Fatalf("stok keluar %d: %v", j, err)
		}
	}

	var totalMasuk, totalKeluar int64
	db.Model(&models.StokMasuk{}).Where("barang_id = ?", brg.ID).Select("COALESCE(SUM(jumlah), 0)").Scan(&totalMasuk)
	db.Model(&models.StokKeluar{}).Where("barang_id = ?", brg.ID).Select("COALESCE(SUM(jumlah), 0)").Scan(&totalKeluar)

	got := ambilStok(t, db, brg.ID)
	if int64(got) != totalMasuk-totalKeluar {
		t.Errorf("stok = %d, ledger bilang %d", got, totalMasuk-totalKeluar)
	}
	if got != 265 {
		t.Errorf("stok = %d, mau 265", got)
	}
}

func TestBuatPenjualan(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	semen := buatBarang(t, db, "SMN-001", 100, 50000, 65000)
	kabel := buatBarang(t, db, "KBL-001", 50, 8000, 12000)

	hasil, err := svc.BuatPenjualan(context.Background(), PenjualanInput{
		Pembeli: "Pak Budi",
		Items: []PenjualanItemInput{
			{BarangID: semen.ID, Jumlah: 10, HargaJual: 65000},
			{BarangID: kabel.ID, Jumlah: 5, HargaJual: 12000},
		},
		Bayar:  800000,
		UserID: 1,
	})
	if err != nil {
		t.Fatalf("buat penjualan: %v", err)
	}

	wantTotal := int64(10*65000 + 5*12000)
	if hasil.Total != wantTotal {
		t.Errorf("total = %d, mau %d", hasil.Total, wantTotal)
	}
	if hasil.Kembali != 800000-wantTotal {
		t.Errorf("kembali = %d, mau %d", hasil.Kembali, 800000-wantTotal)
	}
	if hasil.NomorBon == "" {
		t.Error("nomor bon kosong")
	}
	if len(hasil.Items) != 2 {
		t.Fatalf("jumlah item = %d, mau 2", len(hasil.Items))
	}
	if hasil.Items[0].Subtotal != 650000 {
		t.Errorf("subtotal item pertama = %d, mau 650000", hasil.Items[0].Subtotal)
	}

	if got := ambilStok(t, db, semen.ID); got != 90 {
		t.Errorf("stok semen = %d, mau 90", got)
	}
	if got := ambilStok(t, db, kabel.ID); got != 45 {
		t.Errorf("stok kabel = %d, mau 45", got)
	}

	// tiap item penjualan harus punya entri stok keluar padanannya
	var keluar []models.StokKeluar
	if err := db.Where("keterangan = ?", "Penjualan "+hasil.NomorBon).Find(&keluar).Error; err != nil {
		t.Fatalf("ambil stok keluar: %v", err)
	}
	if len(keluar) != 2 {
		t.Errorf("entri stok keluar = %d, mau 2", len(keluar))
	}
}

func TestBuatPenjualanBayarKurang(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "SMN-001", 100, 50000, 65000)

	_, err := svc.BuatPenjualan(context.Background(), PenjualanInput{
		Items:  []PenjualanItemInput{{BarangID: brg.ID, Jumlah: 2, HargaJual: 65000}},
		Bayar:  100000,
		UserID: 1,
	})
	var payErr *PaymentInsufficientError
	if !errors.As(err, &payErr) {
		t.Fatalf("err = %v, mau PaymentInsufficientError", err)
	}
	if payErr.Total != 130000 || payErr.Bayar != 100000 {
		t.Errorf("detail error = total %d bayar %d, mau 130000/100000", payErr.Total, payErr.Bayar)
	}

	if got := ambilStok(t, db, brg.ID); got != 100 {
		t.Errorf("stok = %d, harusnya tetap 100", got)
	}
	var n int64
	db.Model(&models.Penjualan{}).Count(&n)
	if n != 0 {
		t.Errorf("ada %d penjualan, harusnya 0", n)
	}
}

// Kalau satu item gagal, seluruh penjualan batal termasuk item yang
// sempat lolos.
func TestBuatPenjualanAtomik(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	cukup := buatBarang(t, db, "SMN-001", 100, 50000, 65000)
	kurang := buatBarang(t, db, "KBL-001", 3, 8000, 12000)

	_, err := svc.BuatPenjualan(context.Background(), PenjualanInput{
		Items: []PenjualanItemInput{
			{BarangID: cukup.ID, Jumlah: 10, HargaJual: 65000},
			{BarangID: kurang.ID, Jumlah: 5, HargaJual: 12000},
		},
		Bayar:  1000000,
		UserID: 1,
	})
	var insErr *InsufficientStockError
	if !errors.As(err, &insErr) {
		t.Fatalf("err = %v, mau InsufficientStockError", err)
	}

	if got := ambilStok(t, db, cukup.ID); got != 100 {
		t.Errorf("stok barang pertama = %d, harusnya kembali 100", got)
	}
	if got := ambilStok(t, db, kurang.ID); got != 3 {
		t.Errorf("stok barang kedua = %d, harusnya tetap 3", got)
	}

	var n int64
	db.Model(&models.Penjualan{}).Count(&n)
	if n != 0 {
		t.Errorf("ada %d penjualan, harusnya 0", n)
	}
	db.Model(&models.PenjualanItem{}).Count(&n)
	if n != 0 {
		t.Errorf("ada %d item penjualan, harusnya 0", n)
	}
	db.Model(&models.StokKeluar{}).Count(&n)
	if n != 0 {
		t.Errorf("ada %d entri stok keluar, harusnya 0", n)
	}
}

// Dua baris untuk barang yang sama: baris kedua melihat stok sesudah
// pengurangan baris pertama, dan kalau kurang seluruh transaksi batal.
func TestBuatPenjualanBarisGanda(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "SMN-001", 10, 50000, 65000)

	_, err := svc.BuatPenjualan(context.Background(), PenjualanInput{
		Items: []PenjualanItemInput{
			{BarangID: brg.ID, Jumlah: 8, HargaJual: 65000},
			{BarangID: brg.ID, Jumlah: 5, HargaJual: 65000},
		},
		Bayar:  1000000,
		UserID: 1,
	})
	var insErr *InsufficientStockError
	if !errors.As(err, &insErr) {
		t.Fatalf("err = %v, mau InsufficientStockError", err)
	}
	if insErr.Tersedia != 2 || insErr.Diminta != 5 {
		t.Errorf("detail error = tersedia %d diminta %d, mau 2/5", insErr.Tersedia, insErr.Diminta)
	}
	if got := ambilStok(t, db, brg.ID); got != 10 {
		t.Errorf("stok = %d, harusnya kembali 10", got)
	}
}

func TestBalutBentrokNomorBon(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	if err := balutBentrokNomorBon(dup); !errors.Is(err, errNomorBonBentrok) {
		t.Errorf("unique violation tidak terdeteksi: %v", err)
	}

	lain := errors.New("connection refused")
	if err := balutBentrokNomorBon(lain); !errors.Is(err, lain) || errors.Is(err, errNomorBonBentrok) {
		t.Errorf("error lain ikut ditandai retry: %v", err)
	}
}

func TestBuatPenjualanKeranjangKosong(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)

	var vErr *ValidationError
	if _, err := svc.BuatPenjualan(context.Background(), PenjualanInput{Bayar: 100}); !errors.As(err, &vErr) {
		t.Errorf("err = %v, mau ValidationError", err)
	}
}

func TestResetStok(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "CTX-001", 42, 30000, 40000)

	sebelum, err := svc.ResetStok(context.Background(), brg.ID, 1)
	if err != nil {
		t.Fatalf("reset stok: %v", err)
	}
	if sebelum != 42 {
		t.Errorf("stok sebelum reset = %d, mau 42", sebelum)
	}
	if got := ambilStok(t, db, brg.ID); got != 0 {
		t.Errorf("stok = %d, mau 0", got)
	}
	// kuantitas sebelum reset harus terekam di log aktivitas
	cariLog(t, db, "Reset Stok", "reset dari 42")

	if _, err := svc.ResetStok(context.Background(), 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("barang tidak ada: err = %v, mau ErrNotFound", err)
	}
}

func TestHapusStokMasukPeriode(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "PSR-001", 0, 20000, 27000)
	ctx := context.Background()

	tgl := func(hari int) time.Time {
		return time.Date(2026, 8, hari, 10, 0, 0, 0, time.UTC)
	}
	for _, h := range []int{1, 10, 20} {
		if _, err := svc.StokMasuk(ctx, StokMasukInput{BarangID: brg.ID, Jumlah: 5, Tanggal: tgl(h), UserID: 1}); err != nil {
			t.Fatalf("stok masuk: %v", err)
		}
	}

	dihapus, err := svc.HapusStokMasukPeriode(ctx, tgl(5), tgl(15), 1)
	if err != nil {
		t.Fatalf("hapus periode: %v", err)
	}
	if dihapus != 1 {
		t.Errorf("dihapus = %d, mau 1", dihapus)
	}
	var sisa int64
	db.Model(&models.StokMasuk{}).Count(&sisa)
	if sisa != 2 {
		t.Errorf("sisa entri = %d, mau 2", sisa)
	}
	// stok barang tidak ikut berubah
	if got := ambilStok(t, db, brg.ID); got != 15 {
		t.Errorf("stok = %d, mau 15", got)
	}
}

// Dua kasir menarik 60 dari stok 100 bersamaan: tepat satu yang lolos.
func TestStokKeluarKonkuren(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	brg := buatBarang(t, db, "KBL-001", 100, 8000, 12000)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.StokKeluar(context.Background(), StokKeluarInput{
				BarangID: brg.ID,
				Jumlah:   60,
				UserID:   uint(i + 1),
			})
		}()
	}
	wg.Wait()

	sukses := 0
	for _, err := range errs {
		if err == nil {
			sukses++
			continue
		}
		var insErr *InsufficientStockError
		if !errors.As(err, &insErr) {
			t.Fatalf("err tak terduga: %v", err)
		}
	}
	if sukses != 1 {
		t.Fatalf("yang sukses = %d, mau tepat 1", sukses)
	}
	if got := ambilStok(t, db, brg.ID); got != 40 {
		t.Errorf("stok akhir = %d, mau 40", got)
	}
}
