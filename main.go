package main

import (
	"log"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/routes"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("gagal memuat config: %v", err)
	}
	if err := config.InitLogger(cfg.Server.Mode); err != nil {
		log.Fatalf("gagal menyiapkan logger: %v", err)
	}
	defer config.Log.Sync()

	if err := config.ConnectDB(cfg.Database); err != nil {
		config.Log.Fatal("gagal koneksi database", zap.Error(err))
	}

	if err := config.DB.AutoMigrate(
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
		config.Log.Fatal("gagal migrasi database", zap.Error(err))
	}

	config.SeedAdmin(cfg.Seed)
	utils.SetJWTConfig(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Toko Inventory API is running"})
	})

	config.Log.Info("server jalan", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		config.Log.Fatal("server berhenti", zap.Error(err))
	}
}
