package routes

import (
	"toko-inventory/controllers"
	"toko-inventory/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		// Semua di bawah butuh token
		authed := api.Group("/", middlewares.AuthMiddleware())
		{
			authed.GET("/auth/profile", controllers.Profile)
			authed.POST("/auth/register", middlewares.RequireRole("admin"), controllers.Register)

			authed.GET("/dashboard", controllers.GetDashboard)

			kategori := authed.Group("/kategori")
			{
				kategori.GET("/", controllers.GetAllKategori)
				kategori.GET("/:id", controllers.GetKategoriByID)
				kategori.POST("/", controllers.CreateKategori)
				kategori.PUT("/:id", controllers.UpdateKategori)
				kategori.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteKategori)
			}

			subkategori := authed.Group("/subkategori")
			{
				subkategori.GET("/", controllers.GetAllSubkategori)
				subkategori.GET("/:id", controllers.GetSubkategoriByID)
				subkategori.POST("/", controllers.CreateSubkategori)
				subkategori.PUT("/:id", controllers.UpdateSubkategori)
				subkategori.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteSubkategori)
			}

			barang := authed.Group("/barang")
			{
				barang.GET("/", controllers.GetAllBarang)
				barang.GET("/kode", controllers.GenerateKodeBarang)
				barang.GET("/:id", controllers.GetBarangByID)
				barang.POST("/", controllers.CreateBarang)
				barang.PUT("/:id", controllers.UpdateBarang)
				barang.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteBarang)
				barang.POST("/:id/reset-stok", middlewares.RequireRole("admin"), controllers.ResetStokBarang)
			}

			supplier := authed.Group("/supplier")
			{
				supplier.GET("/", controllers.GetAllSupplier)
				supplier.GET("/:id", controllers.GetSupplierByID)
				supplier.POST("/", controllers.CreateSupplier)
				supplier.PUT("/:id", controllers.UpdateSupplier)
				supplier.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteSupplier)
			}

			stokMasuk := authed.Group("/stok-masuk")
			{
				stokMasuk.GET("/", controllers.GetStokMasuk)
				stokMasuk.POST("/", controllers.CreateStokMasuk)
				stokMasuk.DELETE("/reset", middlewares.RequireRole("admin"), controllers.ResetStokMasuk)
			}

			stokKeluar := authed.Group("/stok-keluar")
			{
				stokKeluar.GET("/", controllers.GetStokKeluar)
				stokKeluar.POST("/", controllers.CreateStokKeluar)
				stokKeluar.DELETE("/reset", middlewares.RequireRole("admin"), controllers.ResetStokKeluar)
			}

			penjualan := authed.Group("/penjualan")
			{
				penjualan.GET("/", controllers.GetRiwayatPenjualan)
				penjualan.POST("/", controllers.CreatePenjualan)
				penjualan.GET("/:id", controllers.GetPenjualanByID)
			}

			laporan := authed.Group("/laporan")
			{
				laporan.GET("/profit", controllers.ReportProfitPerBarang)
				laporan.GET("/profit/kategori", controllers.ReportProfitPerKategori)
				laporan.GET("/profit/export", controllers.ExportProfitXLSX)
			}

			authed.GET("/log-aktivitas", middlewares.RequireRole("admin"), controllers.GetLogAktivitas)
		}
	}
}
