package models

import "time"

// LogAktivitas adalah jejak audit append-only. Tidak pernah diupdate
// atau dihapus oleh aplikasi.
type LogAktivitas struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Aksi      string    `gorm:"size:80;not null" json:"aksi"`
	Detail    string    `gorm:"size:255" json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
