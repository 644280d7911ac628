// utils/bon.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenNomorBon membuat nomor bon BON-YYYYMMDD-HHMMSS-xxxx. Sufiks pendek
// dari UUID mencegah tabrakan kalau dua transaksi tercatat pada detik
// yang sama.
func GenNomorBon(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("BON-%s-%s-%s", t.Format("20060102"), t.Format("150405"), suffix)
}
