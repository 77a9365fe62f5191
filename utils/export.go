// utils/export.go
package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"token-analytics-system/models"
)

// EarlyAccessCSV renders registry rows to CSV in the same column order the
// admin listing uses.
func EarlyAccessCSV(users []models.EarlyAccessUser) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "wallet_address", "joined_at", "has_requested_access", "email"}); err != nil {
		return nil, err
	}

	for _, u := range users {
		record := []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.WalletAddress,
			u.JoinedAt.Format(time.RFC3339),
			strconv.FormatBool(u.HasRequestedAccess),
			u.EmailOrDefault(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
