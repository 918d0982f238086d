// Package accountnum derives human-readable account numbers from the
// account type and the current time. Numbers are not collision-free by
// construction; the account service retries generation when an insert
// reports a duplicate.
package accountnum

import (
	"fmt"
	"math/rand"
	"time"

	"bankcore/internal/core/domain"
)

// typePrefixes maps account type to its 2-digit numeric prefix. Unknown
// types fall back to the savings prefix.
var typePrefixes = map[string]string{
	domain.AccountTypeSavings:      "50",
	domain.AccountTypeCurrent:      "60",
	domain.AccountTypeSalary:       "70",
	domain.AccountTypeFixedDeposit: "80",
}

// Generate builds a 12-character account number: 2-digit type prefix,
// 8-digit zero-padded millisecond timestamp (mod 10^8) and a 2-digit
// random suffix.
func Generate(accountType string) string {
	prefix, ok := typePrefixes[accountType]
	if !ok {
		prefix = typePrefixes[domain.AccountTypeSavings]
	}
	timestamp := time.Now().UnixMilli() % 100000000
	suffix := rand.Intn(100)
	return fmt.Sprintf("%s%08d%02d", prefix, timestamp, suffix)
}
