// Package gateway simulates an external card payment provider.
package gateway

import (
	"context"
	"strings"
	"time"

	"shop/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// declinedSuffix marks test cards the simulator always declines.
const declinedSuffix = "0000"

// Simulator approves every card except those ending in 0000.
type Simulator struct {
	now func() time.Time
}

func NewSimulator() *Simulator {
	return &Simulator{now: time.Now}
}

// Charge returns a reference like TXN-20261019120000-A1B2C3D4, or an empty
// string for a declined card.
func (s *Simulator) Charge(ctx context.Context, p payment.Validated) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.HasSuffix(p.MaskedCardNumber(), declinedSuffix) {
		return "", nil
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "TXN-" + s.now().UTC().Format("20060102150405") + "-" + suffix, nil
}
