package shipping

import (
	"fmt"
	"strings"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/google/uuid"
)

// DefaultLeadTimeDays applies to carriers without a configured lead time.
const DefaultLeadTimeDays = 5

var ErrCarrierIsNotConstructed = errs.NewValueIsRequiredError("Carrier must be created via ParseCarrier")

type carrierSpec struct {
	code         string
	displayName  string
	prefix       string
	leadTimeDays int
}

// carriers is ordered as it is listed to customers.
var carriers = []carrierSpec{
	{code: "DHL", displayName: "DHL Express", prefix: "DHL", leadTimeDays: 3},
	{code: "FEDEX", displayName: "FedEx", prefix: "FDX", leadTimeDays: 2},
	{code: "UPS", displayName: "UPS", prefix: "1Z", leadTimeDays: 3},
	{code: "DPD", displayName: "DPD", prefix: "DPD", leadTimeDays: 4},
	{code: "GLS", displayName: "GLS", prefix: "GLS", leadTimeDays: 4},
	{code: "CARGUS", displayName: "Cargus", prefix: "CRG", leadTimeDays: 2},
	{code: "FAN_COURIER", displayName: "Fan Courier", prefix: "FAN", leadTimeDays: 1},
	{code: "SAMEDAY", displayName: "Sameday", prefix: "SMD", leadTimeDays: 1},
}

func lookupCarrier(code string) (carrierSpec, bool) {
	for _, c := range carriers {
		if c.code == code {
			return c, true
		}
	}
	return carrierSpec{}, false
}

// CarrierCodes lists the accepted carrier codes in display order.
func CarrierCodes() []string {
	codes := make([]string, 0, len(carriers))
	for _, c := range carriers {
		codes = append(codes, c.code)
	}
	return codes
}

// Carrier is one of the supported delivery companies.
type Carrier struct {
	code  string
	guard guard.ConstructorGuard
}

// ParseCarrier trims and upper-cases raw, turns inner spaces into underscores
// ("fan courier" becomes FAN_COURIER) and checks it against the supported set.
func ParseCarrier(raw string) (Carrier, error) {
	code := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), " ", "_")
	if _, ok := lookupCarrier(code); !ok {
		return Carrier{}, errs.NewRuleViolationError(errs.ErrValueIsInvalid, "carrier",
			fmt.Sprintf("Invalid carrier '%s'. Valid carriers: %s", raw, strings.Join(CarrierCodes(), ", ")))
	}
	return Carrier{code: code, guard: guard.NewConstructorGuard()}, nil
}

// AllCarriers returns every supported carrier in display order.
func AllCarriers() []Carrier {
	all := make([]Carrier, 0, len(carriers))
	for _, c := range carriers {
		all = append(all, Carrier{code: c.code, guard: guard.NewConstructorGuard()})
	}
	return all
}

func (c Carrier) Code() string {
	return c.code
}

func (c Carrier) String() string {
	return c.code
}

func (c Carrier) DisplayName() string {
	info, _ := lookupCarrier(c.code)
	return info.displayName
}

// LeadTimeDays is how many days the carrier usually needs to deliver.
func (c Carrier) LeadTimeDays() int {
	if info, ok := lookupCarrier(c.code); ok {
		return info.leadTimeDays
	}
	return DefaultLeadTimeDays
}

// TrackingPrefix starts every tracking number issued for this carrier.
func (c Carrier) TrackingPrefix() string {
	if info, ok := lookupCarrier(c.code); ok {
		return info.prefix
	}
	return "TRK"
}

func (c Carrier) Validate() error {
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// NewTrackingNumber builds prefix + yyyyMMdd + 8 random upper-case hex
// characters, e.g. DHL20261019A1B2C3D4.
func NewTrackingNumber(c Carrier, at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return c.TrackingPrefix() + at.UTC().Format("20060102") + suffix
}

// StandardLeadTimes estimates delivery with each carrier's fixed lead time.
type StandardLeadTimes struct{}

func (StandardLeadTimes) EstimatedDeliveryDays(c Carrier) int {
	return c.LeadTimeDays()
}
