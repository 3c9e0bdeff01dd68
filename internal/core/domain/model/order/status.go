package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status is the lifecycle of a stored order once placement succeeded.
//
// State transitions:
//
//	Placed ──> Paid ──> Shipped ──> Delivered
//	   │
//	   └──> Cancelled
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPlaced is a persisted order awaiting payment.
	StatusPlaced

	// StatusPaid means a payment for the full total was captured.
	StatusPaid

	// StatusShipped means the order was handed to a carrier.
	StatusShipped

	// StatusDelivered is final.
	StatusDelivered

	// StatusCancelled is final.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPlaced:    "Placed",
		StatusPaid:      "Paid",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// ParseStatus maps a stored name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects StatusUnknown and values outside the enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether a payment has been captured for the order.
func (s Status) IsPaid() bool {
	return s == StatusPaid || s == StatusShipped || s == StatusDelivered
}

// Pay transitions Placed to Paid.
func (s Status) Pay() (Status, error) {
	if s != StatusPlaced {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s),
		)
	}
	return StatusPaid, nil
}

// Ship transitions Paid to Shipped.
func (s Status) Ship() (Status, error) {
	if s != StatusPaid {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s),
		)
	}
	return StatusShipped, nil
}
