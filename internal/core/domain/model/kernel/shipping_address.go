package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrShippingAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"ShippingAddress must be created via NewShippingAddress")

// ShippingAddress is where an order is delivered to.
//
// Bounds (in characters, after trimming):
//   - street: 5..200
//   - city: 2..100
//   - postal code: 4..10
//   - country: 2..60
type ShippingAddress struct {
	street     string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewShippingAddress checks every component and joins all failures.
func NewShippingAddress(street, city, postalCode, country string) (ShippingAddress, error) {
	address := ShippingAddress{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setPostalCode(postalCode),
		address.setCountry(country),
	); err != nil {
		return ShippingAddress{}, err
	}

	return address, nil
}

// Street returns the trimmed street line.
func (a ShippingAddress) Street() string {
	return a.street
}

// City returns the trimmed city.
func (a ShippingAddress) City() string {
	return a.city
}

// PostalCode returns the trimmed postal code.
func (a ShippingAddress) PostalCode() string {
	return a.postalCode
}

// Country returns the trimmed country.
func (a ShippingAddress) Country() string {
	return a.country
}

// FullAddress renders "street, city, postal code, country".
func (a ShippingAddress) FullAddress() string {
	return strings.Join([]string{a.street, a.city, a.postalCode, a.country}, ", ")
}

// String is the same as FullAddress.
func (a ShippingAddress) String() string {
	return a.FullAddress()
}

// IsEqual compares every component.
func (a ShippingAddress) IsEqual(other ShippingAddress) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// Validate fails for a ShippingAddress not built by NewShippingAddress.
func (a ShippingAddress) Validate() error {
	return a.guard.Validate(ErrShippingAddressIsNotConstructed)
}

func (a *ShippingAddress) setStreet(street string) (err error) {
	a.street, err = addressPart("Street", "street", street, 5, 200)
	return err
}

func (a *ShippingAddress) setCity(city string) (err error) {
	a.city, err = addressPart("City", "city", city, 2, 100)
	return err
}

func (a *ShippingAddress) setPostalCode(postalCode string) (err error) {
	a.postalCode, err = addressPart("Postal code", "postal code", postalCode, 4, 10)
	return err
}

func (a *ShippingAddress) setCountry(country string) (err error) {
	a.country, err = addressPart("Country", "country", country, 2, 60)
	return err
}

func addressPart(label, param, raw string, minLength, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", required(param, label+" must not be empty")
	}
	if n := length(trimmed); n < minLength || n > maxLength {
		return "", outOfRange(param, fmt.Sprintf("%s must be between %d and %d characters", label, minLength, maxLength))
	}
	return trimmed, nil
}
