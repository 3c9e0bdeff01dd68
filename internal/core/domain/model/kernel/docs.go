// Package kernel provides the value objects shared by the order, payment and
// shipping models.
//
// The package includes:
//   - ProductCode, ProductName: catalog identifiers and labels
//   - Price: a two-decimal monetary amount backed by shopspring/decimal
//   - Quantity, StockQuantity: ordered and available unit counts
//   - CustomerName, CustomerEmail: buyer details
//   - ShippingAddress: a four part delivery address
//   - OrderID, PaymentID: UUID identifiers minted once validation succeeds
//
// Every value object is built from raw input by a constructor that normalizes
// the input first (trimming, case folding) and then checks format, length and
// range. Constructors return either a value or an error, never both. Failures
// are errs.RuleViolationError values whose message is shown to users verbatim
// and whose kind tells apart missing, unparseable, out of range and malformed
// input. Zero values fail Validate.
package kernel
