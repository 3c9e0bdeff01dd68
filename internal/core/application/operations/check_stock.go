package operations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// CheckStock prices every line of a validated order and reserves its stock.
//
// Lines are processed in order. A line that fails records a single reason and
// reserves nothing; the remaining lines are still checked.
type CheckStock struct {
	catalog ports.ProductCatalog
	cfg     config
}

// NewCheckStock creates the operation reserving stock in catalog.
func NewCheckStock(catalog ports.ProductCatalog, opts ...Option) CheckStock {
	return CheckStock{catalog: catalog, cfg: newConfig(opts)}
}

// Transform turns Validated into StockChecked or Invalid and passes other states through.
func (op CheckStock) Transform(ctx context.Context, state order.State) order.State {
	return orderHandlers{validated: op.onValidated}.transform(ctx, state)
}

func (op CheckStock) onValidated(ctx context.Context, v order.Validated) order.State {
	lines := v.Lines()
	priced := make([]order.PricedLine, 0, len(lines))
	reasons := make([]string, 0)

	for _, line := range lines {
		p, reason := op.checkLine(ctx, line)
		if reason != "" {
			reasons = append(reasons, reason)
			continue
		}
		priced = append(priced, p)
	}

	if len(reasons) > 0 {
		if op.cfg.compensation {
			releaseStock(ctx, op.catalog, op.cfg.logger, priced)
		}
		return order.NewInvalid(reasons...)
	}

	return order.NewStockChecked(v, priced)
}

// checkLine returns the priced line, or the reason the line failed.
func (op CheckStock) checkLine(ctx context.Context, line order.ValidatedLine) (order.PricedLine, string) {
	code := line.ProductCode()

	exists, err := op.catalog.Exists(ctx, code)
	if err != nil {
		return order.PricedLine{}, withCause(fmt.Sprintf("Could not retrieve details for product '%s'", code), err)
	}
	if !exists {
		return order.PricedLine{}, fmt.Sprintf("Product '%s' does not exist", code)
	}

	details, err := op.catalog.Details(ctx, code)
	if err != nil {
		reason := fmt.Sprintf("Could not retrieve details for product '%s'", code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.PricedLine{}, reason
		}
		return order.PricedLine{}, withCause(reason, err)
	}

	if !details.Stock.HasEnoughStock(line.Quantity()) {
		return order.PricedLine{}, fmt.Sprintf("Insufficient stock for product '%s': requested %d, available %d",
			code, line.Quantity().Int(), details.Stock.Int())
	}

	reserved, err := op.catalog.ReserveStock(ctx, code, line.Quantity())
	if err != nil {
		return order.PricedLine{}, withCause(fmt.Sprintf("Failed to reserve stock for product '%s'", code), err)
	}
	if !reserved {
		return order.PricedLine{}, fmt.Sprintf("Failed to reserve stock for product '%s'", code)
	}

	return order.NewPricedLine(line, details.Name, details.Price), ""
}

func withCause(reason string, cause error) string {
	return fmt.Sprintf("%s: %v", reason, cause)
}

// releaseStock gives back the reservations of lines. Failures are logged
// because the order is already failing for another reason.
func releaseStock(ctx context.Context, catalog ports.ProductCatalog, logger *slog.Logger, lines []order.PricedLine) {
	for _, line := range lines {
		if err := catalog.ReleaseStock(ctx, line.ProductCode(), line.Quantity()); err != nil {
			logger.WarnContext(ctx, "failed to release reserved stock",
				"product_code", line.ProductCode().String(),
				"quantity", line.Quantity().Int(),
				"error", err)
		}
	}
}
