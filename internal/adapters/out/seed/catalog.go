// Package seed provides the starter product catalog loaded into empty stores.
package seed

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

type entry struct {
	code        string
	name        string
	description string
	category    string
	price       string
	stock       int
}

var entries = []entry{
	{"CPU001", "Intel Core i9-14900K", "24-core (8 P-cores + 16 E-cores) processor with up to 6.0 GHz boost clock", "CPU", "589.99", 50},
	{"CPU002", "AMD Ryzen 9 7950X", "16-core 32-thread processor with up to 5.7 GHz boost clock", "CPU", "549.99", 45},
	{"GPU001", "NVIDIA GeForce RTX 4090", "24GB GDDR6X, 16384 CUDA cores, ray tracing enabled", "GPU", "1599.99", 25},
	{"GPU002", "AMD Radeon RX 7900 XTX", "24GB GDDR6, 6144 stream processors, RDNA 3 architecture", "GPU", "999.99", 30},
	{"RAM001", "Corsair Vengeance DDR5-6000 32GB", "32GB (2x16GB) DDR5-6000 CL36 memory kit", "RAM", "159.99", 100},
	{"RAM002", "G.Skill Trident Z5 RGB DDR5-6400 64GB", "64GB (2x32GB) DDR5-6400 CL32 RGB memory kit", "RAM", "299.99", 60},
	{"MBD001", "ASUS ROG Maximus Z790 Hero", "Intel Z790 chipset, LGA1700, DDR5 support, WiFi 6E", "Motherboard", "629.99", 35},
	{"MBD002", "MSI MEG X670E ACE", "AMD X670E chipset, AM5, DDR5 support, WiFi 6E", "Motherboard", "699.99", 28},
	{"SSD001", "Samsung 990 Pro 2TB NVMe", "2TB NVMe M.2 SSD, up to 7450 MB/s read speed", "Storage", "199.99", 80},
	{"SSD002", "WD Black SN850X 4TB NVMe", "4TB NVMe M.2 SSD, up to 7300 MB/s read speed", "Storage", "399.99", 40},
	{"PSU001", "Corsair RM1000x 1000W 80+ Gold", "1000W fully modular power supply, 80+ Gold certified", "PSU", "189.99", 55},
	{"CASE001", "Lian Li O11 Dynamic EVO", "Mid-tower case with tempered glass, supports E-ATX", "Case", "169.99", 45},
}

// Catalog builds fresh product entities for the starter catalog.
func Catalog() ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(entries))
	for _, e := range entries {
		p, err := build(e)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: %w", e.code, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Load adds every catalog product the repository does not have yet.
// Existing products keep their stock and price.
func Load(ctx context.Context, repo ports.ProductRepository) (int, error) {
	products, err := Catalog()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, p := range products {
		_, err = repo.Get(ctx, p.Code())
		switch {
		case err == nil:
			continue
		case !errors.Is(err, errs.ErrObjectNotFound):
			return added, err
		}
		if err = repo.Add(ctx, p); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func build(e entry) (*product.Product, error) {
	code, err := kernel.NewProductCode(e.code)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewProductName(e.name)
	if err != nil {
		return nil, err
	}
	price, err := kernel.ParsePrice(e.price)
	if err != nil {
		return nil, err
	}
	stock, err := kernel.NewStockQuantity(e.stock)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(code, name, e.description, e.category, price, stock)
}
