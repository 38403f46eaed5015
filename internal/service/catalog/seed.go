package catalog

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// SeedFile: формат YAML-файла начального каталога.
type SeedFile struct {
	Products []SeedProduct `yaml:"products"`
}

// SeedProduct описывает товар в seed-файле. Active по умолчанию true.
type SeedProduct struct {
	ID         string `yaml:"id"`
	Price      string `yaml:"price"`
	Active     *bool  `yaml:"active"`
	SupplierID string `yaml:"supplier_id"`
}

// LoadSeedFile читает и разбирает seed-файл каталога.
func LoadSeedFile(path string) ([]SeedProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed разбирает YAML-представление каталога.
func ParseSeed(data []byte) ([]SeedProduct, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return file.Products, nil
}

func (p SeedProduct) toProduct() (*domain.Product, error) {
	id := uuid.Nil
	if p.ID != "" {
		parsed, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", domain.ErrInvalidValue, p.ID)
		}
		id = parsed
	}

	var supplierID *uuid.UUID
	if p.SupplierID != "" {
		parsed, err := uuid.Parse(p.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("%w: supplier_id %q", domain.ErrInvalidValue, p.SupplierID)
		}
		supplierID = &parsed
	}

	price, err := domain.PriceFromString(p.Price)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(id, price, supplierID)
	if err != nil {
		return nil, err
	}
	if p.Active != nil && !*p.Active {
		product.Deactivate()
	}
	return product, nil
}
