package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"techstore-admin/models"
)

// placeholderImage dipakai jika produk belum memiliki gambar.
const placeholderImage = "https://picsum.photos/400/300?random="

// Batas harga: eksponen desimal dan jumlah digit yang masih diterima.
const (
	maxAmountExponent = 18
	maxAmountDigits   = 32
)

// APIProduct adalah bentuk produk di respons list, create dan update.
// Setiap field internal punya tepat satu field eksternal.
type APIProduct struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	SKU            string                `json:"sku"`
	Brand          string                `json:"brand"`
	Model          string                `json:"model"`
	Category       models.Category       `json:"category"`
	Color          string                `json:"color"`
	SerialNumber   string                `json:"serialNumber"`
	ReleaseDate    string                `json:"releaseDate"`
	Price          string                `json:"price"`
	Description    string                `json:"description"`
	Image          string                `json:"image"`
	Stock          int                   `json:"stock"`
	Rating         float64               `json:"rating"`
	Specifications models.Specifications `json:"specifications"`
	CreatedAt      *time.Time            `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time            `json:"updatedAt,omitempty"`
}

// APIProductDetail dikembalikan oleh endpoint get-one. Field mentah tetap
// ada, ditambah deskripsi dengan nama produk dan spesifikasi yang diratakan.
type APIProductDetail struct {
	APIProduct
	DisplayDescription   string            `json:"displayDescription"`
	SpecificationSummary map[string]string `json:"specificationSummary"`
}

func timeRef(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ToAPIProduct memetakan produk tersimpan ke bentuk eksternalnya.
func ToAPIProduct(p models.Product) APIProduct {
	image := p.Image
	if image == "" {
		image = placeholderImage + p.ID
	}
	specs := p.Specifications.Clone()
	if specs == nil {
		specs = models.Specifications{}
	}
	return APIProduct{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU(),
		Brand:          p.Brand,
		Model:          p.Model,
		Category:       p.Category,
		Color:          p.DisplayColor(),
		SerialNumber:   p.SerialNumber(),
		ReleaseDate:    p.ReleaseDate,
		Price:          p.Price.String(),
		Description:    p.Description,
		Image:          image,
		Stock:          max(p.Stock, 0),
		Rating:         p.Rating,
		Specifications: specs,
		CreatedAt:      timeRef(p.CreatedAt),
		UpdatedAt:      timeRef(p.UpdatedAt),
	}
}

// ToAPIProducts memetakan satu halaman produk. Hasilnya tidak pernah nil.
func ToAPIProducts(products []models.Product) []APIProduct {
	out := make([]APIProduct, 0, len(products))
	for _, p := range products {
		out = append(out, ToAPIProduct(p))
	}
	return out
}

// ToAPIProductDetail menambahkan deskripsi berawalan nama produk dan
// spesifikasi dengan list yang digabung koma.
func ToAPIProductDetail(p models.Product) APIProductDetail {
	summary := p.Specifications.Flatten()
	if summary == nil {
		summary = map[string]string{}
	}
	return APIProductDetail{
		APIProduct:           ToAPIProduct(p),
		DisplayDescription:   p.Name + ": " + p.Description,
		SpecificationSummary: summary,
	}
}

// FlexAmount menerima angka JSON atau string numerik. Null dan string
// kosong membiarkannya tidak di-set.
type FlexAmount struct {
	Value decimal.Decimal
	Set   bool
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price value: %q", raw)
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent || d.NumDigits() > maxAmountDigits {
		return decimal.Decimal{}, fmt.Errorf("price out of range: %q", raw)
	}
	return d, nil
}

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Coba nilai dalam tanda kutip dulu
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		d, err := parseAmount(s)
		if err != nil {
			return err
		}
		a.Value, a.Set = d, true
		return nil
	}

	d, err := parseAmount(string(data))
	if err != nil {
		return err
	}
	a.Value, a.Set = d, true
	return nil
}

// FlexInt menerima integer JSON atau string numerik. Null dan string kosong
// membiarkannya tidak di-set.
type FlexInt struct {
	Value int
	Set   bool
}

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Coba sebagai integer
	var intVal int
	if err := json.Unmarshal(data, &intVal); err == nil {
		i.Value, i.Set = intVal, true
		return nil
	}

	// Coba sebagai string
	var strVal string
	if err := json.Unmarshal(data, &strVal); err == nil {
		strVal = strings.TrimSpace(strVal)
		if strVal == "" {
			return nil
		}
		intVal, err := strconv.Atoi(strVal)
		if err != nil {
			return fmt.Errorf("invalid stock value: %v", strVal)
		}
		i.Value, i.Set = intVal, true
		return nil
	}

	return fmt.Errorf("invalid stock value: %v", string(data))
}

// ProductRequest adalah body create dan update. Nama field kanonik dan alias
// lama manufacturer, type, mileage dan registrationDate diterima; nama kanonik
// menang jika keduanya ada. id, sku dan serialNumber hanya-baca dan diabaikan.
type ProductRequest struct {
	Name             *string               `json:"name"`
	Brand            *string               `json:"brand"`
	Manufacturer     *string               `json:"manufacturer"`
	Model            *string               `json:"model"`
	Category         *string               `json:"category"`
	Type             *string               `json:"type"`
	Description      *string               `json:"description"`
	Price            FlexAmount            `json:"price"`
	Color            *string               `json:"color"`
	Image            *string               `json:"image"`
	Stock            FlexInt               `json:"stock"`
	Mileage          FlexInt               `json:"mileage"`
	Rating           *float64              `json:"rating"`
	ReleaseDate      *string               `json:"releaseDate"`
	RegistrationDate *string               `json:"registrationDate"`
	Specifications   models.Specifications `json:"specifications"`
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func (r ProductRequest) category() *models.Category {
	raw := firstSet(r.Category, r.Type)
	if raw == nil {
		return nil
	}
	c := models.Category(*raw)
	return &c
}

func (r ProductRequest) stock() *int {
	switch {
	case r.Stock.Set:
		return &r.Stock.Value
	case r.Mileage.Set:
		return &r.Mileage.Value
	}
	return nil
}

func (r ProductRequest) price() *decimal.Decimal {
	if !r.Price.Set {
		return nil
	}
	return &r.Price.Value
}

// ToInput mengubah request menjadi input create untuk store.
func (r ProductRequest) ToInput() models.ProductInput {
	return models.ProductInput{
		Name:           r.Name,
		Brand:          firstSet(r.Brand, r.Manufacturer),
		Model:          r.Model,
		Category:       r.category(),
		Description:    r.Description,
		Price:          r.price(),
		Color:          r.Color,
		Image:          r.Image,
		Stock:          r.stock(),
		Rating:         r.Rating,
		ReleaseDate:    firstSet(r.ReleaseDate, r.RegistrationDate),
		Specifications: r.Specifications,
	}
}

// ToPatch mengubah request menjadi patch untuk store.
func (r ProductRequest) ToPatch() models.ProductPatch {
	in := r.ToInput()
	return models.ProductPatch{
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Category:       in.Category,
		Description:    in.Description,
		Price:          in.Price,
		Color:          in.Color,
		Image:          in.Image,
		Stock:          in.Stock,
		Rating:         in.Rating,
		ReleaseDate:    in.ReleaseDate,
		Specifications: in.Specifications,
	}
}
