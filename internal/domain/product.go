package domain

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Stock       int
	Sizes       datatypes.JSON
	Colors      datatypes.JSON
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   int64
	UpdatedAt   int64
}

type ProductImage struct {
	ID        int64
	FileName  string
	ProductID int64
	CreatedAt int64
	UpdatedAt int64
}

// SizeList decodes the stored size labels. A missing or malformed column
// decodes to an empty list.
func (p *Product) SizeList() []string {
	return decodeLabels(p.Sizes)
}

// ColorList decodes the stored color labels.
func (p *Product) ColorList() []string {
	return decodeLabels(p.Colors)
}

func decodeLabels(raw datatypes.JSON) []string {
	var labels []string
	if len(raw) == 0 {
		return labels
	}
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil
	}
	return labels
}

func EncodeLabels(labels []string) datatypes.JSON {
	if labels == nil {
		labels = []string{}
	}
	raw, _ := json.Marshal(labels)
	return datatypes.JSON(raw)
}
