package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
)

// Snapshot is the slice of product state an order message embeds. Orders are
// never persisted; the message is the whole artifact.
type Snapshot struct {
	Name  string
	Price int64
}

// Validate checks the required buyer fields and returns one entry per
// missing field. Field-level presence is the only rule; phone and address
// formats are not checked.
func Validate(req dto.OrderRequest) []response.ValidationError {
	var verrs []response.ValidationError

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"wilaya", req.Wilaya},
		{"commune", req.Commune},
		{"address", req.Address},
		{"size", req.Size},
		{"color", req.Color},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verrs = append(verrs, response.ValidationError{Field: f.field, Tag: "required"})
		}
	}

	return verrs
}

// Compose renders the fixed-format order message and wraps it in a wa.me
// deep link targeting the shop's number. Opening the link is the sole
// dispatch mechanism.
func Compose(product Snapshot, req dto.OrderRequest, shopNumber string) (string, error) {
	if shopNumber == "" {
		return "", errs.ErrInternalServer
	}

	msg := fmt.Sprintf(
		"New order\n"+
			"Product: %s\n"+
			"Price: %d DA\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Wilaya: %s\n"+
			"Commune: %s\n"+
			"Address: %s\n"+
			"Size: %s\n"+
			"Color: %s",
		product.Name, product.Price,
		req.Name, req.Phone, req.Wilaya, req.Commune, req.Address, req.Size, req.Color,
	)

	link := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + shopNumber,
	}
	q := link.Query()
	q.Set("text", msg)
	link.RawQuery = q.Encode()

	return link.String(), nil
}
