package listings

import (
	"fmt"
	"strings"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

const (
	minCarYear     = 2010
	maxCarYear     = 2026
	minAskingPrice = 10000

	minPartsTitleLen = 5
	maxPartsTitleLen = 100
	minPartsDescLen  = 10
	maxPartsDescLen  = 1000
)

// validateCar checks every car field and reports all failures at once.
func validateCar(req CreateCarRequest) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Variant)) < 2 {
		fields["variant"] = "must be at least 2 characters"
	}
	if req.Year < minCarYear || req.Year > maxCarYear {
		fields["year"] = fmt.Sprintf("must be between %d and %d", minCarYear, maxCarYear)
	}
	if req.Kilometers < 0 {
		fields["kilometers"] = "must be zero or positive"
	}
	if len(strings.TrimSpace(req.RegistrationNumber)) < 4 {
		fields["registration_number"] = "must be at least 4 characters"
	}
	if _, err := enums.ParseOwnership(req.Ownership); err != nil {
		fields["ownership"] = "must be FIRST, SECOND, or THIRD_PLUS"
	}
	if req.AskingPrice < minAskingPrice {
		fields["asking_price"] = fmt.Sprintf("must be at least %d", minAskingPrice)
	}
	if len(strings.TrimSpace(req.City)) < 2 {
		fields["city"] = "must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.State)) < 2 {
		fields["state"] = "must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.Description)) < 10 {
		fields["description"] = "must be at least 10 characters"
	}
	if len(nonEmptyImages(req.Images)) == 0 {
		fields["images"] = "at least one image is required"
	}

	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return nil
}

// validateParts checks every parts field and reports all failures at once.
func validateParts(req CreatePartsRequest) error {
	fields := map[string]string{}

	title := strings.TrimSpace(req.Title)
	if len(title) < minPartsTitleLen || len(title) > maxPartsTitleLen {
		fields["title"] = fmt.Sprintf("must be between %d and %d characters", minPartsTitleLen, maxPartsTitleLen)
	}
	if _, err := enums.ParsePartsCategory(req.Category); err != nil {
		fields["category"] = "must be a valid parts category"
	}
	desc := strings.TrimSpace(req.Description)
	if len(desc) < minPartsDescLen || len(desc) > maxPartsDescLen {
		fields["description"] = fmt.Sprintf("must be between %d and %d characters", minPartsDescLen, maxPartsDescLen)
	}
	if req.Price < 0 {
		fields["price"] = "must be zero or positive"
	}
	if len(strings.TrimSpace(req.City)) < 2 {
		fields["city"] = "must be at least 2 characters"
	}
	if req.ContactPreference != "" {
		if _, err := enums.ParseContactPreference(req.ContactPreference); err != nil {
			fields["contact_preference"] = "must be PHONE, EMAIL, or WHATSAPP"
		}
	}
	if len(nonEmptyImages(req.Images)) == 0 {
		fields["images"] = "at least one image is required"
	}

	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return nil
}

func nonEmptyImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) != "" {
			out = append(out, strings.TrimSpace(img))
		}
	}
	return out
}
