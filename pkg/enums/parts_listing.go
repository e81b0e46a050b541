package enums

import "fmt"

// PartsStatus is the availability status of a parts listing. Parts have no
// moderation step; they are published directly as AVAILABLE.
type PartsStatus string

const (
	PartsStatusAvailable PartsStatus = "AVAILABLE"
	PartsStatusSold      PartsStatus = "SOLD"
	PartsStatusExpired   PartsStatus = "EXPIRED"
)

var validPartsStatuses = []PartsStatus{
	PartsStatusAvailable,
	PartsStatusSold,
	PartsStatusExpired,
}

// String implements fmt.Stringer.
func (s PartsStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PartsStatus.
func (s PartsStatus) IsValid() bool {
	for _, candidate := range validPartsStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePartsStatus converts raw input into a PartsStatus.
func ParsePartsStatus(value string) (PartsStatus, error) {
	for _, candidate := range validPartsStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid parts status %q", value)
}

// PartsCategory tags a parts listing for catalog filtering.
type PartsCategory string

const (
	PartsCategoryEngine      PartsCategory = "ENGINE_PARTS"
	PartsCategoryBody        PartsCategory = "BODY_PARTS"
	PartsCategoryInterior    PartsCategory = "INTERIOR"
	PartsCategoryElectronics PartsCategory = "ELECTRONICS"
	PartsCategoryWheelsTires PartsCategory = "WHEELS_TIRES"
	PartsCategoryOther       PartsCategory = "OTHER"
)

var validPartsCategories = []PartsCategory{
	PartsCategoryEngine,
	PartsCategoryBody,
	PartsCategoryInterior,
	PartsCategoryElectronics,
	PartsCategoryWheelsTires,
	PartsCategoryOther,
}

// String implements fmt.Stringer.
func (c PartsCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known PartsCategory.
func (c PartsCategory) IsValid() bool {
	for _, candidate := range validPartsCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParsePartsCategory converts raw input into a PartsCategory.
func ParsePartsCategory(value string) (PartsCategory, error) {
	for _, candidate := range validPartsCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid parts category %q", value)
}

// ContactPreference is how a parts seller wants to be reached.
type ContactPreference string

const (
	ContactPreferencePhone    ContactPreference = "PHONE"
	ContactPreferenceEmail    ContactPreference = "EMAIL"
	ContactPreferenceWhatsApp ContactPreference = "WHATSAPP"
)

var validContactPreferences = []ContactPreference{
	ContactPreferencePhone,
	ContactPreferenceEmail,
	ContactPreferenceWhatsApp,
}

// String implements fmt.Stringer.
func (c ContactPreference) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContactPreference.
func (c ContactPreference) IsValid() bool {
	for _, candidate := range validContactPreferences {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactPreference converts raw input into a ContactPreference.
func ParseContactPreference(value string) (ContactPreference, error) {
	for _, candidate := range validContactPreferences {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact preference %q", value)
}
