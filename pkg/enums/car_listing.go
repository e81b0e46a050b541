package enums

import "fmt"

// CarStatus is the availability status of a car listing, distinct from its
// moderation state.
type CarStatus string

const (
	CarStatusPending  CarStatus = "PENDING"
	CarStatusActive   CarStatus = "ACTIVE"
	CarStatusRejected CarStatus = "REJECTED"
	CarStatusExpired  CarStatus = "EXPIRED"
)

var validCarStatuses = []CarStatus{
	CarStatusPending,
	CarStatusActive,
	CarStatusRejected,
	CarStatusExpired,
}

// String implements fmt.Stringer.
func (s CarStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CarStatus.
func (s CarStatus) IsValid() bool {
	for _, candidate := range validCarStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCarStatus converts raw input into a CarStatus.
func ParseCarStatus(value string) (CarStatus, error) {
	for _, candidate := range validCarStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car status %q", value)
}

// SubmissionStatus is the moderation state of a car listing.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

var validSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusPending,
	SubmissionStatusApproved,
	SubmissionStatusRejected,
}

// String implements fmt.Stringer.
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubmissionStatus.
func (s SubmissionStatus) IsValid() bool {
	for _, candidate := range validSubmissionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the moderation state admits no further transition.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// ParseSubmissionStatus converts raw input into a SubmissionStatus.
func ParseSubmissionStatus(value string) (SubmissionStatus, error) {
	for _, candidate := range validSubmissionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid submission status %q", value)
}

// Ownership counts how many owners a car has had.
type Ownership string

const (
	OwnershipFirst     Ownership = "FIRST"
	OwnershipSecond    Ownership = "SECOND"
	OwnershipThirdPlus Ownership = "THIRD_PLUS"
)

var validOwnerships = []Ownership{
	OwnershipFirst,
	OwnershipSecond,
	OwnershipThirdPlus,
}

// String implements fmt.Stringer.
func (o Ownership) String() string {
	return string(o)
}

// IsValid reports whether the value is a known Ownership.
func (o Ownership) IsValid() bool {
	for _, candidate := range validOwnerships {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOwnership converts raw input into an Ownership.
func ParseOwnership(value string) (Ownership, error) {
	for _, candidate := range validOwnerships {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ownership %q", value)
}

// CarModel is the club's supported variants.
type CarModel string

const (
	CarModelGTTSI CarModel = "GT_TSI"
	CarModelGTTDI CarModel = "GT_TDI"
)

var validCarModels = []CarModel{
	CarModelGTTSI,
	CarModelGTTDI,
}

// String implements fmt.Stringer.
func (m CarModel) String() string {
	return string(m)
}

// IsValid reports whether the value is a known CarModel.
func (m CarModel) IsValid() bool {
	for _, candidate := range validCarModels {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseCarModel converts raw input into a CarModel.
func ParseCarModel(value string) (CarModel, error) {
	for _, candidate := range validCarModels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car model %q", value)
}
