package domain

import "time"

// ApplicationStatus is the review state of an application. Any value may be
// written by the reviewing broker; no transition table is enforced.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusUnderReview, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}

	return false
}

// ApplicationType distinguishes rental from purchase applications.
type ApplicationType string

const (
	ApplicationTypeRental   ApplicationType = "rental"
	ApplicationTypePurchase ApplicationType = "purchase"
)

// Valid reports whether t is a known application type.
func (t ApplicationType) Valid() bool {
	return t == ApplicationTypeRental || t == ApplicationTypePurchase
}

// Employment carries the applicant's employment disclosure.
type Employment struct {
	Employer      string `json:"employer"`
	Position      string `json:"position"`
	YearsEmployed int    `json:"yearsEmployed"`
}

// Document is a supporting file attached to an application.
type Document struct {
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	AssetID    string    `json:"externalAssetId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Application is a client's request to rent or purchase a unit.
type Application struct {
	ID          ApplicationID `json:"id"`
	ApplicantID UserID        `json:"applicantId"`
	PropertyID  PropertyID    `json:"propertyId"`

	Status        ApplicationStatus `json:"status"`
	Type          ApplicationType   `json:"applicationType"`
	MonthlyIncome float64           `json:"monthlyIncome"`
	Employment    Employment        `json:"employment"`
	Notes         string            `json:"notes"`
	// Documents is append-only.
	Documents []Document `json:"documents"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
