package model

import "github.com/secmon-lab/o365ops/pkg/domain/types"

// UserRecord is a normalized directory entry
type UserRecord struct {
	ObjectID          types.ObjectID `json:"object_id"`
	DisplayName       string         `json:"display_name"`
	UserPrincipalName string         `json:"user_principal_name"`
	Email             string         `json:"email"`
	Licenses          string         `json:"licenses"`
	HasLicense        bool           `json:"has_license"`
	SigninStatus      string         `json:"signin_status"`
	CreatedTime       string         `json:"created_time"`
	UsageLocation     string         `json:"usage_location"`
	FirstName         string         `json:"first_name"`
	LastName          string         `json:"last_name"`
	JobTitle          string         `json:"job_title"`
	Department        string         `json:"department"`
	MobilePhone       string         `json:"mobile_phone"`
	BusinessPhones    string         `json:"business_phones"`
}

// UserPage is one upstream listing response
type UserPage struct {
	Users      []UserRecord `json:"users"`
	TotalCount int          `json:"total_count"`
	IsLastPage bool         `json:"is_last_page"`
}

// CreatedUser is the result of a successful account creation
type CreatedUser struct {
	Username          string         `json:"username"`
	UserPrincipalName string         `json:"user_principal_name"`
	DisplayName       string         `json:"display_name"`
	ObjectID          types.ObjectID `json:"object_id"`
	Password          string         `json:"password"`
	Licenses          []string       `json:"licenses"`
	LicensesInfo      string         `json:"licenses_info"`
}

// AssignedLicense is the SKU granted by a license assignment
type AssignedLicense struct {
	SkuID         string `json:"sku_id"`
	SkuPartNumber string `json:"sku_part_number"`
}

// UserCreation bundles account creation with the optional follow-up license assignment
type UserCreation struct {
	User    *CreatedUser     `json:"user"`
	License *AssignedLicense `json:"license,omitempty"`
	// LicenseError is set when the follow-up assignment failed; the account still exists.
	LicenseError *Failure `json:"license_error,omitempty"`
}
