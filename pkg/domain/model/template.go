package model

import (
	"encoding/json"
	"strings"
)

// DefaultDomain is used for new accounts when the captured template carries no UPN domain
const DefaultDomain = "dfem.net"

// DefaultUsageLocation applies when the captured template does not name one
const DefaultUsageLocation = "CN"

// CreateUserTemplate is the request body recovered from a captured account-creation request.
// Only used as a source of default field values; Products and AdminRoles pass through verbatim.
type CreateUserTemplate struct {
	FirstName               string            `json:"FirstName"`
	LastName                string            `json:"LastName"`
	DisplayName             string            `json:"DisplayName"`
	UserPrincipalName       string            `json:"UserPrincipalName"`
	JobTitle                string            `json:"JobTitle"`
	Department              string            `json:"Department"`
	Office                  string            `json:"Office"`
	OfficePhone             string            `json:"OfficePhone"`
	MobilePhone             string            `json:"MobilePhone"`
	FaxNumber               string            `json:"FaxNumber"`
	StreetAddress           string            `json:"StreetAddress"`
	City                    string            `json:"City"`
	StateProvince           string            `json:"StateProvince"`
	ZipOrPostalCode         string            `json:"ZipOrPostalCode"`
	CountryRegion           string            `json:"CountryRegion"`
	UsageLocation           string            `json:"UsageLocation"`
	CreateUserWithNoLicense bool              `json:"CreateUserWithNoLicense"`
	Products                []json.RawMessage `json:"Products"`
	AdminRoles              []json.RawMessage `json:"AdminRoles"`
}

// Domain returns the mail domain of the template's UserPrincipalName
func (t *CreateUserTemplate) Domain() string {
	parts := strings.Split(t.UserPrincipalName, "@")
	if len(parts) < 2 {
		return DefaultDomain
	}
	return parts[1]
}

// EffectiveUsageLocation returns UsageLocation or the default
func (t *CreateUserTemplate) EffectiveUsageLocation() string {
	if t.UsageLocation == "" {
		return DefaultUsageLocation
	}
	return t.UsageLocation
}

// LicenseNames lists the product names granted by the template, in template order.
// Non-object entries are skipped.
func (t *CreateUserTemplate) LicenseNames() []string {
	names := make([]string, 0, len(t.Products))
	for _, raw := range t.Products {
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var product struct {
			SkuPartNumber *string `json:"SkuPartNumber"`
			ProductSkuID  string  `json:"ProductSkuId"`
		}
		if err := json.Unmarshal(raw, &product); err != nil {
			continue
		}
		if product.SkuPartNumber != nil {
			names = append(names, *product.SkuPartNumber)
		} else {
			names = append(names, product.ProductSkuID)
		}
	}
	return names
}
