package model

import (
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// ActivationRecord is the flattened activation telemetry of one user
type ActivationRecord struct {
	ActiveComputers int             `json:"active_computers"`
	TotalComputers  int             `json:"total_computers"`
	ActiveDevices   int             `json:"active_devices"`
	TotalDevices    int             `json:"total_devices"`
	Machines        []MachineRecord `json:"machines"`
}

// MachineRecord is one device entry of the activation telemetry
type MachineRecord struct {
	MachineName          string              `json:"machine_name"`
	MachineOS            string              `json:"machine_os"`
	MachineType          types.MachineType   `json:"machine_type"`
	MachineTypeCode      int                 `json:"machine_type_code"`
	LicenseStatus        types.LicenseStatus `json:"license_status"`
	LicenseStatusCode    int                 `json:"license_status_code"`
	LastLicenseRequested string              `json:"last_license_requested"`
	OfficeVersion        int                 `json:"office_version"`
}

// EmptyActivation returns the all-zero record with an empty machine list
func EmptyActivation() ActivationRecord {
	return ActivationRecord{Machines: []MachineRecord{}}
}

// HasSignal reports whether the record carries any activation signal
func (a ActivationRecord) HasSignal() bool {
	return a.ActiveComputers > 0 || a.ActiveDevices > 0 || len(a.Machines) > 0
}

// UserActivation pairs a directory user with its activation telemetry
type UserActivation struct {
	User       UserRecord       `json:"user_info"`
	Activation ActivationRecord `json:"activation_info"`
}

// BatchActivation is the result of querying activation for every user of a subscription
type BatchActivation struct {
	SubscriptionName    string           `json:"subscription_name"`
	TotalUsers          int              `json:"total_users"`
	UsersWithActivation []UserActivation `json:"users_with_activation"`
}

// UsersWithActivationCount returns the number of users that reported a signal
func (b *BatchActivation) UsersWithActivationCount() int {
	return len(b.UsersWithActivation)
}
