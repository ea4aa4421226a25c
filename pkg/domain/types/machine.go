package types

// MachineType is the device class reported by the activation telemetry
type MachineType string

const (
	MachineTypeWindows MachineType = "Windows"
	MachineTypeMac     MachineType = "Mac"
	MachineTypeMobile  MachineType = "Mobile"
	MachineTypeTablet  MachineType = "Tablet"
	MachineTypeIOS     MachineType = "iOS"
	MachineTypeAndroid MachineType = "Android"
	MachineTypeUnknown MachineType = "Unknown"
)

// MachineTypeFromCode maps the upstream numeric MachineType. Unlisted codes are Unknown.
func MachineTypeFromCode(code int) MachineType {
	switch code {
	case 1:
		return MachineTypeWindows
	case 2:
		return MachineTypeMac
	case 3:
		return MachineTypeMobile
	case 4:
		return MachineTypeTablet
	case 5:
		return MachineTypeIOS
	case 6:
		return MachineTypeAndroid
	default:
		return MachineTypeUnknown
	}
}

// String returns the string representation of the machine type
func (t MachineType) String() string {
	return string(t)
}

// IsValid checks if the machine type is one of the known values
func (t MachineType) IsValid() bool {
	switch t {
	case MachineTypeWindows, MachineTypeMac, MachineTypeMobile, MachineTypeTablet,
		MachineTypeIOS, MachineTypeAndroid, MachineTypeUnknown:
		return true
	default:
		return false
	}
}

// LicenseStatus is the activation state of one machine
type LicenseStatus string

const (
	LicenseStatusActivated    LicenseStatus = "Activated"
	LicenseStatusNotActivated LicenseStatus = "NotActivated"
	LicenseStatusUnknown      LicenseStatus = "Unknown"
)

// LicenseStatusFromCode maps the upstream numeric LicenseStatus
func LicenseStatusFromCode(code int) LicenseStatus {
	switch code {
	case 0:
		return LicenseStatusNotActivated
	case 1:
		return LicenseStatusActivated
	default:
		return LicenseStatusUnknown
	}
}

// String returns the string representation of the license status
func (s LicenseStatus) String() string {
	return string(s)
}

// IsActivated reports whether the machine holds an active license
func (s LicenseStatus) IsActivated() bool {
	return s == LicenseStatusActivated
}
