package adminapi

import (
	"encoding/json"

	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

const unknownValue = "Unknown"

type officeInstallsResponse struct {
	SoftwareMachineDetails []struct {
		MachineDetails struct {
			ActiveComputers flexInt           `json:"ActiveComputers"`
			TotalComputers  flexInt           `json:"TotalComputers"`
			ActiveDevices   flexInt           `json:"ActiveDevices"`
			TotalDevices    flexInt           `json:"TotalDevices"`
			Machines        []upstreamMachine `json:"Machines"`
		} `json:"MachineDetails"`
	} `json:"SoftwareMachineDetails"`
}

type upstreamMachine struct {
	MachineName              *flexString `json:"MachineName"`
	MachineOS                *flexString `json:"MachineOs"`
	MachineType              flexInt     `json:"MachineType"`
	LicenseStatus            flexInt     `json:"LicenseStatus"`
	LastLicenseRequestedDate flexString  `json:"LastLicenseRequestedDate"`
	OfficeMajorVersion       flexInt     `json:"OfficeMajorVersion"`
}

// ParseActivation flattens an officeInstalls payload. Only the first software entry is read.
// ok is false when the payload could not be decoded; the zero record is returned in that case.
func ParseActivation(raw json.RawMessage) (model.ActivationRecord, bool) {
	var resp officeInstallsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.EmptyActivation(), false
	}
	if len(resp.SoftwareMachineDetails) == 0 {
		return model.EmptyActivation(), true
	}

	details := resp.SoftwareMachineDetails[0].MachineDetails
	record := model.ActivationRecord{
		ActiveComputers: int(details.ActiveComputers),
		TotalComputers:  int(details.TotalComputers),
		ActiveDevices:   int(details.ActiveDevices),
		TotalDevices:    int(details.TotalDevices),
		Machines:        make([]model.MachineRecord, 0, len(details.Machines)),
	}

	for _, m := range details.Machines {
		typeCode := int(m.MachineType)
		statusCode := int(m.LicenseStatus)
		record.Machines = append(record.Machines, model.MachineRecord{
			MachineName:          orUnknown(m.MachineName),
			MachineOS:            orUnknown(m.MachineOS),
			MachineType:          types.MachineTypeFromCode(typeCode),
			MachineTypeCode:      typeCode,
			LicenseStatus:        types.LicenseStatusFromCode(statusCode),
			LicenseStatusCode:    statusCode,
			LastLicenseRequested: string(m.LastLicenseRequestedDate),
			OfficeVersion:        int(m.OfficeMajorVersion),
		})
	}
	return record, true
}

func orUnknown(v *flexString) string {
	if v == nil {
		return unknownValue
	}
	return string(*v)
}
