package adminapi_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/service/adminapi"
)

func TestParseActivation(t *testing.T) {
	t.Run("reads first software entry", func(t *testing.T) {
		raw := json.RawMessage(`{
			"SoftwareMachineDetails": [
				{"MachineDetails": {
					"ActiveComputers": 1, "TotalComputers": 5, "ActiveDevices": 2, "TotalDevices": 5,
					"Machines": [
						{"MachineName":"PC-1","MachineOs":"Windows 11","MachineType":1,"LicenseStatus":1,"LastLicenseRequestedDate":"2024-05-01T10:20:30Z","OfficeMajorVersion":16},
						{"MachineType":9,"LicenseStatus":7}
					]
				}},
				{"MachineDetails": {"ActiveComputers": 99}}
			]
		}`)

		record, ok := adminapi.ParseActivation(raw)
		gt.True(t, ok)
		gt.Equal(t, record.ActiveComputers, 1)
		gt.Equal(t, record.TotalComputers, 5)
		gt.Equal(t, record.ActiveDevices, 2)
		gt.Equal(t, len(record.Machines), 2)

		first := record.Machines[0]
		gt.Equal(t, first.MachineName, "PC-1")
		gt.Equal(t, first.MachineType, types.MachineTypeWindows)
		gt.Equal(t, first.LicenseStatus, types.LicenseStatusActivated)
		gt.Equal(t, first.OfficeVersion, 16)

		second := record.Machines[1]
		gt.Equal(t, second.MachineName, "Unknown")
		gt.Equal(t, second.MachineType, types.MachineTypeUnknown)
		gt.Equal(t, second.MachineTypeCode, 9)
		gt.Equal(t, second.LicenseStatus, types.LicenseStatusUnknown)
	})

	t.Run("empty details is zero record", func(t *testing.T) {
		record, ok := adminapi.ParseActivation(json.RawMessage(`{}`))
		gt.True(t, ok)
		gt.Equal(t, record.ActiveComputers, 0)
		gt.V(t, record.Machines).NotNil()
		gt.Equal(t, len(record.Machines), 0)
	})

	t.Run("numeric strings are accepted", func(t *testing.T) {
		raw := json.RawMessage(`{"SoftwareMachineDetails":[{"MachineDetails":{"ActiveComputers":"3","Machines":[]}}]}`)
		record, ok := adminapi.ParseActivation(raw)
		gt.True(t, ok)
		gt.Equal(t, record.ActiveComputers, 3)
	})

	t.Run("malformed payload falls back", func(t *testing.T) {
		record, ok := adminapi.ParseActivation(json.RawMessage(`{"SoftwareMachineDetails":"oops"}`))
		gt.False(t, ok)
		gt.False(t, record.HasSignal())
	})
}
