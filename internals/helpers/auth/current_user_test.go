package helperAuth

import (
	"testing"

	"absensiku_backend/internals/constants"
)

func TestCapabilityChecks(t *testing.T) {
	tests := []struct {
		role            string
		canActForOthers bool
		canApprove      bool
		canManage       bool
		canDelete       bool
	}{
		{constants.RoleSiswa, false, false, false, false},
		{constants.RoleGuru, false, false, false, false},
		{constants.RolePetugas, true, true, true, false},
		{constants.RoleAdmin, true, true, true, true},
		{"tamu", false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			cu := CurrentUser{Role: tt.role}
			if got := CanActForOthers(cu); got != tt.canActForOthers {
				t.Errorf("CanActForOthers(%s) = %v, want %v", tt.role, got, tt.canActForOthers)
			}
			if got := CanApproveCorrections(cu); got != tt.canApprove {
				t.Errorf("CanApproveCorrections(%s) = %v, want %v", tt.role, got, tt.canApprove)
			}
			if got := CanManageLocations(cu); got != tt.canManage {
				t.Errorf("CanManageLocations(%s) = %v, want %v", tt.role, got, tt.canManage)
			}
			if got := CanDeleteAttendance(cu); got != tt.canDelete {
				t.Errorf("CanDeleteAttendance(%s) = %v, want %v", tt.role, got, tt.canDelete)
			}
		})
	}
}
