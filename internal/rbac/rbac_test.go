package rbac

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{RoleSponsor, PermCreateCampaign, true},
		{RoleSponsor, PermCreateAdRequest, true},
		{RoleSponsor, PermSearchInfluencers, true},
		{RoleSponsor, PermAcceptAdRequest, false},

		{RoleInfluencer, PermAcceptAdRequest, true},
		{RoleInfluencer, PermRejectAdRequest, true},
		{RoleInfluencer, PermCreateCampaign, false},
		{RoleInfluencer, PermCreateAdRequest, false},

		{RoleAdmin, PermViewPlatformData, true},
		{RoleAdmin, PermCreateCampaign, false},

		{"unknown", PermCreateCampaign, false},
		{"", PermCreateCampaign, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}
