package rbac

// Role constants
const (
	RoleSponsor    = "sponsor"
	RoleInfluencer = "influencer"
	RoleAdmin      = "admin"
)

// Permission constants
const (
	PermCreateCampaign    = "create_campaign"
	PermSearchInfluencers = "search_influencers"
	PermCreateAdRequest   = "create_ad_request"
	PermAcceptAdRequest   = "accept_ad_request"
	PermRejectAdRequest   = "reject_ad_request"
	PermViewPlatformData  = "view_platform_data"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	RoleSponsor: {
		PermCreateCampaign, PermSearchInfluencers, PermCreateAdRequest,
	},
	RoleInfluencer: {
		PermAcceptAdRequest, PermRejectAdRequest,
		// Influencers CANNOT: create campaigns or ad requests
	},
	RoleAdmin: {
		PermViewPlatformData,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
