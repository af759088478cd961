package models

import "testing"

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{AdRequestStatusPending, AdRequestStatusAccepted, true},
		{AdRequestStatusPending, AdRequestStatusRejected, true},

		// Terminal states never move again
		{AdRequestStatusAccepted, AdRequestStatusRejected, false},
		{AdRequestStatusAccepted, AdRequestStatusPending, false},
		{AdRequestStatusRejected, AdRequestStatusAccepted, false},
		{AdRequestStatusRejected, AdRequestStatusPending, false},

		// No self-loops or unknown states
		{AdRequestStatusPending, AdRequestStatusPending, false},
		{"nonexistent", AdRequestStatusAccepted, false},
		{AdRequestStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		AdRequestStatusPending, AdRequestStatusAccepted, AdRequestStatusRejected,
	}

	for _, status := range allStatuses {
		if _, ok := ValidAdRequestTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidAdRequestTransitions map", status)
		}
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{AdRequestStatusAccepted, AdRequestStatusRejected}
	for _, status := range terminal {
		transitions := ValidAdRequestTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RoleSponsor) || !IsValidRole(RoleInfluencer) {
		t.Error("sponsor and influencer must be valid roles")
	}
	for _, r := range []string{"admin", "", "Sponsor", "INFLUENCER"} {
		if IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = true, want false", r)
		}
	}
}
