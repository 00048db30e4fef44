package planner

import "testing"

func TestApartmentCarveOut(t *testing.T) {
	if !IsStay("apartment") {
		t.Error("IsStay(apartment) = false, want true")
	}
	if IsAttraction("apartment") {
		t.Error("IsAttraction(apartment) = true, want false")
	}

	// "art_apartment" contains the attraction keyword "art" and must still
	// be excluded.
	if IsAttraction("art_apartment") {
		t.Error("IsAttraction(art_apartment) = true, want false")
	}
	if !IsExcludedAsAttraction("art_apartment") {
		t.Error("IsExcludedAsAttraction(art_apartment) = false, want true")
	}
}

func TestRoleChecks(t *testing.T) {
	tests := []struct {
		tag        string
		stay       bool
		meal       bool
		attraction bool
	}{
		{"hotel", true, false, false},
		{"guest_house", true, false, false},
		{"museum", false, false, true},
		{"theme_park", false, false, true},
		{"fast_food", false, true, false},
		{"pub", false, true, false},
		{"food_court", false, true, false},
		{"parking", false, false, false},
		{"PLACE_OF_WORSHIP", false, false, true}, // case-insensitive
	}

	for _, tt := range tests {
		if got := IsStay(tt.tag); got != tt.stay {
			t.Errorf("IsStay(%q) = %v, want %v", tt.tag, got, tt.stay)
		}
		if got := IsMeal(tt.tag); got != tt.meal {
			t.Errorf("IsMeal(%q) = %v, want %v", tt.tag, got, tt.meal)
		}
		if got := IsAttraction(tt.tag); got != tt.attraction {
			t.Errorf("IsAttraction(%q) = %v, want %v", tt.tag, got, tt.attraction)
		}
	}
}

func TestClassify(t *testing.T) {
	if got := Classify("hostel"); got != RoleStay {
		t.Errorf("Classify(hostel) = %v, want RoleStay", got)
	}
	if got := Classify("bakery"); got != RoleMeal {
		t.Errorf("Classify(bakery) = %v, want RoleMeal", got)
	}
	if got := Classify("aquarium"); got != RoleAttraction {
		t.Errorf("Classify(aquarium) = %v, want RoleAttraction", got)
	}
	if got := Classify("fuel"); got != RoleUnclassified {
		t.Errorf("Classify(fuel) = %v, want RoleUnclassified", got)
	}
}

func TestDisplayCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"fast_food", "Fast Food"},
		{"guest_house", "Guest House"},
		{"museum", "Museum"},
		{"place_of_worship", "Place Of Worship"},
	}
	for _, tt := range tests {
		if got := DisplayCategory(tt.tag); got != tt.want {
			t.Errorf("DisplayCategory(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
