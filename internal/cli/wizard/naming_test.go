package wizard

import (
	"strings"
	"testing"
)

func TestDeriveProjectName(t *testing.T) {
	tests := []struct {
		name      string
		workspace string
		namespace string
		want      string
	}{
		{"single_word", "orders", "CarMax", "CarMax.Orders"},
		{"spaces", "order  service", "CarMax", "CarMax.Order.Service"},
		{"mixed_case", "ORDER Service", "CarMax", "CarMax.Order.Service"},
		{"lower_cases_inner_capitals", "McDonald api", "CarMax", "CarMax.Mcdonald.Api"},
		{"hyphenated", "my-app", "CarMax", "CarMax.My-app"},
		{"underscore", "orders_api", "CarMax", "CarMax.Orders_api"},
		{"dotted", "my.app", "CarMax", "CarMax.My.app"},
		{"already_prefixed", "CarMax.Orders", "CarMax", "CarMax.Orders"},
		{"prefixed_other_case", "carmax.orders", "CarMax", "CarMax.Orders"},
		{"prefixed_with_space", "carmax orders", "CarMax", "CarMax.Orders"},
		{"namespace_only", "carmax", "CarMax", "CarMax"},
		{"namespace_with_dot", "carmax.", "CarMax", "CarMax"},
		{"dotted_namespace", "carmax.platform.orders", "CarMax.Platform", "CarMax.Platform.Orders"},
		{"empty_workspace", "", "CarMax", "CarMax"},
		{"whitespace_workspace", "   ", "CarMax", "CarMax"},
		{"no_namespace", "order service", "", "Order.Service"},
		{"non_ascii", "élan app", "CarMax", "CarMax.Élan.App"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveProjectName(tt.workspace, tt.namespace)
			if got != tt.want {
				t.Errorf("DeriveProjectName(%q, %q) = %q, want %q", tt.workspace, tt.namespace, got, tt.want)
			}
		})
	}
}

func TestDeriveProjectNameIdempotent(t *testing.T) {
	inputs := []string{"orders", "CarMax.Orders", "my-app", "orders_api", "my.app", ""}

	for _, in := range inputs {
		once := DeriveProjectName(in, "CarMax")
		twice := DeriveProjectName(once, "CarMax")
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDeriveProjectNameNeverDoublesPrefix(t *testing.T) {
	inputs := []string{"order service", "CARMAX carmax", "my App.core", "CarMax CarMax.Orders"}

	for _, in := range inputs {
		once := DeriveProjectName(in, "CarMax")
		twice := DeriveProjectName(once, "CarMax")
		if !strings.EqualFold(once, twice) {
			t.Errorf("re-deriving %q changed more than case: %q then %q", in, once, twice)
		}
	}
}
