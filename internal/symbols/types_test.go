package symbols

import "testing"

func TestCapabilities(t *testing.T) {
	cases := []struct {
		typ  Type
		want Flags
	}{
		{TypeBool, CapArithmetic},
		{TypeInt, CapArithmetic},
		{TypeString, 0},
		{TypeObject, 0},
		{TypeError, 0},
	}
	for _, c := range cases {
		if got := c.typ.Capabilities(); got != c.want {
			t.Errorf("%s.Capabilities() = %d, want %d", c.typ, got, c.want)
		}
	}
}

func TestPromotion(t *testing.T) {
	cases := []struct {
		left, right Type
		additive    bool
		want        Type
	}{
		{TypeInt, TypeInt, false, TypeInt},
		{TypeBool, TypeBool, false, TypeBool},
		{TypeBool, TypeInt, false, TypeInt},
		{TypeInt, TypeBool, false, TypeInt},
		{TypeString, TypeInt, true, TypeString},
		{TypeInt, TypeString, true, TypeString},
		{TypeString, TypeInt, false, TypeError},
		{TypeObject, TypeInt, false, TypeError},
	}
	for _, c := range cases {
		if got := Promotion(c.left, c.right, c.additive); got != c.want {
			t.Errorf("Promotion(%s, %s, %v) = %s, want %s", c.left, c.right, c.additive, got, c.want)
		}
	}
}
