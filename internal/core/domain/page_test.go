package domain

import "testing"

func TestSortSpec_ToggleSameKeyFlipsDirection(t *testing.T) {
	s := SortSpec{Key: "name"}

	s = s.Toggle("name")
	if s.Key != "name" || !s.Desc {
		t.Fatalf("expected name desc, got %+v", s)
	}

	s = s.Toggle("name")
	if s.Key != "name" || s.Desc {
		t.Fatalf("expected name asc, got %+v", s)
	}
}

func TestSortSpec_ToggleDifferentKeyResetsAscending(t *testing.T) {
	s := SortSpec{Key: "name", Desc: false}

	s = s.Toggle("email")
	if s.Key != "email" || s.Desc {
		t.Fatalf("expected email asc, got %+v", s)
	}
}

func TestSortSpec_Order(t *testing.T) {
	if (SortSpec{Key: "x"}).Order() != "asc" {
		t.Fatalf("expected asc")
	}
	if (SortSpec{Key: "x", Desc: true}).Order() != "desc" {
		t.Fatalf("expected desc")
	}
}

func TestSession_Authenticated(t *testing.T) {
	var nilSession *Session
	if nilSession.Authenticated() {
		t.Fatalf("nil session must not be authenticated")
	}
	if (&Session{Token: "tok"}).Authenticated() {
		t.Fatalf("token without user must not be authenticated")
	}
	if (&Session{User: &User{ID: 1}}).Authenticated() {
		t.Fatalf("user without token must not be authenticated")
	}
	if !(&Session{User: &User{ID: 1}, Token: "tok"}).Authenticated() {
		t.Fatalf("user plus token must be authenticated")
	}
}

func TestBoolFlag_UnmarshalVariants(t *testing.T) {
	cases := map[string]bool{
		`1`:       true,
		`0`:       false,
		`"1"`:     true,
		`"0"`:     false,
		`true`:    true,
		`false`:   false,
		`null`:    false,
	}
	for input, want := range cases {
		var f BoolFlag
		if err := f.UnmarshalJSON([]byte(input)); err != nil {
			t.Fatalf("unmarshal %s: %v", input, err)
		}
		if f.Bool() != want {
			t.Fatalf("unmarshal %s: expected %v, got %v", input, want, f.Bool())
		}
	}
}

func TestBoolFlag_MarshalAsInt(t *testing.T) {
	b, err := BoolFlag(true).MarshalJSON()
	if err != nil || string(b) != "1" {
		t.Fatalf("expected 1, got %s (%v)", b, err)
	}
	b, err = BoolFlag(false).MarshalJSON()
	if err != nil || string(b) != "0" {
		t.Fatalf("expected 0, got %s (%v)", b, err)
	}
}
