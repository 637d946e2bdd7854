package digits

import "testing"

func TestToPersian(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "year", input: "1403", want: "۱۴۰۳"},
		{name: "all digits", input: "0123456789", want: "۰۱۲۳۴۵۶۷۸۹"},
		{name: "date", input: "1403/10/15", want: "۱۴۰۳/۱۰/۱۵"},
		{name: "decimal separator", input: "3٫5", want: "۳،۵"},
		{name: "letters pass through", input: "Dey 5", want: "Dey ۵"},
		{name: "persian text", input: "دی", want: "دی"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPersian(tt.input); got != tt.want {
				t.Fatalf("ToPersian(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPersianIdempotent(t *testing.T) {
	inputs := []string{"", "1403-10-15", "3٫14", "abc", "۱۲۳"}
	for _, in := range inputs {
		once := ToPersian(in)
		if twice := ToPersian(once); twice != once {
			t.Fatalf("ToPersian not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestToPersianIdentityWithoutDigits(t *testing.T) {
	inputs := []string{"hello, world", "فروردین", "--", " \t"}
	for _, in := range inputs {
		if got := ToPersian(in); got != in {
			t.Fatalf("expected %q unchanged, got %q", in, got)
		}
	}
}

func TestToASCII(t *testing.T) {
	if got := ToASCII("۱۴۰۳-۱۰-۱۵"); got != "1403-10-15" {
		t.Fatalf("persian digits: got %q", got)
	}
	if got := ToASCII("٢٠٢٥"); got != "2025" {
		t.Fatalf("arabic-indic digits: got %q", got)
	}
	if got := ToASCII(ToPersian("0987654321")); got != "0987654321" {
		t.Fatalf("round trip: got %q", got)
	}
}

func TestFormatter(t *testing.T) {
	f, ok := ParseFormatter("ascii")
	if !ok || f != ASCII {
		t.Fatalf("expected ascii formatter, got %v ok=%v", f, ok)
	}
	if got := f.Itoa(1403); got != "1403" {
		t.Fatalf("ascii Itoa = %q", got)
	}

	f, ok = ParseFormatter("")
	if !ok || f != Persian {
		t.Fatalf("expected default persian formatter, got %v ok=%v", f, ok)
	}
	if got := f.Itoa(29); got != "۲۹" {
		t.Fatalf("persian Itoa = %q", got)
	}

	if _, ok := ParseFormatter("roman"); ok {
		t.Fatalf("expected unknown formatter to be rejected")
	}
}
