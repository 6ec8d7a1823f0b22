package amount

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    Stroops
		render  string
		wantErr error
	}{
		{name: "seven digits", text: "123.4567891", want: 1234567891, render: "123.4567891"},
		{name: "fewer digits are zero extended", text: "123.45678", want: 1234567800, render: "123.4567800"},
		{name: "integer", text: "20", want: 200000000, render: "20.0000000"},
		{name: "single fractional digit", text: "20.0", want: 200000000, render: "20.0000000"},
		{name: "negative", text: "-1.5", want: -15000000, render: "-1.5000000"},
		{name: "exponent notation", text: "1.5e2", want: 1500000000, render: "150.0000000"},
		{name: "smallest unit", text: "0.0000001", want: 1, render: "0.0000001"},
		{name: "max int64 stroops", text: "922337203685.4775807", want: math.MaxInt64, render: "922337203685.4775807"},
		{name: "eight digits rejected", text: "123.45678901", wantErr: ErrTooManyDecimals},
		{name: "trailing zero still counts as a digit", text: "1.00000000", wantErr: ErrTooManyDecimals},
		{name: "tiny exponent rejected", text: "1e-8", wantErr: ErrTooManyDecimals},
		{name: "garbage", text: "12a", wantErr: ErrInvalidAmount},
		{name: "empty", text: "", wantErr: ErrInvalidAmount},
		{name: "huge exponent", text: "1e100", wantErr: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}
			if got.String() != tt.render {
				t.Fatalf("String() = %q, want %q", got.String(), tt.render)
			}

			stroops, err := got.Stroops()
			if err != nil {
				t.Fatalf("Stroops() error = %v", err)
			}
			if stroops != tt.want {
				t.Fatalf("Stroops() = %d, want %d", stroops, tt.want)
			}
		})
	}
}

func TestOrderingAndEquality(t *testing.T) {
	t.Parallel()

	a1 := MustParse("123.4567891")
	a2 := MustParse("123.4567891")
	a3 := MustParse("123.4567890")

	if !a1.Equal(a2) {
		t.Fatalf("%s != %s", a1, a2)
	}
	if a1.Equal(a3) {
		t.Fatalf("%s == %s", a1, a3)
	}
	if !a3.LessThan(a1) {
		t.Fatalf("%s is not less than %s", a3, a1)
	}
	if got := a1.Cmp(a3); got != 1 {
		t.Fatalf("Cmp() = %d, want 1", got)
	}
	if got := a1.Cmp(a2); got != 0 {
		t.Fatalf("Cmp() = %d, want 0", got)
	}
	if !MustParse("20.0").Equal(MustParse("20.0000000")) {
		t.Fatal("20.0 and 20.0000000 differ")
	}
	if !MustParse("20").Equal(FromStroops(200000000)) {
		t.Fatal("20 and 200000000 stroops differ")
	}
}

func TestStroopsOverflow(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"922337203685.4775808", "-922337203685.4775809"} {
		a, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		if _, err := a.Stroops(); !errors.Is(err, ErrOverflow) {
			t.Fatalf("Stroops() of %s error = %v, want ErrOverflow", text, err)
		}
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var zero Amount
	got, err := zero.Stroops()
	if err != nil {
		t.Fatalf("Stroops() error = %v", err)
	}
	if got != 0 {
		t.Fatalf("Stroops() = %d, want 0", got)
	}
	if zero.String() != "0.0000000" {
		t.Fatalf("String() = %q, want 0.0000000", zero.String())
	}
	if !zero.Equal(FromStroops(0)) || zero.IsPositive() {
		t.Fatal("zero value is not equal to 0 stroops")
	}
}

func TestFromStroopsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []Stroops{0, 1, -1, 1234567800, math.MaxInt64, math.MinInt64} {
		got, err := FromStroops(s).Stroops()
		if err != nil {
			t.Fatalf("Stroops() of %d error = %v", s, err)
		}
		if got != s {
			t.Fatalf("Stroops() = %d, want %d", got, s)
		}
	}
}

func TestRenderParseKeepsValue(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"0", "0.1", "99.9999999", "-42.42", "1000000"} {
		a := MustParse(text)
		back, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", a.String(), err)
		}
		if !a.Equal(back) {
			t.Fatalf("%s rendered as %s parsed back as %s", text, a, back)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	type payload struct {
		Amount Amount `json:"amount"`
	}
	raw, err := json.Marshal(payload{Amount: MustParse("100.123")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(raw) != `{"amount":"100.1230000"}` {
		t.Fatalf("json.Marshal() = %s", raw)
	}

	var back payload
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Amount.Equal(MustParse("100.123")) {
		t.Fatalf("json.Unmarshal() = %s", back.Amount)
	}

	err = json.Unmarshal([]byte(`{"amount":"1.123456789"}`), &back)
	if !errors.Is(err, ErrTooManyDecimals) {
		t.Fatalf("json.Unmarshal() error = %v, want ErrTooManyDecimals", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic")
		}
	}()
	MustParse("0.000000001")
}
