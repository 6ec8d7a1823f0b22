package amount

import (
	"errors"
	"math"
	"testing"

	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

func TestStroopsMul(t *testing.T) {
	tests := []struct {
		name    string
		base    Stroops
		n       int
		want    Stroops
		wantErr bool
	}{
		{name: "two operations at base fee", base: 100, n: 2, want: 200},
		{name: "one hundred operations", base: 100, n: 100, want: 10_000},
		{name: "overflow", base: math.MaxInt64, n: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.base.Mul(tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mul() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOverflow) {
				t.Fatalf("Mul() error = %v, want ErrOverflow", err)
			}
			if got != tt.want {
				t.Fatalf("Mul() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStroopsXDR(t *testing.T) {
	s := Stroops(200000000)
	data, err := xdr.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := []byte{0, 0, 0, 0, 0x0b, 0xeb, 0xc2, 0x00}
	if string(data) != string(want) {
		t.Fatalf("Marshal() = %x, want %x", data, want)
	}

	var back Stroops
	if err := xdr.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != s {
		t.Fatalf("Unmarshal() = %v, want %v", back, s)
	}
}

func TestPriceXDR(t *testing.T) {
	p := NewPrice(100, 3)
	data, err := xdr.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := []byte{0, 0, 0, 100, 0, 0, 0, 3}
	if string(data) != string(want) {
		t.Fatalf("Marshal() = %x, want %x", data, want)
	}

	var back Price
	if err := xdr.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != p {
		t.Fatalf("Unmarshal() = %v, want %v", back, p)
	}
	if p.String() != "100/3" {
		t.Fatalf("String() = %q", p.String())
	}

	if err := xdr.Unmarshal(data[:6], &back); !errors.Is(err, xdr.ErrShortBuffer) {
		t.Fatalf("Unmarshal() error = %v, want ErrShortBuffer", err)
	}
}
