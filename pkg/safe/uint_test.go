package safe

import (
	"errors"
	"math"
	"testing"
)

type convertCase[T Integer, R comparable] struct {
	name    string
	v       T
	want    R
	wantErr bool
}

func runConvertCase[T Integer, R comparable](t *testing.T, fn string, convert func(T) (R, error), tc convertCase[T, R]) {
	t.Helper()

	t.Run(tc.name, func(t *testing.T) {
		got, err := convert(tc.v)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s() error = %v, wantErr %v", fn, err, tc.wantErr)
			return
		}
		if err != nil && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s() error = %v, want ErrOutOfRange", fn, err)
		}
		if got != tc.want {
			t.Errorf("%s() got = %v, want %v", fn, got, tc.want)
		}
	})
}

func TestUint32(t *testing.T) {
	runConvertCase(t, "Uint32", Uint32[int], convertCase[int, uint32]{name: "int within range", v: 42, want: 42})
	runConvertCase(t, "Uint32", Uint32[int], convertCase[int, uint32]{name: "int negative", v: -1, wantErr: true})
	runConvertCase(t, "Uint32", Uint32[int64], convertCase[int64, uint32]{name: "fee overflow", v: int64(math.MaxUint32) + 1, wantErr: true})
	runConvertCase(t, "Uint32", Uint32[int64], convertCase[int64, uint32]{name: "fee boundary ok", v: int64(math.MaxUint32), want: math.MaxUint32})
	runConvertCase(t, "Uint32", Uint32[uint64], convertCase[uint64, uint32]{name: "uint64 overflow", v: math.MaxUint32 + 1, wantErr: true})
	runConvertCase(t, "Uint32", Uint32[int32], convertCase[int32, uint32]{name: "int32 negative", v: -5, wantErr: true})
	runConvertCase(t, "Uint32", Uint32[int64], convertCase[int64, uint32]{name: "zero", v: 0, want: 0})
}

func TestUint64(t *testing.T) {
	runConvertCase(t, "Uint64", Uint64[int64], convertCase[int64, uint64]{name: "timestamp", v: 1_700_000_000, want: 1_700_000_000})
	runConvertCase(t, "Uint64", Uint64[int64], convertCase[int64, uint64]{name: "negative", v: -100, wantErr: true})
	runConvertCase(t, "Uint64", Uint64[int64], convertCase[int64, uint64]{name: "max int64", v: math.MaxInt64, want: math.MaxInt64})
	runConvertCase(t, "Uint64", Uint64[uint64], convertCase[uint64, uint64]{name: "max uint64", v: math.MaxUint64, want: math.MaxUint64})
}

func TestInt64(t *testing.T) {
	runConvertCase(t, "Int64", Int64[uint64], convertCase[uint64, int64]{name: "small", v: 9, want: 9})
	runConvertCase(t, "Int64", Int64[uint64], convertCase[uint64, int64]{name: "boundary", v: math.MaxInt64, want: math.MaxInt64})
	runConvertCase(t, "Int64", Int64[uint64], convertCase[uint64, int64]{name: "overflow", v: math.MaxInt64 + 1, wantErr: true})
	runConvertCase(t, "Int64", Int64[int], convertCase[int, int64]{name: "negative passes through", v: -3, want: -3})
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{name: "base fee times two operations", a: 100, b: 2, want: 200},
		{name: "zero operations", a: 100, b: 0, want: 0},
		{name: "negative operand", a: -7, b: 3, want: -21},
		{name: "overflow", a: math.MaxInt64, b: 2, wantErr: true},
		{name: "negative overflow", a: math.MinInt64, b: 2, wantErr: true},
		{name: "min times minus one", a: math.MinInt64, b: -1, wantErr: true},
		{name: "minus one times min", a: -1, b: math.MinInt64, wantErr: true},
		{name: "boundary", a: math.MaxInt64, b: 1, want: math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulInt64(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MulInt64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("MulInt64() = %v, want %v", got, tt.want)
			}
		})
	}
}
