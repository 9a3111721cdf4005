package compare

import (
	"testing"
	"time"
)

type station struct {
	Name     string
	Amps     []int
	Tags     map[string]string
	LastSeen time.Time
	Line     *line
}

type line struct {
	ID      int
	charged float64
}

func buildStation() station {
	return station{
		Name:     "garage",
		Amps:     []int{6, 16, 32},
		Tags:     map[string]string{"site": "home"},
		LastSeen: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Line:     &line{ID: 1, charged: 12.5},
	}
}

func TestEqual(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "identical scalars", a: 42, b: 42, want: true},
		{name: "different scalar types", a: 42, b: int64(42), want: false},
		{name: "independently built structs", a: buildStation(), b: buildStation(), want: true},
		{
			name: "nested leaf differs",
			a:    buildStation(),
			b: func() station {
				s := buildStation()
				s.Amps[2] = 16
				return s
			}(),
			want: false,
		},
		{
			name: "unexported nested leaf differs",
			a:    buildStation(),
			b: func() station {
				s := buildStation()
				s.Line.charged = 0
				return s
			}(),
			want: false,
		},
		{
			name: "same instant in different zones",
			a:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 1, 18, 0, 0, 0, shanghai),
			want: true,
		},
		{
			name: "different instants",
			a:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 1, 10, 0, 1, 0, time.UTC),
			want: false,
		},
		{name: "nil and empty slice", a: []int(nil), b: []int{}, want: true},
		{name: "slices of different length", a: []int{1, 2}, b: []int{1, 2, 3}, want: false},
		{
			name: "nested maps",
			a:    map[string][]string{"a": {"x", "y"}},
			b:    map[string][]string{"a": {"x", "y"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v\n%s", got, tt.want, Diff(tt.a, tt.b))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	s := buildStation()

	if Update(&s.Amps, []int{6, 16, 32}) {
		t.Error("Update() reported a change for an equal slice")
	}
	if !Update(&s.Amps, []int{6, 10}) {
		t.Error("Update() reported no change for a different slice")
	}
	if len(s.Amps) != 2 || s.Amps[1] != 10 {
		t.Errorf("Amps = %v, want [6 10]", s.Amps)
	}

	sameInstant := s.LastSeen.In(time.FixedZone("UTC+8", 8*3600))
	if Update(&s.LastSeen, sameInstant) {
		t.Error("Update() reported a change for the same instant")
	}
	if s.LastSeen.Location() != time.UTC {
		t.Error("Update() replaced a value that was equal")
	}

	if !Update(&s.Name, "driveway") || s.Name != "driveway" {
		t.Errorf("Name = %q, want %q", s.Name, "driveway")
	}
}
