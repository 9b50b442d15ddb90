package board

import "testing"

func TestSideAtRotation(t *testing.T) {
	h := NewSingle()
	for rot := 0; rot < NumSides; rot++ {
		h.Rotation = rot
		for d := North; d <= Northwest; d++ {
			want := Side((int(d) + rot) % NumSides)
			if got := h.SideAt(d); got != want {
				t.Errorf("rotation %d, direction %v: got %v, want %v", rot, d, got, want)
			}
		}
	}
}

func TestSideAtIsBijective(t *testing.T) {
	h := NewTriple()
	for rot := 0; rot < NumSides; rot++ {
		h.Rotation = rot
		seen := make(map[Side]bool)
		for d := North; d <= Northwest; d++ {
			seen[h.SideAt(d)] = true
		}
		if len(seen) != NumSides {
			t.Errorf("rotation %d: directions map to %d distinct sides, want %d", rot, len(seen), NumSides)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		d, want Direction
	}{
		{North, South},
		{Northeast, Southwest},
		{Southeast, Northwest},
		{South, North},
		{Southwest, Northeast},
		{Northwest, Southeast},
	}
	for _, c := range cases {
		if got := c.d.Opposite(); got != c.want {
			t.Errorf("%v.Opposite() = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestSideNextPrev(t *testing.T) {
	if got := Side5.Next(); got != Side0 {
		t.Errorf("Side5.Next() = %v, want %v", got, Side0)
	}
	if got := Side0.Prev(); got != Side5 {
		t.Errorf("Side0.Prev() = %v, want %v", got, Side5)
	}
	for s := Side0; s < NumSides; s++ {
		if got := s.Next().Prev(); got != s {
			t.Errorf("%v.Next().Prev() = %v", s, got)
		}
	}
}

func TestSideSet(t *testing.T) {
	set := NewSideSet(Side0, Side3, Side3)
	if got := set.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2 (duplicates collapse)", got)
	}
	if !set.Has(Side0) || !set.Has(Side3) {
		t.Error("expected membership of sides 0 and 3")
	}
	if set.Has(Side1) {
		t.Error("unexpected membership of side 1")
	}
	sides := set.Sides()
	if len(sides) != 2 || sides[0] != Side0 || sides[1] != Side3 {
		t.Errorf("Sides() = %v, want [0 3]", sides)
	}
}

func TestValidateRejectsBadHexagons(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Hexagon
	}{
		{
			name: "uncovered side",
			build: func() *Hexagon {
				return NewHexagon([]*Territory{NewTerritory(Side0, Side1, Side2, Side3, Side4)}, nil)
			},
		},
		{
			name: "side touched twice",
			build: func() *Hexagon {
				return NewHexagon([]*Territory{
					NewTerritory(Side0, Side1, Side2),
					NewTerritory(Side2, Side3, Side4, Side5),
				}, nil)
			},
		},
		{
			name: "self edge",
			build: func() *Hexagon {
				t1 := NewTerritory(Side0, Side1, Side2)
				t2 := NewTerritory(Side3, Side4, Side5)
				return NewHexagon([]*Territory{t1, t2}, []InternalEdge{{t1, t1}})
			},
		},
		{
			name: "foreign territory in edge",
			build: func() *Hexagon {
				t1 := NewTerritory(Side0, Side1, Side2)
				t2 := NewTerritory(Side3, Side4, Side5)
				other := NewTerritory(Side0)
				return NewHexagon([]*Territory{t1, t2}, []InternalEdge{{t1, other}})
			},
		},
		{
			name: "rotation out of range",
			build: func() *Hexagon {
				h := NewSingle()
				h.Rotation = 6
				return h
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.build().Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestTerritoriesTouching(t *testing.T) {
	h := NewTriple()
	for s := Side0; s < NumSides; s++ {
		ts := h.TerritoriesTouching(s)
		if len(ts) != 1 {
			t.Errorf("side %v touched by %d territories, want 1", s, len(ts))
		}
	}
}
