package script

import (
	"math/rand"
	"testing"
	"unicode"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		char     rune
		wantName string
		wantDir  Direction
		wantOK   bool
	}{
		// Latin
		{"Latin A", 'A', "Latin", LTR, true},
		{"Latin Z", 'Z', "Latin", LTR, true},
		{"Latin a", 'a', "Latin", LTR, true},
		{"Latin z", 'z', "Latin", LTR, true},

		// Arabic
		{"Arabic baa", 'ب', "Arabic", RTL, true},    // U+0628
		{"Arabic first", 0x0600, "Arabic", RTL, true}, // range start
		{"Arabic last", 0x06FF, "Arabic", RTL, true},  // range end - 1

		// Cyrillic
		{"Cyrillic Pe", 'П', "Cyrillic", LTR, true}, // U+041F
		{"Cyrillic ya", 'я', "Cyrillic", LTR, true}, // U+044F

		// Hiragana
		{"Hiragana a", 'あ', "Hiragana", TTB, true}, // U+3042
		{"Hiragana first", 12352, "Hiragana", TTB, true},

		// Unclassified, including every range's exclusive end
		{"At sign", '@', "", LTR, false},
		{"Left bracket", '[', "", LTR, false},
		{"Backtick", '`', "", LTR, false},
		{"Left brace", '{', "", LTR, false},
		{"Digit", '7', "", LTR, false},
		{"Space", ' ', "", LTR, false},
		{"Latin é", 'é', "", LTR, false},
		{"Cyrillic end", 1279, "", LTR, false},
		{"Before Cyrillic", 1023, "", LTR, false},
		{"Arabic end", 1792, "", LTR, false},
		{"Before Arabic", 1535, "", LTR, false},
		{"Hiragana end", 12448, "", LTR, false},
		{"Before Hiragana", 12351, "", LTR, false},
		{"Hebrew alef", 'א', "", LTR, false},
		{"CJK", '中', "", LTR, false},
		{"Replacement char", unicode.ReplacementChar, "", LTR, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := Classify(tt.char)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q U+%04X) ok = %v, want %v", tt.char, tt.char, ok, tt.wantOK)
			}
			if !ok {
				if def != nil {
					t.Errorf("Classify(%q U+%04X) = %v, want nil", tt.char, tt.char, def.Name)
				}
				return
			}
			if def.Name != tt.wantName || def.Direction != tt.wantDir {
				t.Errorf("Classify(%q U+%04X) = %s/%v, want %s/%v",
					tt.char, tt.char, def.Name, def.Direction, tt.wantName, tt.wantDir)
			}
		})
	}
}

func TestClassifyCoversEveryRange(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
		dir    Direction
	}{
		{"Latin", []Range{{65, 91}, {97, 123}}, LTR},
		{"Arabic", []Range{{1536, 1792}}, RTL},
		{"Cyrillic", []Range{{1024, 1279}}, LTR},
		{"Hiragana", []Range{{12352, 12448}}, TTB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rg := range tt.ranges {
				for r := rg.Start; r < rg.End; r++ {
					def, ok := Classify(r)
					if !ok || def.Name != tt.name || def.Direction != tt.dir {
						t.Fatalf("Classify(U+%04X) = %v, %v; want %s/%v", r, def, ok, tt.name, tt.dir)
					}
				}
			}
		})
	}
}

func TestClassifyUnmatchedCount(t *testing.T) {
	// Default covers 26+26+256+255+96 code points below U+3100.
	matched := 0
	for r := rune(0); r < 0x3100; r++ {
		if _, ok := Classify(r); ok {
			matched++
		}
	}
	if want := 26 + 26 + 256 + 255 + 96; matched != want {
		t.Errorf("classified %d code points, want %d", matched, want)
	}
}

func TestClassifyOverlapFirstDeclaredWins(t *testing.T) {
	a := Definition{Name: "A", Ranges: []Range{{10, 20}}, Direction: LTR}
	b := Definition{Name: "B", Ranges: []Range{{15, 30}}, Direction: RTL}

	tests := []struct {
		name  string
		table *Table
		char  rune
		want  string
	}{
		{"A first, overlap", MustNewTable(a, b), 16, "A"},
		{"A first, only B", MustNewTable(a, b), 25, "B"},
		{"B first, overlap", MustNewTable(b, a), 16, "B"},
		{"B first, only A", MustNewTable(b, a), 12, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := tt.table.Classify(tt.char)
			if !ok {
				t.Fatalf("Classify(%d) not classified", tt.char)
			}
			if def.Name != tt.want {
				t.Errorf("Classify(%d) = %s, want %s", tt.char, def.Name, tt.want)
			}
		})
	}
}

func TestClassifyReturnsTableEntry(t *testing.T) {
	got, ok := Classify('a')
	if !ok {
		t.Fatal("Classify('a') not classified")
	}
	want, err := Default.Lookup("Latin")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("Classify should return a pointer into the table, not a copy")
	}
}

// randomRune draws a code point the way the demo page's insert buttons did:
// a uniformly chosen range, then a uniform code point inside it.
func randomRune(rng *rand.Rand, def *Definition) rune {
	rg := def.Ranges[rng.Intn(len(def.Ranges))]
	return rg.Start + rune(rng.Intn(rg.Len()))
}

func TestClassifyRandomDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, def := range Default.Definitions() {
		def := def
		t.Run(def.Name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				r := randomRune(rng, &def)
				got, ok := Classify(r)
				if !ok || got.Name != def.Name {
					t.Fatalf("Classify(U+%04X) = %v, %v; want %s", r, got, ok, def.Name)
				}
			}
		})
	}
}

func TestRangeTableMatchesClassify(t *testing.T) {
	for _, def := range Default.Definitions() {
		def := def
		t.Run(def.Name, func(t *testing.T) {
			rt := def.RangeTable()
			for r := rune(0); r < 0x3100; r++ {
				if unicode.Is(rt, r) != def.Contains(r) {
					t.Fatalf("unicode.Is(U+%04X) = %v, Contains = %v", r, unicode.Is(rt, r), def.Contains(r))
				}
			}
		})
	}
}
