package decompose

import "testing"

func TestWhitelists(t *testing.T) {
	tests := []struct {
		n     int
		count int
		last  [2]int
	}{
		{6, 10, [2]int{4, 5}},
		{9, 16, [2]int{4, 8}},
		{12, 16, [2]int{4, 8}},
	}
	for _, tt := range tests {
		w := whitelist(tt.n)
		if len(w) != tt.count {
			t.Errorf("whitelist(%d) has %d entries, want %d", tt.n, len(w), tt.count)
			continue
		}
		if w[0] != [2]int{1, 2} {
			t.Errorf("whitelist(%d)[0] = %v, want [1 2]", tt.n, w[0])
		}
		if got := w[len(w)-1]; got != tt.last {
			t.Errorf("whitelist(%d) last = %v, want %v", tt.n, got, tt.last)
		}
		for i := 1; i < len(w); i++ {
			prev, cur := w[i-1], w[i]
			if prev[0] > cur[0] || (prev[0] == cur[0] && prev[1] >= cur[1]) {
				t.Errorf("whitelist(%d) not ordered at %d: %v then %v", tt.n, i, prev, cur)
			}
		}
	}
	if whitelist(3) != nil {
		t.Error("the final stage has no whitelist")
	}
}
