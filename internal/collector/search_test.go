package collector

import "testing"

func TestGoogleNewsSource(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Sensex surges 500 points - Economic Times", "Economic Times"},
		{"Rain lashes Mumbai - Hindustan Times - Mumbai Edition", "Mumbai Edition"},
		{"Headline with no outlet suffix", "Google News"},
		{"Dash-heavy-title without separator", "Google News"},
		{"Dangling separator - ", "Google News"},
		{" - Leading separator only", "Google News"},
	}
	for _, c := range cases {
		if got := googleNewsSource(c.title); got != c.want {
			t.Errorf("googleNewsSource(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}
