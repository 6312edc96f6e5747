package phonetic

import "testing"

func TestClassify(t *testing.T) {
	c := New(DefaultOptions())

	tests := []struct {
		cluster string
		want    Class
	}{
		{"A", ClassLetterUpper},
		{"z", ClassLetterLower},
		{"0", ClassDigit},
		{"9", ClassDigit},
		{";", ClassSpecial},
		{".", ClassSpecial},
		{" ", ClassSpace},
		{"😀", ClassEmoji},
		{"☃", ClassEmoji},
		{"é", ClassUnmapped},
		{"д", ClassUnmapped},
		{"\t", ClassUnmapped},
		{"👩‍🚀", ClassEmoji},
		{"é", ClassUnmapped}, // combining mark cluster
	}

	for _, tt := range tests {
		if got := c.classify(tt.cluster); got != tt.want {
			t.Errorf("classify(%q) = %d, want %d", tt.cluster, got, tt.want)
		}
	}
}

func TestIsEmoji(t *testing.T) {
	emoji := []rune{'😀', '🚀', '☃', '🎉'}
	for _, r := range emoji {
		if !IsEmoji(r) {
			t.Errorf("IsEmoji(%q) = false, want true", r)
		}
	}

	// ASCII and low symbols flagged as emoji by some Unicode property
	// schemes must stay below the threshold.
	notEmoji := []rune{'#', '*', '0', '9', 'A', ' ', '©', '®', '™'}
	for _, r := range notEmoji {
		if IsEmoji(r) {
			t.Errorf("IsEmoji(%q) = true, want false", r)
		}
	}
}

func TestCustomEmojiPredicate(t *testing.T) {
	// A predicate that never matches turns emoji into unmapped echoes.
	c := New(Options{
		NewLineOutput: true,
		IsEmoji:       func(rune) bool { return false },
	})

	if got := c.classify("😀"); got != ClassUnmapped {
		t.Errorf("classify(\"😀\") with nil predicate = %d, want ClassUnmapped", got)
	}
}
