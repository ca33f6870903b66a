package chunker

import (
	"strings"
	"testing"

	"github.com/pricofy/poeditor/pkg/poeditor"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "empty string",
			text:     "",
			expected: 0,
		},
		{
			name:     "short text",
			text:     "Hi",
			expected: 1, // 2/4 = 0, min 1
		},
		{
			name:     "typical key",
			text:     "checkout.button.pay_now_",
			expected: 6, // 24/4
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateTokens(tt.text)
			if result != tt.expected {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}
}

func TestTermTokens(t *testing.T) {
	term := poeditor.TermBase{
		Term:    strings.Repeat("a", 40), // 10
		Context: strings.Repeat("b", 8),  // 2
		Tags:    []string{"web", "ios"},  // 1 + 1
	}
	if got := TermTokens(term); got != 14 {
		t.Errorf("TermTokens() = %d, want 14", got)
	}
}

func TestTranslationTokens(t *testing.T) {
	single := poeditor.LanguageUpdate{
		Term:        strings.Repeat("a", 8), // 2
		Translation: poeditor.TranslationUpdate{Content: poeditor.Text(strings.Repeat("c", 40))},
	}
	if got := TranslationTokens(single); got != 12 {
		t.Errorf("TranslationTokens(single) = %d, want 12", got)
	}

	plural := poeditor.LanguageUpdate{
		Term:        strings.Repeat("a", 8),
		Translation: poeditor.TranslationUpdate{Content: poeditor.Plural(strings.Repeat("o", 8), strings.Repeat("x", 16))},
	}
	if got := TranslationTokens(plural); got != 8 {
		t.Errorf("TranslationTokens(plural) = %d, want 8", got)
	}
}

func termsOfSize(sizes ...int) []poeditor.TermBase {
	terms := make([]poeditor.TermBase, len(sizes))
	for i, n := range sizes {
		terms[i] = poeditor.TermBase{Term: strings.Repeat(string(rune('a'+i)), n*4)}
	}
	return terms
}

func TestChunkByTokens(t *testing.T) {
	tests := []struct {
		name           string
		terms          []poeditor.TermBase
		maxTokens      int
		expectedChunks int
	}{
		{
			name:           "empty input",
			terms:          []poeditor.TermBase{},
			maxTokens:      100,
			expectedChunks: 0,
		},
		{
			name:           "nil input",
			terms:          nil,
			maxTokens:      100,
			expectedChunks: 0,
		},
		{
			name:           "single term fits",
			terms:          termsOfSize(3),
			maxTokens:      100,
			expectedChunks: 1,
		},
		{
			name:           "multiple terms fit in one chunk",
			terms:          termsOfSize(1, 2, 3),
			maxTokens:      100,
			expectedChunks: 1,
		},
		{
			name:           "terms split into multiple chunks",
			terms:          termsOfSize(10, 10, 10),
			maxTokens:      15,
			expectedChunks: 3,
		},
		{
			name:           "each term in own chunk",
			terms:          termsOfSize(10, 10),
			maxTokens:      10, // Exactly fits one
			expectedChunks: 2,
		},
		{
			name:           "oversized term gets own chunk",
			terms:          termsOfSize(2, 50, 2),
			maxTokens:      20,
			expectedChunks: 3, // the small ones could share, but the oversized one breaks the run
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkByTokens(tt.terms, tt.maxTokens, TermTokens)

			if len(chunks) != tt.expectedChunks {
				t.Errorf("ChunkByTokens() returned %d chunks, want %d", len(chunks), tt.expectedChunks)
			}

			// Verify all terms are preserved in order
			var all []poeditor.TermBase
			for _, chunk := range chunks {
				all = append(all, chunk...)
			}

			if len(all) != len(tt.terms) {
				t.Errorf("ChunkByTokens() lost terms: got %d, want %d", len(all), len(tt.terms))
			}

			for i, term := range tt.terms {
				if i < len(all) && all[i].Term != term.Term {
					t.Errorf("ChunkByTokens() term[%d] = %q, want %q", i, all[i].Term, term.Term)
				}
			}
		})
	}
}

func TestChunkByTokens_DefaultMaxTokens(t *testing.T) {
	chunks := ChunkByTokens(termsOfSize(1), 0, TermTokens) // Should use default

	if len(chunks) != 1 {
		t.Errorf("ChunkByTokens with 0 maxTokens should use default, got %d chunks", len(chunks))
	}
}
