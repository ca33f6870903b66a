// Package chunker splits bulk term payloads into requests of bounded size.
package chunker

import "github.com/pricofy/poeditor/pkg/poeditor"

// DefaultMaxTokens is the default estimated size of one request.
const DefaultMaxTokens = 20000

// EstimateTokens estimates the token count for a text.
// Uses a simple heuristic: ~4 characters per token for Latin languages.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	// Rough estimate: 1 token ≈ 4 characters
	tokens := len(text) / 4
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}

// TermTokens estimates the size of a term payload.
func TermTokens(t poeditor.TermBase) int {
	n := EstimateTokens(t.Term) + EstimateTokens(t.Context) + EstimateTokens(t.Plural) +
		EstimateTokens(t.Reference) + EstimateTokens(t.Comment)
	for _, tag := range t.Tags {
		n += EstimateTokens(tag)
	}
	return n
}

// TranslationTokens estimates the size of a translation payload.
func TranslationTokens(u poeditor.LanguageUpdate) int {
	n := EstimateTokens(u.Term) + EstimateTokens(u.Context)
	content := u.Translation.Content
	if content.IsPlural() {
		return n + EstimateTokens(content.Plural.One) + EstimateTokens(content.Plural.Other)
	}
	return n + EstimateTokens(content.Text)
}

// ChunkByTokens splits items into chunks whose estimated size does not
// exceed maxTokens. Items are never split and keep their order; an item
// larger than maxTokens gets a chunk of its own.
func ChunkByTokens[T any](items []T, maxTokens int, size func(T) int) [][]T {
	if len(items) == 0 {
		return nil
	}

	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	var chunks [][]T
	var currentChunk []T
	currentTokens := 0

	for _, item := range items {
		itemTokens := size(item)

		// If a single item exceeds maxTokens, it gets its own chunk
		if itemTokens > maxTokens {
			if len(currentChunk) > 0 {
				chunks = append(chunks, currentChunk)
				currentChunk = nil
				currentTokens = 0
			}
			chunks = append(chunks, []T{item})
			continue
		}

		// If adding this item would exceed the limit, start a new chunk
		if currentTokens+itemTokens > maxTokens && len(currentChunk) > 0 {
			chunks = append(chunks, currentChunk)
			currentChunk = nil
			currentTokens = 0
		}

		currentChunk = append(currentChunk, item)
		currentTokens += itemTokens
	}

	if len(currentChunk) > 0 {
		chunks = append(chunks, currentChunk)
	}

	return chunks
}
