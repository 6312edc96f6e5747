// Package phonetic converts text to a verbose spoken-word spelling
// suitable for dictation over a voice channel, and converts such a
// spelling back to the original text. Letters use the NATO alphabet
// ("Alpha", "Bravo", ...), digits and common symbols use fixed word
// tables, and anything unmapped echoes itself.
package phonetic
