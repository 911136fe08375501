package tts

import "testing"

func TestWordsFromCharacters(t *testing.T) {
	chars := []string{"t", "h", "e", " ", "c", "e", "l", "l"}
	starts := []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	ends := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	words := WordsFromCharacters(chars, starts, ends)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}

	if words[0].Text != "the" || words[0].Start != 0.0 || words[0].End != 0.3 {
		t.Errorf("words[0] = %+v, want {the 0 0.3}", words[0])
	}
	if words[1].Text != "cell" || words[1].Start != 0.4 || words[1].End != 0.8 {
		t.Errorf("words[1] = %+v, want {cell 0.4 0.8}", words[1])
	}
}

func TestWordsFromCharactersCollapsesWhitespaceRuns(t *testing.T) {
	chars := []string{"a", " ", "\n", " ", "b"}
	starts := []float64{0, 1, 2, 3, 4}
	ends := []float64{1, 2, 3, 4, 5}

	words := WordsFromCharacters(chars, starts, ends)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[1].Text != "b" || words[1].Start != 4 {
		t.Errorf("words[1] = %+v, want {b 4 5}", words[1])
	}
}

func TestWordsFromCharactersUnevenLengths(t *testing.T) {
	// Timing arrays shorter than the characters clip the fold.
	chars := []string{"a", "b", "c"}
	starts := []float64{0, 1}
	ends := []float64{1, 2}

	words := WordsFromCharacters(chars, starts, ends)
	if len(words) != 1 || words[0].Text != "ab" {
		t.Fatalf("words = %+v, want single word %q", words, "ab")
	}
}

func TestWordsFromCharactersEmpty(t *testing.T) {
	if words := WordsFromCharacters(nil, nil, nil); len(words) != 0 {
		t.Errorf("WordsFromCharacters(nil) = %v, want empty", words)
	}
}
