// Package sentiment scores financial text and blends per-source readings
// into a single weighted sentiment with a qualitative confidence tier.
package sentiment

import "strings"

// Analyzer scores a piece of text in [-1, 1]. Zero means no sentiment
// signal was found, not neutral certainty.
type Analyzer interface {
	Score(text string) float64
}

// LexiconAnalyzer is a finance-tuned keyword scorer. Each hit counts once;
// a negation word within the few tokens before a hit flips its sign.
type LexiconAnalyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
	negators map[string]struct{}
}

var positiveWords = []string{
	"beat", "beats", "bull", "bullish", "buy", "breakout", "upgrade",
	"upgraded", "outperform", "rally", "rallies", "surge", "surged",
	"soar", "soared", "gain", "gains", "growth", "strong", "record",
	"profit", "profitable", "dividend", "buyback", "momentum", "moon",
	"rocket", "winner", "win", "rebound", "recovery", "upside", "boom",
	"optimistic", "exceed", "exceeded", "raise", "raised", "expand",
	"expansion", "positive", "calls", "undervalued",
}

var negativeWords = []string{
	"miss", "missed", "bear", "bearish", "sell", "selloff", "downgrade",
	"downgraded", "underperform", "crash", "crashed", "plunge", "plunged",
	"drop", "dropped", "fall", "fell", "loss", "losses", "weak", "decline",
	"declined", "lawsuit", "fraud", "investigation", "bankruptcy", "debt",
	"layoff", "layoffs", "recession", "warning", "cut", "cuts", "risk",
	"risky", "dump", "dumped", "overvalued", "puts", "short", "negative",
	"bagholder", "downside", "bubble",
}

var negatorWords = []string{"not", "no", "never", "without", "won't", "don't", "didn't", "isn't"}

// NewLexiconAnalyzer builds the analyzer with the built-in finance lexicon.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	a := &LexiconAnalyzer{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
		negators: make(map[string]struct{}, len(negatorWords)),
	}
	for _, w := range positiveWords {
		a.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		a.negative[w] = struct{}{}
	}
	for _, w := range negatorWords {
		a.negators[w] = struct{}{}
	}
	return a
}

// negationWindow is how many tokens a negator keeps flipping ahead of
// itself, so fillers like "not a strong quarter" still invert the hit.
const negationWindow = 3

// Score tokenizes text and returns (hits_pos - hits_neg) / hits_total
// in [-1, 1], or 0 when no lexicon word occurs.
func (a *LexiconAnalyzer) Score(text string) float64 {
	tokens := tokenize(text)
	var pos, neg int
	negated := 0
	for _, tok := range tokens {
		if _, ok := a.negators[tok]; ok {
			negated = negationWindow
			continue
		}
		_, isPos := a.positive[tok]
		_, isNeg := a.negative[tok]
		if !isPos && !isNeg {
			if negated > 0 {
				negated--
			}
			continue
		}
		flip := negated > 0
		negated = 0
		if isPos != flip {
			pos++
		} else {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			return false
		}
		return true
	})
}
