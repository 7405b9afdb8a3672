package accent

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/mathacc/core"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Classifier decides whether an accent attaches below its base.
type Classifier interface {
	IsBottom(a Accent) bool
	Name() string
}

// Names of the classifier strategies, as used in configurations.
const (
	UnicodeClassification = "unicode"
	CuratedClassification = "curated"
)

// NewClassifier returns the classifier strategy for a configuration name.
// An empty name selects the Unicode classifier.
func NewClassifier(name string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UnicodeClassification:
		tracer().Debugf("accents classified by canonical combining class")
		return &UnicodeClassifier{}, nil
	case CuratedClassification:
		tracer().Debugf("accents classified by curated list of bottom marks")
		return CuratedClassifier{}, nil
	}
	return nil, core.Error(core.EINVALID, "unknown accent classifier %q", name)
}

var defaultClassifier = &UnicodeClassifier{}

// IsBottom is true if a attaches below its base, as decided by c. A nil
// classifier classifies by Unicode combining class.
func (a Accent) IsBottom(c Classifier) bool {
	if c == nil {
		c = defaultClassifier
	}
	return c.IsBottom(a)
}

// Horizontal brackets below are bottom accents for every strategy.
func isBottomBracket(a Accent) bool {
	switch a {
	case '\u23df', '\u23b5', '\u23dd', '\u23e1': // ⏟ ⎵ ⏝ ⏡
		return true
	}
	return false
}

// --- Unicode combining classes ---------------------------------------------

// cccBelow is the canonical combining class "Below".
const cccBelow uint8 = 220

// UnicodeClassifier classifies accents by their canonical combining class,
// as found in the Unicode normalization tables. The set of marks of class
// Below is computed on first use and shared afterwards.
//
// A UnicodeClassifier must not be copied after first use.
type UnicodeClassifier struct {
	once  sync.Once
	below *unicode.RangeTable
}

// IsBottom is true for accents of canonical combining class Below and for
// horizontal brackets below.
func (uc *UnicodeClassifier) IsBottom(a Accent) bool {
	if isBottomBracket(a) {
		return true
	}
	uc.once.Do(uc.load)
	return unicode.Is(uc.below, rune(a))
}

func (uc *UnicodeClassifier) load() {
	var below []rune
	rangetable.Visit(unicode.M, func(r rune) {
		if CombiningClass(r) == cccBelow {
			below = append(below, r)
		}
	})
	uc.below = rangetable.New(below...)
	tracer().Debugf("loaded %d combining marks of class Below", len(below))
}

func (uc *UnicodeClassifier) Name() string {
	return UnicodeClassification
}

// CombiningClass returns the canonical combining class of r.
func CombiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).CCC()
}

// --- Curated list ----------------------------------------------------------

// CuratedClassifier classifies accents by a fixed list of common bottom
// marks of math and typography. Marks not on the list are top accents, even
// if Unicode places them below.
type CuratedClassifier struct{}

// IsBottom is true for the curated bottom marks and for horizontal brackets
// below.
func (CuratedClassifier) IsBottom(a Accent) bool {
	return isBottomBracket(a) || unicode.Is(curatedTable, rune(a))
}

func (CuratedClassifier) Name() string {
	return CuratedClassification
}

// CuratedBottomMarks returns the curated list of bottom marks.
func CuratedBottomMarks() []rune {
	return append([]rune(nil), curatedBelow[:]...)
}

var curatedTable = rangetable.New(curatedBelow[:]...)

var curatedBelow = [...]rune{
	'\u0316', // grave accent below
	'\u0317', // acute accent below
	'\u0318', // left tack below
	'\u0319', // right tack below
	'\u031c', // left half ring below
	'\u031d', // up tack below
	'\u031e', // down tack below
	'\u031f', // plus sign below
	'\u0320', // minus sign below
	'\u0321', // palatalized hook below
	'\u0322', // retroflex hook below
	'\u0323', // dot below
	'\u0324', // diaeresis below
	'\u0325', // ring below
	'\u0326', // comma below
	'\u0327', // cedilla
	'\u0328', // ogonek
	'\u0329', // vertical line below
	'\u032a', // bridge below
	'\u032b', // inverted double arch below
	'\u032c', // caron below
	'\u032d', // circumflex accent below
	'\u032e', // breve below
	'\u032f', // inverted breve below
	'\u0330', // tilde below
	'\u0331', // macron below
	'\u0332', // low line
	'\u0333', // double low line
	'\u0339', // right half ring below
	'\u033a', // inverted bridge below
	'\u033b', // square below
	'\u033c', // seagull below
	'\u0345', // greek ypogegrammeni
	'\u0347', // equals sign below
	'\u0348', // double vertical line below
	'\u0349', // left angle below
	'\u034d', // left right arrow below
	'\u034e', // upwards arrow below
	'\u0353', // x below
	'\u0354', // left arrowhead below
	'\u0355', // right arrowhead below
	'\u0356', // right arrowhead and up arrowhead below
	'\u0359', // asterisk below
	'\u035a', // double ring below
	'\u035c', // double breve below
	'\u035f', // double macron below
	'\u0362', // double rightwards arrow below
}
