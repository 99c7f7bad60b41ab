package content

// #region imports
import (
	"github.com/danielpatrickdp/therapy-assistant/internal/category"
	"github.com/danielpatrickdp/therapy-assistant/internal/randsrc"
)

// #endregion imports

// #region bundle

// Bundle is the supportive content shown alongside a reply.
type Bundle struct {
	Category category.Category `json:"category"`
	Songs    []string          `json:"songs"`
	Remedies []string          `json:"remedies"`
	Jokes    []string          `json:"jokes"`
	Quote    string            `json:"quote"`
}

// #endregion bundle

// #region recommender

// Recommender looks up static bundles and picks quotes.
// Safe for concurrent use when its random source is.
type Recommender struct {
	rng randsrc.Source
}

// NewRecommender creates a Recommender. rng may be nil to use the shared source.
func NewRecommender(rng randsrc.Source) *Recommender {
	return &Recommender{rng: randsrc.OrDefault(rng)}
}

// Recommend returns the songs, remedies, jokes and one quote for c.
// Unknown categories fall through to the default bundle.
func (r *Recommender) Recommend(c category.Category) Bundle {
	key := resolveBundle(c)
	e := bundles[key]
	return Bundle{
		Category: key,
		Songs:    clone(e.songs),
		Remedies: clone(e.remedies),
		Jokes:    clone(e.jokes),
		Quote:    r.Quote(c),
	}
}

// Quote picks one of the three quotes registered for c's quote bucket.
func (r *Recommender) Quote(c category.Category) string {
	pool := quotes[resolveQuote(c)]
	return randsrc.Pick(r.rng, pool[:])
}

// #endregion recommender

// #region lookup

func resolveBundle(c category.Category) category.Category {
	if _, ok := bundles[c]; ok {
		return c
	}
	return category.Default
}

// QuoteBucket returns the category whose quote pool serves c.
func QuoteBucket(c category.Category) category.Category {
	return resolveQuote(c)
}

func resolveQuote(c category.Category) category.Category {
	if _, ok := quotes[c]; ok {
		return c
	}
	return category.Default
}

// Quotes returns the quote pool for c's bucket.
func Quotes(c category.Category) []string {
	pool := quotes[resolveQuote(c)]
	return pool[:]
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}

// #endregion lookup
