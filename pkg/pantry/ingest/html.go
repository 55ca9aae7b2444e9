package ingest

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ingredientSelectors are tried in order; the first one with matches wins.
var ingredientSelectors = []string{
	`[itemprop="recipeIngredient"]`,
	`[itemprop="ingredients"]`,
	`.ingredient`,
	`.ingredients li`,
	`.zutaten li`,
}

// ExtractHTMLLines pulls raw ingredient lines out of recipe markup. It returns
// nil when the page has no recognizable ingredient list.
func ExtractHTMLLines(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse HTML")
	}
	doc := goquery.NewDocumentFromNode(root)

	for _, selector := range ingredientSelectors {
		var lines []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := normalizeSpace(sel.Text()); text != "" {
				lines = append(lines, text)
			}
		})
		if len(lines) > 0 {
			return lines, nil
		}
	}
	return nil, nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
