package olx

import (
	"github.com/Ayushm74/olx-car-info/models"
)

// ExtractListing builds a record from one listing card, walking each
// field's selector chain in priority order. A field whose chain exhausts
// stays at the NA sentinel — partial cards are still worth keeping.
func ExtractListing(n Node) models.Listing {
	l := models.NewListing()

	for _, sel := range TitleSelectors {
		if txt, ok := n.Text(sel); ok && txt != "" {
			l.Title = txt
			break
		}
	}

	// A selector can match an element whose text is not price-shaped at
	// all, so the chain advances until something survives normalization.
	for _, sel := range PriceSelectors {
		if txt, ok := n.Text(sel); ok {
			if price := NormalizePrice(txt); price != "" {
				l.Price = price
				break
			}
		}
	}

	for _, sel := range LocationSelectors {
		if txt, ok := n.Text(sel); ok && txt != "" {
			l.Location = txt
			break
		}
	}

	for _, sel := range DateSelectors {
		if txt, ok := n.Text(sel); ok && txt != "" {
			l.Date = txt
			break
		}
	}

	if href, ok := n.Attr(ItemLinkSelector, "href"); ok && href != "" {
		l.URL = href
	}

	return l
}
