package olx

// OLX ships both stable data-aut-id attributes and obfuscated class names
// that rotate across deployments, so every lookup walks an ordered fallback
// chain. Order encodes which variants showed up most often in practice —
// reorder deliberately, not alphabetically.

// ContainerSelectors are the candidate repeating-card selectors the locator
// tries against a fresh render.
var ContainerSelectors = []string{
	"[data-aut-id='itemBox']",
	".EIR5N",
	"[data-aut-id='itemTitle']",
	".rui-38N2G",
	".rui-1ykdW",
	"li[data-aut-id='itemBox']",
}

var TitleSelectors = []string{
	"[data-aut-id='itemTitle']",
	"h2",
	"h3",
	".rui-35953",
	"a[href*='/item/']",
}

var PriceSelectors = []string{
	"[data-aut-id='itemPrice']",
	".rui-ANJaG",
	"span[class*='price']",
	"span[class*='amount']",
}

var LocationSelectors = []string{
	"[data-aut-id='item-location']",
	".rui-1Wks1",
	"span[class*='location']",
	"span[class*='place']",
}

var DateSelectors = []string{
	"[data-aut-id='item-date']",
	"span[class*='date']",
	"span[class*='time']",
}

// ItemLinkSelector matches the anchor carrying the ad's canonical URL.
const ItemLinkSelector = "a[href*='/item/']"

// coverKeywords is the target vocabulary: a title must contain one of these
// to count as a car-cover ad.
var coverKeywords = []string{
	"car cover",
	"body cover",
	"seat cover",
	"wheel cover",
	"brake cover",
	"car mat",
}

// excludeKeywords marks real-estate ads that OLX's search ranking mixes in
// because they share generic words like "cover" and "parking".
var excludeKeywords = []string{
	"bhk",
	"flat",
	"apartment",
	"parking",
	"rent",
	"sale",
	"sqft",
	"bathroom",
	"bedroom",
}
