package accommodation

// CSS selectors for Booking.com search result pages
const (
	CardSelector          = `div[data-testid="property-card"]`
	TitleSelector         = `div[data-testid="title"]`
	TitleLinkSelector     = `a[data-testid="title-link"]`
	PriceSelector         = `span[data-testid="price-and-discounted-price"]`
	DistanceSelector      = `span[data-testid="distance"]`
	ReviewScoreSelector   = `div[data-testid="review-score"]`
	LocationScoreSelector = `a[data-testid="secondary-review-score-link"]`

	// "Cargar más resultados" button under the result list
	LoadMoreSelector = `div[data-results-container="1"] button.af7297d90d`
)

// Badge keywords, matched case-insensitively against the card text
var (
	metroBadge        = []string{"metro access", "acceso al metro", "cerca del metro"}
	certifiedBadge    = []string{"travel sustainable", "sustainability certification", "certificación de sostenibilidad"}
	doubleBedBadge    = []string{"cama doble", "double bed"}
	twinBedsBadge     = []string{"camas individuales", "twin beds", "single beds"}
	cancellationBadge = []string{"cancelación gratis", "free cancellation"}
	prepaymentBadge   = []string{"sin pago por adelantado", "no prepayment"}
	breakfastBadge    = []string{"desayuno incluido", "breakfast included"}
	taxiBadge         = []string{"taxi"}
)
