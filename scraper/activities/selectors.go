package activities

// CSS selectors for Civitatis search result pages
const (
	ItemSelector      = "div.o-search-list__item"
	AvailabilityReady = "div.m-availability"
	ShowingReady      = "#activitiesShowing"
	PaginationSummary = "div.o-pagination__showing div.left"

	ActivityLinkSelector = "a.ga-trackEvent-element._activity-link"
	ListingLinkSelector  = `a[data-eventcategory="Actividades Listado"]`
	DescriptionSelector  = "div.comfort-card__text.l-list-card__text"
	FeatureSelector      = "div.comfort-card__features span"
	AvailabilityItem     = "div.m-availability__item"
	NoDatesClass         = "._no-dates"
	TimeSlotSelector     = "span._time"

	// JSON analytics payload carried on the activity link
	GTMClickAttr = "data-gtm-new-model-click"

	SiteHost = "www.civitatis.com"

	DefaultPageSize = 20
	PageScroll      = 4000
)
