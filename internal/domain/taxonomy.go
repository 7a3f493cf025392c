package domain

// CategoryOption is one entry of the static category taxonomy exposed to
// collaborators building submission forms.
type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}

// CategoryTaxonomy returns the fixed category taxonomy. Static
// configuration, not computed state.
func CategoryTaxonomy() []CategoryOption {
	return []CategoryOption{
		{Value: CategoryDestination, Label: "Destination", Icon: "map-pin"},
		{Value: CategoryTransport, Label: "Transport", Icon: "bus"},
		{Value: CategoryAccommodation, Label: "Accommodation", Icon: "bed"},
		{Value: CategoryService, Label: "Service", Icon: "concierge-bell"},
		{Value: CategoryGuide, Label: "Guide", Icon: "compass"},
		{Value: CategoryMarketplace, Label: "Marketplace", Icon: "shopping-bag"},
		{Value: CategoryOverall, Label: "Overall Experience", Icon: "star"},
	}
}
